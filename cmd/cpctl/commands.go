package main

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func createBuildCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the worker for the current platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			b := newBuilder(settings)
			printOK("Building %s...", b.BinaryName())
			if err := b.Build(); err != nil {
				return err
			}
			printOK("Build complete: %s", b.BinaryPath())
			return nil
		},
	}
}

func createBuildAllCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build-all",
		Short: "Cross-compile the worker for all release platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			b := newBuilder(settings)
			printOK("Building %s for all platforms...", settings.WorkerName)
			if err := b.BuildAll(); err != nil {
				return err
			}
			printOK("Build complete! Binaries in %s/", settings.DistDir)
			return nil
		},
	}
}

func createInstallCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the worker to GOPATH/bin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			printOK("Installing %s to GOPATH/bin...", settings.WorkerName)
			if err := newBuilder(settings).Install(); err != nil {
				return err
			}
			printOK("Install complete")
			return nil
		},
	}
}

func createTestCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the worker repository's tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			printOK("Running tests...")
			return newBuilder(settings).Test()
		},
	}
}

func createFmtCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Format the worker repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			printOK("Formatting code...")
			return newBuilder(settings).Fmt()
		},
	}
}

func createVetCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Run go vet on the worker repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			printOK("Running go vet...")
			return newBuilder(settings).Vet()
		},
	}
}

func createCleanCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove build artifacts and supervisor state files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			printOK("Cleaning build artifacts...")
			if err := newBuilder(settings).Clean(settings.PIDFile, settings.LogFile); err != nil {
				return err
			}
			printOK("Clean complete")
			return nil
		},
	}
}

const examplePrompt = "What is 2+2?"

func createRunCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [prompt]",
		Short: "Build and run the worker in the foreground",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			b := newBuilder(settings)
			printOK("Building %s...", b.BinaryName())
			if err := b.Build(); err != nil {
				return err
			}
			prompt := examplePrompt
			if len(args) == 1 {
				prompt = args[0]
			}
			printOK("Running %s...", b.BinaryName())
			// #nosec G204 -- runs the binary this tool just built
			run := exec.Command(b.BinaryPath(), prompt)
			run.Stdin = os.Stdin
			run.Stdout = os.Stdout
			run.Stderr = os.Stderr
			return run.Run()
		},
	}
}
