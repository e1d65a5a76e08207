package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/peakflames/cpctl/internal/builder"
)

var version = "0.2.0"

func main() {
	root := buildRoot()
	if err := root.Execute(); err != nil {
		printError("Error: %v", err)
		os.Exit(builder.ExitCode(err))
	}
}

// globalFlags holds the persistent flags shared by all subcommands.
type globalFlags struct {
	ConfigPath string
}

func buildRoot() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "cpctl",
		Short:         "Build and supervise the claude-print worker",
		Long:          "cpctl builds the claude-print worker and manages a single detached\nbackground instance of it: start, stop, status, and log.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "path to .cpctl.toml config file")

	root.AddCommand(
		createStartCommand(flags),
		createStopCommand(flags),
		createStatusCommand(flags),
		createLogCommand(flags),
		createRunCommand(flags),
		createBuildCommand(flags),
		createBuildAllCommand(flags),
		createInstallCommand(flags),
		createTestCommand(flags),
		createFmtCommand(flags),
		createVetCommand(flags),
		createCleanCommand(flags),
		createVersionCommand(),
	)
	return root
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cpctl version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("cpctl %s\n", version)
		},
	}
}
