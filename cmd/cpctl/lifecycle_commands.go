package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peakflames/cpctl/internal/logfile"
	"github.com/peakflames/cpctl/internal/supervisor"
)

func createStartCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "start [worker-flags...] <prompt>",
		Short: "Build and start the worker in the background",
		Long:  "Builds the worker and starts it detached. The last argument is the\nprompt; anything before it is passed to the worker unchanged.",
		// Worker flags must reach the worker untouched, so cobra does not
		// parse anything after "start".
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, extra, err := splitStartArgs(args)
			if err != nil {
				return err
			}
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			sup := newSupervisor(settings)

			if st := sup.Status(); st.Running {
				printInfo("%s is already running (PID: %d)", settings.WorkerName, st.PID)
				printInfo("Use 'cpctl stop' to stop it first")
				return nil
			}

			printOK("Building %s...", settings.WorkerName)
			printOK("Starting %s in background...", settings.WorkerName)
			res, err := sup.Start(prompt, extra)
			if err != nil {
				return err
			}
			switch res.State {
			case supervisor.AlreadyRunning:
				printInfo("%s is already running (PID: %d)", settings.WorkerName, res.PID)
				printInfo("Use 'cpctl stop' to stop it first")
			case supervisor.Started:
				printOK("%s started (PID: %d)", settings.WorkerName, res.PID)
				printInfo("Log output: %s", settings.LogFile)
				printOK("✓ %s is running", settings.WorkerName)
			case supervisor.ExitedEarly:
				printError("✗ %s failed to start. Check log file:", settings.WorkerName)
				printInfo("  cpctl log")
			}
			return nil
		},
	}
}

func createStopCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the background worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			sup := newSupervisor(settings)
			res, err := sup.Stop()
			if err != nil {
				return err
			}
			switch res.State {
			case supervisor.NothingToStop:
				printInfo("No running %s process found", settings.WorkerName)
			case supervisor.WasGone:
				printInfo("Process already stopped")
			case supervisor.Stopped:
				printOK("✓ %s stopped", settings.WorkerName)
			}
			return nil
		},
	}
}

func createStatusCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the background worker is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			st := newSupervisor(settings).Status()
			if st.Running {
				printOK("✓ %s is running (PID: %d)", settings.WorkerName, st.PID)
				printInfo("  Logs: %s", st.LogPath)
			} else {
				printInfo("%s is not running", settings.WorkerName)
			}
			return nil
		},
	}
}

func createLogCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Display the current session's log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(flags)
			if err != nil {
				return err
			}
			text, err := newSupervisor(settings).Log()
			if err != nil {
				if errors.Is(err, logfile.ErrNoLog) {
					printInfo("No log file found")
					printInfo("Start %s first: cpctl start \"prompt\"", settings.WorkerName)
					return nil
				}
				return err
			}
			printInfo("=== Logs from %s ===", settings.LogFile)
			fmt.Println()
			fmt.Print(text)
			return nil
		},
	}
}
