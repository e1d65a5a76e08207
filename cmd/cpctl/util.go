package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/peakflames/cpctl/internal/builder"
	"github.com/peakflames/cpctl/internal/config"
	"github.com/peakflames/cpctl/internal/logfile"
	"github.com/peakflames/cpctl/internal/process"
	"github.com/peakflames/cpctl/internal/supervisor"
)

const (
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

func useColor(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printColored(f *os.File, color, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if useColor(f) {
		_, _ = fmt.Fprintf(f, "%s%s%s\n", color, msg, colorReset)
	} else {
		_, _ = fmt.Fprintln(f, msg)
	}
}

// printInfo is for neutral guidance, printOK for success, printError for
// failures. Matches the cyan/green/red scheme of the tool's output.
func printInfo(format string, a ...any)  { printColored(os.Stdout, colorCyan, format, a...) }
func printOK(format string, a ...any)    { printColored(os.Stdout, colorGreen, format, a...) }
func printError(format string, a ...any) { printColored(os.Stderr, colorRed, format, a...) }

// loadSettings resolves configuration for a command invocation.
func loadSettings(flags *globalFlags) (config.Settings, error) {
	return config.Load(flags.ConfigPath)
}

// newBuilder wires the build collaborator from settings.
func newBuilder(s config.Settings) builder.Builder {
	return builder.Builder{
		WorkerName: s.WorkerName,
		MainPath:   s.MainPath,
		DistDir:    s.DistDir,
	}
}

// newSupervisor wires the process-lifecycle core from settings.
func newSupervisor(s config.Settings) *supervisor.Supervisor {
	prober := process.TableProber{}
	return &supervisor.Supervisor{
		Store:    process.Store{Path: s.PIDFile, Prober: prober},
		Prober:   prober,
		Sink:     logfile.Sink{Path: s.LogFile, Worker: s.WorkerName},
		Build:    newBuilder(s),
		Launch:   process.Launch,
		Stopper:  process.NewTerminator(prober, s.TermTimeout, s.KillTimeout, s.PollInterval),
		StripEnv: s.StripEnv,
		Settle:   s.SettleDelay,
	}
}

// splitStartArgs separates the worker pass-through flags from the prompt.
// The last argument is always the prompt; everything before it goes to the
// worker verbatim. A trailing flag that takes a value will therefore swallow
// the prompt; callers must put the prompt last.
func splitStartArgs(args []string) (prompt string, extra []string, err error) {
	if len(args) == 0 {
		return "", nil, errors.New("start requires a prompt\nUsage: cpctl start [worker-flags] \"your prompt here\"")
	}
	return args[len(args)-1], args[:len(args)-1], nil
}
