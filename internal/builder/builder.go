// Package builder is the boundary to the external build collaborator: it
// shells out to the Go toolchain to produce, test, and clean the worker
// executable, and propagates the toolchain's exit status unchanged.
package builder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// target is one cross-compilation entry for BuildAll.
type target struct {
	goos   string
	goarch string
	ext    string
}

var targets = []target{
	{"windows", "amd64", ".exe"},
	{"darwin", "amd64", ""},
	{"darwin", "arm64", ""},
	{"linux", "amd64", ""},
}

// Builder runs toolchain commands for the worker. The zero value is not
// usable; populate the fields from config.
type Builder struct {
	WorkerName string    // binary base name, e.g. "claude-print"
	MainPath   string    // package to build, e.g. "./cmd/claude-print"
	DistDir    string    // output directory for BuildAll
	Dir        string    // working directory for toolchain invocations
	Stdout     io.Writer // toolchain stdout; defaults to os.Stdout
	Stderr     io.Writer // toolchain stderr; defaults to os.Stderr
	GoTool     string    // toolchain executable; defaults to "go"
}

// BinaryName returns the platform-appropriate binary file name.
func (b Builder) BinaryName() string {
	if runtime.GOOS == "windows" {
		return b.WorkerName + ".exe"
	}
	return b.WorkerName
}

// BinaryPath is the spawn path of the freshly built worker.
func (b Builder) BinaryPath() string {
	return "./" + b.BinaryName()
}

// Build compiles the worker for the host platform.
func (b Builder) Build() error {
	return b.run(nil, "build", "-o", b.BinaryName(), b.MainPath)
}

// BuildAll cross-compiles the worker for every release target into DistDir.
func (b Builder) BuildAll() error {
	dist := b.DistDir
	if b.Dir != "" {
		dist = filepath.Join(b.Dir, b.DistDir)
	}
	if err := os.RemoveAll(dist); err != nil {
		return fmt.Errorf("clean %s: %w", dist, err)
	}
	if err := os.MkdirAll(dist, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dist, err)
	}
	for _, t := range targets {
		out := filepath.Join(b.DistDir, fmt.Sprintf("%s-%s-%s%s", b.WorkerName, t.goos, t.goarch, t.ext))
		env := append(os.Environ(), "CGO_ENABLED=0", "GOOS="+t.goos, "GOARCH="+t.goarch)
		if err := b.run(env, "build", "-o", out, b.MainPath); err != nil {
			return err
		}
	}
	return nil
}

// Install installs the worker into GOPATH/bin.
func (b Builder) Install() error {
	return b.run(nil, "install", b.MainPath)
}

// Test runs the worker repository's tests.
func (b Builder) Test() error {
	return b.run(nil, "test", "-v", "./...")
}

// Fmt formats the worker repository.
func (b Builder) Fmt() error {
	return b.run(nil, "fmt", "./...")
}

// Vet vets the worker repository.
func (b Builder) Vet() error {
	return b.run(nil, "vet", "./...")
}

// Clean removes build artifacts plus any extra supervisor files (PID record,
// log sink) the caller passes in.
func (b Builder) Clean(extra ...string) error {
	if err := b.run(nil, "clean"); err != nil {
		return err
	}
	for _, name := range []string{b.WorkerName, b.WorkerName + ".exe"} {
		_ = os.Remove(b.join(name))
	}
	if err := os.RemoveAll(b.join(b.DistDir)); err != nil {
		return fmt.Errorf("remove %s: %w", b.DistDir, err)
	}
	for _, f := range extra {
		_ = os.Remove(f)
	}
	return nil
}

func (b Builder) join(name string) string {
	if b.Dir == "" {
		return name
	}
	return filepath.Join(b.Dir, name)
}

func (b Builder) run(env []string, args ...string) error {
	tool := b.GoTool
	if tool == "" {
		tool = "go"
	}
	// #nosec G204 -- args are fixed toolchain subcommands
	cmd := exec.Command(tool, args...)
	cmd.Dir = b.Dir
	cmd.Env = env
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", tool, args[0], err)
	}
	return nil
}

// ExitCode maps an error from a collaborator invocation to the exit status
// the tool should propagate: the child's own status when it ran and failed,
// 1 for anything else, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return 1
}
