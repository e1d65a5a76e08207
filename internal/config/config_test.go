package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	d := Default()
	if d.WorkerName != "claude-print" {
		t.Fatalf("worker name: %q", d.WorkerName)
	}
	if d.PIDFile != ".claude-print.pid" || d.LogFile != ".claude-print.log" {
		t.Fatalf("state file defaults: %q %q", d.PIDFile, d.LogFile)
	}
	if d.StripEnv != "CLAUDECODE" {
		t.Fatalf("strip env: %q", d.StripEnv)
	}
	if d.SettleDelay != 2*time.Second || d.TermTimeout != 10*time.Second || d.KillTimeout != 5*time.Second {
		t.Fatalf("timeout defaults: %+v", d)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	s, err := Load("")
	if err != nil {
		t.Fatalf("missing config file must not be an error: %v", err)
	}
	if s != Default() {
		t.Fatalf("got %+v, want defaults", s)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cpctl.toml")
	content := `
worker_name = "myworker"
pid_file = "/tmp/my.pid"
term_timeout = "3s"
kill_timeout = "1s"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.WorkerName != "myworker" || s.PIDFile != "/tmp/my.pid" {
		t.Fatalf("file values not applied: %+v", s)
	}
	if s.TermTimeout != 3*time.Second || s.KillTimeout != time.Second {
		t.Fatalf("durations not parsed: %+v", s)
	}
	// Untouched keys keep defaults.
	if s.LogFile != Default().LogFile || s.StripEnv != Default().StripEnv {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("explicit config path must exist")
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cpctl.toml")
	if err := os.WriteFile(path, []byte(`worker_name = ""`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("empty worker_name must be rejected")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"no pid file", func(s *Settings) { s.PIDFile = "" }, false},
		{"no log file", func(s *Settings) { s.LogFile = "" }, false},
		{"zero term timeout", func(s *Settings) { s.TermTimeout = 0 }, false},
		{"negative settle", func(s *Settings) { s.SettleDelay = -time.Second }, false},
		{"zero settle ok", func(s *Settings) { s.SettleDelay = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			tc.mutate(&s)
			err := s.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
