package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootHasLifecycleAndCollaboratorCommands(t *testing.T) {
	root := buildRoot()
	want := []string{
		"start", "stop", "status", "log", "run",
		"build", "build-all", "install", "test", "fmt", "vet", "clean",
		"version",
	}
	have := map[string]bool{}
	for _, c := range root.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Fatalf("command %q not registered", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	root := buildRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "cpctl "+version) {
		t.Fatalf("got %q", out.String())
	}
}

func TestUnknownCommandFails(t *testing.T) {
	root := buildRoot()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"bogus"})
	if err := root.Execute(); err == nil {
		t.Fatalf("unknown command must be an error")
	}
}

func TestStartWithoutPromptFails(t *testing.T) {
	root := buildRoot()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"start"})
	if err := root.Execute(); err == nil {
		t.Fatalf("start without a prompt must be a usage error")
	}
}
