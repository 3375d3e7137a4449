package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIContract(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	out := b.String()

	requiredCommands := []string{
		"completion",
		"help",
		"history",
		"hook",
		"version",
	}

	for _, c := range requiredCommands {
		if !strings.Contains(out, c) {
			t.Errorf("expected top-level command %q in root help", c)
		}
	}

	for _, flag := range []string{"--format", "--no-color", "--verbose"} {
		if !strings.Contains(out, flag) {
			t.Errorf("expected flag %q in root help", flag)
		}
	}
}

func TestCLIVersion(t *testing.T) {
	t.Setenv("VALIDATE_COMMIT_VERSION", "1.2.3")

	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if got := b.String(); got != "validate-commit version 1.2.3\n" {
		t.Errorf("unexpected version output %q", got)
	}
}
