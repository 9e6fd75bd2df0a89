// Where: cli/internal/app/app_test.go
// What: Tests for CLI run behavior.
// Why: Ensure argument parsing and dispatch are stable.
package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunNoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	if code := Run(nil, Dependencies{Out: &out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "starter setup") {
		t.Fatalf("expected usage output, got %q", out.String())
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if code := Run([]string{"version"}, Dependencies{Out: &out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected version output")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if code := Run([]string{"frobnicate"}, Dependencies{Out: &out}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "Error:") {
		t.Fatalf("expected parse error output, got %q", out.String())
	}
}

func TestRunSetupMissingDependencies(t *testing.T) {
	var out bytes.Buffer
	if code := Run([]string{"setup"}, Dependencies{Out: &out}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "not wired") {
		t.Fatalf("expected wiring error, got %q", out.String())
	}
}
