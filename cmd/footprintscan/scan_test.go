package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"footprintscan/internal/model"
)

// TestScanPassword exercises the full scan path for the one category
// that needs no network access.
func TestScanPassword(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"scan", "password", "Tr0ub4dor&3x", "--json", "-o", out, "--no-save"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}

	var report model.FootprintReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	if report.Category != model.CategoryPassword {
		t.Errorf("category = %q, want %q", report.Category, model.CategoryPassword)
	}
	if report.Subject != "" {
		t.Errorf("subject = %q, password must never appear in the report", report.Subject)
	}
	if report.Password == nil {
		t.Fatal("expected password assessment")
	}
	if report.Password.Tier != model.TierStrong {
		t.Errorf("tier = %q, want %q", report.Password.Tier, model.TierStrong)
	}
	if strings.Contains(string(data), "Tr0ub4dor") {
		t.Error("password leaked into the report")
	}
}

// TestScanPassword_FromStdin tests reading the password interactively.
func TestScanPassword_FromStdin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("Tr0ub4dor&3x\n"))
	cmd.SetArgs([]string{"scan", "password", "--json", "-o", out, "--no-save"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}

	var report model.FootprintReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if report.Password == nil || report.Password.Tier != model.TierStrong {
		t.Errorf("assessment = %+v, want strong tier", report.Password)
	}
}

// TestScanPassword_VerboseDoesNotLogSecret runs a verbose password
// scan and asserts the secret never reaches the log stream.
func TestScanPassword_VerboseDoesNotLogSecret(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	oldStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"scan", "password", "Tr0ub4dor&3x", "--verbose", "--json", "-o", out, "--no-save"})

	execErr := cmd.Execute()
	_ = w.Close()
	os.Stderr = oldStderr

	captured, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured stderr: %v", err)
	}
	if execErr != nil {
		t.Fatalf("unexpected error: %v", execErr)
	}
	if strings.Contains(string(captured), "Tr0ub4dor") {
		t.Errorf("password leaked to log output: %s", captured)
	}
}

// TestScanConflictingFormats tests the mutual exclusion of report formats.
func TestScanConflictingFormats(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"scan", "password", "x", "--json", "--markdown", "--no-save"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for conflicting report formats")
	}
}

// TestScanExplicitMissingConfig tests the explicit-config error path.
func TestScanExplicitMissingConfig(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"scan", "password", "x", "-c", filepath.Join(t.TempDir(), "nope.yaml"), "--no-save"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

// TestScanRequiresSubject tests argument validation on scan subcommands.
func TestScanRequiresSubject(t *testing.T) {
	for _, sub := range []string{"username", "email", "phone", "file"} {
		t.Run(sub, func(t *testing.T) {
			cmd := NewRootCmd()
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs([]string{"scan", sub})

			if err := cmd.Execute(); err == nil {
				t.Error("expected argument error")
			}
		})
	}
}
