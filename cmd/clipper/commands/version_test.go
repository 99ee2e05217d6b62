// ABOUTME: Tests for the version command
// ABOUTME: Verifies version info plumbing and output format

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd_Output(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-01-02")
	defer SetVersion("dev", "none", "unknown")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := output.String()
	if !strings.Contains(out, "clipper 1.2.3") {
		t.Errorf("output missing version line: %q", out)
	}
	if !strings.Contains(out, "abc1234") {
		t.Errorf("output missing commit: %q", out)
	}
	if !strings.Contains(out, "2026-01-02") {
		t.Errorf("output missing build date: %q", out)
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("9.9.9", "deadbeef", "today")
	defer SetVersion("dev", "none", "unknown")

	if versionInfo.Version != "9.9.9" {
		t.Errorf("Version = %q, want %q", versionInfo.Version, "9.9.9")
	}
	if versionInfo.Commit != "deadbeef" {
		t.Errorf("Commit = %q, want %q", versionInfo.Commit, "deadbeef")
	}
	if versionInfo.Date != "today" {
		t.Errorf("Date = %q, want %q", versionInfo.Date, "today")
	}
}
