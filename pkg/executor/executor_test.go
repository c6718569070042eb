package executor

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	ctx := context.Background()
	e := New()

	out, err := e.Execute(ctx, "sh", "-c", "echo 12.5")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "12.5" {
		t.Errorf("Execute() = %q, want %q", out, "12.5")
	}
}

func TestExecuteFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	ctx := context.Background()
	e := New()

	_, err := e.Execute(ctx, "sh", "-c", "echo 'invalid data found' >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() should fail on non-zero exit")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("err = %T, want *CommandError", err)
	}
	if cmdErr.Stderr != "invalid data found" {
		t.Errorf("Stderr = %q, want %q", cmdErr.Stderr, "invalid data found")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("err should unwrap to *exec.ExitError, got %v", err)
	}
}

func TestLastLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "a\nb", 5, "a\nb"},
		{"trimmed", "a\nb\nc\nd", 2, "c\nd"},
		{"empty", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastLines(tt.in, tt.n); got != tt.want {
				t.Errorf("lastLines() = %q, want %q", got, tt.want)
			}
		})
	}
}
