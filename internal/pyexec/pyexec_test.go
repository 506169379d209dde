package pyexec

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nebula/internal/nebulaerr"
)

// Tests drive the runner with sh instead of python; the executor contract
// (argv shape, capture, exit handling) is interpreter-agnostic.

func TestRun_Success(t *testing.T) {
	r := NewRunner("sh", t.TempDir())

	out, err := r.Run(context.Background(), "printf 'p123\\n'")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "p123" {
		t.Errorf("output = %q, want trailing whitespace trimmed %q", out, "p123")
	}
}

func TestRun_NonZeroExitCarriesStderr(t *testing.T) {
	r := NewRunner("sh", t.TempDir())

	_, err := r.Run(context.Background(), "echo boom >&2; exit 1")
	if err == nil {
		t.Fatal("Run should fail on non-zero exit")
	}
	if !nebulaerr.Is(err, nebulaerr.ProcessError) {
		t.Errorf("error code = %q, want PROCESS_ERROR", nebulaerr.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should carry captured stderr text", err)
	}

	var ne *nebulaerr.Error
	if !errors.As(err, &ne) {
		t.Fatal("error should be a *nebulaerr.Error")
	}
	if !strings.Contains(ne.Stderr, "boom") {
		t.Errorf("Stderr = %q, want verbatim capture", ne.Stderr)
	}
}

func TestRun_LaunchFailure(t *testing.T) {
	r := NewRunner("definitely-not-a-real-interpreter", t.TempDir())

	_, err := r.Run(context.Background(), "print('x')")
	if err == nil {
		t.Fatal("Run should fail when the process never starts")
	}
	if !nebulaerr.Is(err, nebulaerr.ProcessError) {
		t.Errorf("error code = %q, want PROCESS_ERROR", nebulaerr.CodeOf(err))
	}
}

func TestRun_Timeout(t *testing.T) {
	r := NewRunner("sh", t.TempDir())
	r.Timeout = 50 * time.Millisecond

	start := time.Now()
	_, err := r.Run(context.Background(), "sleep 5")
	if err == nil {
		t.Fatal("Run should fail when the deadline is exceeded")
	}
	if !nebulaerr.Is(err, nebulaerr.Timeout) {
		t.Errorf("error code = %q, want TIMEOUT", nebulaerr.CodeOf(err))
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("process was not killed promptly, took %v", elapsed)
	}
}

func TestRun_RunsInConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("here"), 0644); err != nil {
		t.Fatal(err)
	}
	r := NewRunner("sh", dir)

	out, err := r.Run(context.Background(), "cat marker.txt")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "here" {
		t.Errorf("output = %q, want file contents read relative to Dir", out)
	}
}
