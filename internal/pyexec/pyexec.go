// Package pyexec launches the external knowledge-graph engine as a python
// subprocess and captures its output. It performs no retries; retry policy
// belongs to callers.
package pyexec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"nebula/internal/nebulaerr"
)

// Runner executes generated scripts with a fixed interpreter command and
// working directory. Safe for concurrent use; Runner holds no mutable state.
type Runner struct {
	// Command is the interpreter invocation name, e.g. "python" or "python3".
	Command string
	// Dir is the working directory for the subprocess, normally the project
	// root so the engine module resolves.
	Dir string
	// Timeout bounds a single execution. Zero means no deadline; an exceeded
	// deadline kills the process and reports a TIMEOUT error.
	Timeout time.Duration
}

// NewRunner creates a Runner for the given interpreter command, rooted at dir.
func NewRunner(command, dir string) *Runner {
	if dir == "" {
		dir = "."
	}
	return &Runner{Command: command, Dir: dir}
}

// Run executes `<command> -c <script>`, waits for exit, and returns standard
// output with trailing whitespace trimmed. On non-zero exit or launch failure
// it returns a PROCESS_ERROR carrying the captured standard error verbatim;
// on an exceeded deadline it returns TIMEOUT.
func (r *Runner) Run(ctx context.Context, script string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Command, "-c", script)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", nebulaerr.New(nebulaerr.Timeout,
				r.Command+" did not exit within "+r.Timeout.String(), err).
				WithStderr(stderr.String())
		}
		return "", nebulaerr.New(nebulaerr.ProcessError,
			r.Command+" process failed: "+stderr.String(), err).
			WithStderr(stderr.String())
	}

	return strings.TrimRight(stdout.String(), " \t\r\n"), nil
}
