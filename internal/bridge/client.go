package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"nebula/internal/config"
	"nebula/internal/paths"
	"nebula/internal/pyexec"
	"nebula/internal/script"
	"nebula/internal/slogutil"
	"nebula/internal/worker"
)

// runner abstracts the process executor so tests can substitute a fake.
// *pyexec.Runner is the production implementation.
type runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// Client is the bridge façade. It is immutable after construction and safe
// for concurrent use; the detached capture path builds a throwaway clone
// instead of mutating the shared instance.
type Client struct {
	cfg         config.Config
	dbPath      string
	pythonCmd   string
	projectRoot string
	exec        runner
	logger      *slog.Logger
	pool        *worker.Pool

	// opts preserves the construction options so a detached capture can
	// rebuild an identically wired throwaway client.
	opts []Option
}

// Option customizes client construction.
type Option func(*Client)

// WithProjectRoot pins the project root instead of discovering it from the
// working directory.
func WithProjectRoot(root string) Option {
	return func(c *Client) { c.projectRoot = root }
}

// WithLogger sets the diagnostic logger. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRunner replaces the process executor. Intended for tests.
func WithRunner(r runner) Option {
	return func(c *Client) { c.exec = r }
}

// WithPool replaces the detached-capture worker pool.
func WithPool(p *worker.Pool) Option {
	return func(c *Client) { c.pool = p }
}

// WithTimeout bounds each engine execution. Zero keeps executions unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if r, ok := c.exec.(*pyexec.Runner); ok {
			r.Timeout = d
		}
	}
}

// New creates a bridge client. Configuration is resolved exactly once here;
// dbPath, when non-empty, overrides the configured database path.
func New(dbPath string, opts ...Option) (*Client, error) {
	c := &Client{opts: opts}
	for _, opt := range opts {
		opt(c)
	}

	if c.projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		c.projectRoot = paths.FindProjectRoot(cwd)
	}

	cfg, err := config.Load(c.projectRoot)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg

	if dbPath == "" {
		dbPath = cfg.LocalKgDb
		if dbPath == "" {
			dbPath = paths.DefaultDBPath
		}
	}
	c.dbPath = dbPath

	c.pythonCmd = cfg.PythonCommand
	if c.pythonCmd == "" {
		c.pythonCmd = "python"
	}

	if c.logger == nil {
		c.logger = slogutil.NewDiscardLogger()
	}
	if c.exec == nil {
		c.exec = pyexec.NewRunner(c.pythonCmd, c.projectRoot)
		// Re-apply options so WithTimeout lands on the real runner.
		for _, opt := range c.opts {
			opt(c)
		}
	}

	return c, nil
}

// Config returns the resolved configuration.
func (c *Client) Config() config.Config {
	return c.cfg
}

// DBPath returns the effective knowledge-graph database path.
func (c *Client) DBPath() string {
	return c.dbPath
}

// CaptureError records an error pattern and returns its identifier.
func (c *Client) CaptureError(ctx context.Context, signature, category, language, severity string) (string, error) {
	return c.CaptureErrorWithDescription(ctx, signature, category, language, severity, "")
}

// CaptureErrorWithDescription records an error pattern with an optional
// free-form description.
func (c *Client) CaptureErrorWithDescription(ctx context.Context, signature, category, language, severity, description string) (string, error) {
	body := script.CaptureError(c.dbPath, signature, category, language, severity, description)
	return c.exec.Run(ctx, body)
}

// CaptureErrorFromError records a Go error, using its dynamic type as the
// category.
func (c *Client) CaptureErrorFromError(ctx context.Context, err error, language, severity string) (string, error) {
	return c.CaptureError(ctx, err.Error(), fmt.Sprintf("%T", err), language, severity)
}

// SearchPatterns queries the engine for patterns similar to query. The limit
// bounds how many results the engine returns; it is not enforced client-side.
func (c *Client) SearchPatterns(ctx context.Context, query string, limit int) ([]ErrorPattern, error) {
	body, err := script.SearchPatterns(c.dbPath, query, limit)
	if err != nil {
		return nil, err
	}

	out, err := c.exec.Run(ctx, body)
	if err != nil {
		return nil, err
	}
	return decodePatterns(out)
}

// AddSolution attaches a solution to an existing pattern and returns the
// solution identifier.
func (c *Client) AddSolution(ctx context.Context, patternID, solutionText, effectiveness string) (string, error) {
	body := script.AddSolution(c.dbPath, patternID, solutionText, effectiveness)
	return c.exec.Run(ctx, body)
}

// GetSummary fetches aggregate pattern statistics.
func (c *Client) GetSummary(ctx context.Context) (*PatternSummary, error) {
	out, err := c.exec.Run(ctx, script.Summary(c.dbPath))
	if err != nil {
		return nil, err
	}
	return decodeSummary(out)
}

// CaptureErrorDetached records an error pattern without blocking and without
// a failure channel to the caller. The write may still be in flight when the
// call returns; callers needing read-after-write consistency must use
// CaptureError. Each detached capture runs on a throwaway client clone, so a
// shared instance is never touched from the background task.
func (c *Client) CaptureErrorDetached(signature, category, language, severity string) {
	pool := c.pool
	if pool == nil {
		pool = defaultPool(c.logger)
	}

	dbPath := c.dbPath
	opts := c.opts
	_, err := pool.Submit(func(ctx context.Context) error {
		clone, err := New(dbPath, opts...)
		if err != nil {
			return err
		}
		_, err = clone.CaptureError(ctx, signature, category, language, severity)
		return err
	})
	if err != nil {
		c.logger.Warn("failed to enqueue detached capture", "error", err.Error())
	}
}
