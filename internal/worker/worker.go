// Package worker runs fire-and-forget tasks on a supervised background pool.
// Task outcomes never reach the submitter; failures are logged and published
// on a bounded observation channel so operators can watch the failure rate.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Task is one unit of detached work.
type Task struct {
	ID  string
	Run func(ctx context.Context) error
}

// Failure records one failed task for out-of-band observation.
type Failure struct {
	TaskID string
	Err    error
	At     time.Time
}

// Config contains pool sizing.
type Config struct {
	QueueSize     int
	Workers       int
	FailureBuffer int
}

// DefaultConfig returns the default pool configuration.
func DefaultConfig() Config {
	return Config{
		QueueSize:     64,
		Workers:       1,
		FailureBuffer: 32,
	}
}

// Pool manages background task execution.
type Pool struct {
	logger   *slog.Logger
	queue    chan Task
	failures chan Failure
	done     chan struct{}
	workers  int
	wg       sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once

	processedCount atomic.Int64
	failedCount    atomic.Int64
	droppedCount   atomic.Int64
}

// NewPool creates a pool; Start must be called before submitting.
func NewPool(logger *slog.Logger, cfg Config) *Pool {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.FailureBuffer <= 0 {
		cfg.FailureBuffer = 32
	}

	return &Pool{
		logger:   logger,
		queue:    make(chan Task, cfg.QueueSize),
		failures: make(chan Failure, cfg.FailureBuffer),
		done:     make(chan struct{}),
		workers:  cfg.Workers,
	}
}

// Start launches the worker goroutines. Calling Start twice is a no-op.
func (p *Pool) Start() {
	p.startOnce.Do(func() {
		p.logger.Debug("starting detached worker pool", "workers", p.workers)
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go p.worker(i)
		}
	})
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case task := <-p.queue:
			p.run(task)
		case <-p.done:
			// Drain what is already queued before exiting.
			for {
				select {
				case task := <-p.queue:
					p.run(task)
				default:
					p.logger.Debug("worker stopping", "worker", id)
					return
				}
			}
		}
	}
}

func (p *Pool) run(task Task) {
	err := task.Run(context.Background())
	if err == nil {
		p.processedCount.Add(1)
		return
	}

	p.failedCount.Add(1)
	p.logger.Warn("detached task failed", "taskId", task.ID, "error", err.Error())

	select {
	case p.failures <- Failure{TaskID: task.ID, Err: err, At: time.Now().UTC()}:
	default:
		// Observation channel full; the log line above is the fallback.
	}
}

// Submit enqueues a task and returns its ID without waiting for execution.
// A full queue drops the task rather than blocking the caller.
func (p *Pool) Submit(run func(ctx context.Context) error) (string, error) {
	id := uuid.NewString()

	select {
	case <-p.done:
		return "", fmt.Errorf("worker pool is shutting down")
	default:
	}

	select {
	case p.queue <- Task{ID: id, Run: run}:
		return id, nil
	default:
		p.droppedCount.Add(1)
		p.logger.Warn("detached task queue full, dropping task", "taskId", id)
		return "", fmt.Errorf("task queue full")
	}
}

// Failures exposes the bounded failure-observation channel.
func (p *Pool) Failures() <-chan Failure {
	return p.failures
}

// Stats returns processed, failed, and dropped task counts.
func (p *Pool) Stats() (processed, failed, dropped int64) {
	return p.processedCount.Load(), p.failedCount.Load(), p.droppedCount.Load()
}

// Stop signals workers to finish queued tasks and waits up to timeout.
func (p *Pool) Stop(timeout time.Duration) error {
	p.stopOnce.Do(func() { close(p.done) })

	waited := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("worker pool shutdown timed out after %v", timeout)
	}
}
