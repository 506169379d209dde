package bridge

import (
	"log/slog"
	"sync"

	"nebula/internal/worker"
)

// The shared client is constructed exactly once per process. Concurrent
// first requests are serialized by sync.Once; later requests return the same
// instance regardless of arguments.
var (
	sharedOnce   sync.Once
	sharedClient *Client
	sharedErr    error
)

// Shared returns the process-wide client, constructing it on first call.
// The dbPath and options of the first caller win; subsequent arguments are
// ignored.
func Shared(dbPath string, opts ...Option) (*Client, error) {
	sharedOnce.Do(func() {
		sharedClient, sharedErr = New(dbPath, opts...)
	})
	return sharedClient, sharedErr
}

// resetShared clears the singleton slot. Test hook only.
func resetShared() {
	sharedOnce = sync.Once{}
	sharedClient = nil
	sharedErr = nil
}

// The default detached-capture pool is likewise constructed once and lives
// for the remainder of the process.
var (
	poolOnce    sync.Once
	defaultWork *worker.Pool
)

func defaultPool(logger *slog.Logger) *worker.Pool {
	poolOnce.Do(func() {
		defaultWork = worker.NewPool(logger, worker.DefaultConfig())
		defaultWork.Start()
	})
	return defaultWork
}
