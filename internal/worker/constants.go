package worker

import "errors"

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerPanic     = "Worker job panicked"
	LogMsgPoolDrained     = "Worker pool drained"
)

// Log field keys
const (
	LogFieldError   = "error"
	LogFieldPanic   = "panic"
	LogFieldWorkers = "workers"
	LogFieldFailed  = "failed"
)

// ErrPoolStopped is returned by Enqueue after Stop.
var ErrPoolStopped = errors.New("worker pool stopped")

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount = 4
	TestQueueSize   = 8
	TestJobCount    = 100
)
