package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/special-brownies/booster-pack/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job.
type JobFunc func(ctx context.Context) error

// Process calls f.
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs jobs on a fixed number of goroutines. Stop drains the queue:
// every job accepted by Enqueue runs before Stop returns.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
	started bool

	failed atomic.Int64
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start launches the workers. Jobs receive ctx; cancelling it does not stop
// the workers, it only tells running jobs to give up early.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if err := p.run(ctx, job); err != nil {
			p.failed.Add(1)
			logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, LogFieldError, err)
		}
	}
}

// run isolates a panicking job so one bad draw cannot take the worker down.
func (p *Pool) run(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerPanic, LogFieldPanic, r)
			err = fmt.Errorf("%s: %v", LogMsgWorkerPanic, r)
		}
	}()
	return job.Process(ctx)
}

// Enqueue adds a job to the queue, blocking while it is full. It fails with
// ErrPoolStopped after Stop, or with ctx's error if ctx ends first.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Failed reports how many jobs returned an error or panicked.
func (p *Pool) Failed() int64 {
	return p.failed.Load()
}

// Stop closes the queue and waits for the workers to finish every queued job.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobQueue)
	started := p.started
	p.mu.Unlock()

	if !started {
		return
	}
	p.wg.Wait()
	logger.FromContext(context.Background()).Debug(LogMsgPoolDrained,
		LogFieldWorkers, p.workers,
		LogFieldFailed, p.failed.Load())
}
