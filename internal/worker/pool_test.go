package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/testing/leaktest"
)

func TestPool_StopDrainsQueue(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed atomic.Int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	for i := 0; i < TestJobCount; i++ {
		require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(ctx context.Context) error {
			time.Sleep(time.Millisecond)
			executed.Add(1)
			return nil
		})))
	}
	pool.Stop()

	assert.Equal(t, int32(TestJobCount), executed.Load())
	checker.Check(0)
}

func TestPool_CountsFailuresAndPanics(t *testing.T) {
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	ctx := context.Background()
	require.NoError(t, pool.Enqueue(ctx, JobFunc(func(context.Context) error { return errors.New("bad draw") })))
	require.NoError(t, pool.Enqueue(ctx, JobFunc(func(context.Context) error { panic("boom") })))
	require.NoError(t, pool.Enqueue(ctx, JobFunc(func(context.Context) error { return nil })))
	pool.Stop()

	assert.Equal(t, int64(2), pool.Failed())
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	err := pool.Enqueue(context.Background(), JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_EnqueueHonoursContext(t *testing.T) {
	pool := NewPool(1, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := pool.Enqueue(ctx, JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	pool.Stop()
}

func TestPool_JobsSeeCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(1, 1)
	pool.Start(ctx)
	cancel()

	var sawCancel atomic.Bool
	require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(ctx context.Context) error {
		sawCancel.Store(ctx.Err() != nil)
		return nil
	})))
	pool.Stop()

	assert.True(t, sawCancel.Load())
}
