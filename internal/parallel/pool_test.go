package parallel

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRunsAllSubmittedTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Shutdown()

	var completed atomic.Int64
	ctx := context.Background()
	for i := 0; i < 100; i++ {
		require.NoError(t, pool.Submit(ctx, func() { completed.Add(1) }))
	}

	require.Eventually(t, func() bool { return completed.Load() == 100 }, time.Second, time.Millisecond)
}

func TestWorkerPoolTracksActiveAndCompleted(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Shutdown()

	release := make(chan struct{})
	ctx := context.Background()
	require.NoError(t, pool.Submit(ctx, func() { <-release }))
	require.NoError(t, pool.Submit(ctx, func() { <-release }))

	require.Eventually(t, func() bool { return pool.Active() == 2 }, time.Second, time.Millisecond)
	assert.EqualValues(t, 0, pool.Completed())

	close(release)
	require.Eventually(t, func() bool { return pool.Completed() == 2 }, time.Second, time.Millisecond)
	assert.EqualValues(t, 0, pool.Active())
}

func TestWorkerPoolDefaultsToNumCPU(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Shutdown()
	assert.Greater(t, pool.maxWorkers, 0)
}

func TestWorkerPoolSubmitAfterShutdownFails(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Shutdown()
	err := pool.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrPoolShutdown)
}

func TestWorkerPoolSubmitRespectsContextCancellation(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Shutdown()

	block := make(chan struct{})
	defer close(block)

	// The single worker picks this one up and blocks on it, then the
	// channel's capacity-2 buffer absorbs two more before a Submit has
	// nowhere to go until its context is cancelled.
	require.NoError(t, pool.Submit(context.Background(), func() { <-block }))
	require.NoError(t, pool.Submit(context.Background(), func() { <-block }))
	require.NoError(t, pool.Submit(context.Background(), func() { <-block }))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := pool.Submit(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
