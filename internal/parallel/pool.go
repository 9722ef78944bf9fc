// Package parallel provides the bounded worker pool pkg/clique's
// SolveParallel uses to fan a branch-and-bound search's top-level
// candidates out across goroutines without spawning one per branch.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool manages a fixed number of goroutines that drain a shared task
// channel. It provides controlled concurrency with backpressure handling
// (the buffered task channel blocks Submit once full) to prevent a wide
// branch-and-bound fan-out from spawning one goroutine per branch, and
// tracks how many of those branches are currently running versus finished
// so a caller can log fan-out progress without instrumenting every task.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
	active       atomic.Int64
	completed    atomic.Int64
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If maxWorkers is 0 or negative, it defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2), // Buffered channel for backpressure
		shutdownChan: make(chan struct{}),
	}

	// Start worker goroutines
	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// worker is the main worker loop that processes tasks from the channel,
// bracketing each with the active/completed counters a caller reads via
// Active and Completed.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			if task != nil {
				wp.active.Add(1)
				task()
				wp.active.Add(-1)
				wp.completed.Add(1)
			}
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit submits a task to the worker pool for execution.
// If the pool is full, this call will block until a worker becomes available.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Active reports how many submitted tasks are currently executing — in
// pkg/clique.SolveParallel, one per top-level branch whose goroutine has
// started but not yet returned.
func (wp *WorkerPool) Active() int64 {
	return wp.active.Load()
}

// Completed reports how many submitted tasks have finished executing.
func (wp *WorkerPool) Completed() int64 {
	return wp.completed.Load()
}

// Shutdown gracefully shuts down the worker pool, waiting for all
// currently executing tasks to complete.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		close(wp.taskChan)
		wp.workerWg.Wait()
	})
}

// ErrPoolShutdown is returned when trying to submit tasks to a shutdown pool.
var ErrPoolShutdown = fmt.Errorf("worker pool has been shutdown")
