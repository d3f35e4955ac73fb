package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Task is one unit of per-file work.
type Task func(ctx context.Context)

type job struct {
	path    string
	traceID string
	task    Task
}

// Queue schedules at most one in-flight task per distinct path. Duplicate
// triggers for a pending path are dropped; tasks for different paths run
// concurrently on the worker pool.
type Queue struct {
	log     *slog.Logger
	workers int
	timeout time.Duration

	ch    chan job
	wg    sync.WaitGroup
	enqWG sync.WaitGroup
	once  sync.Once

	mu      sync.Mutex
	pending map[string]struct{}
	closed  bool
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan job, n)
		}
	}
}

// WithTaskTimeout bounds each task's context. Zero means no timeout, which is
// the default: a dispatched task runs to completion.
func WithTaskTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func New(log *slog.Logger, opts ...Option) *Queue {
	if log == nil {
		log = slog.Default()
	}
	q := &Queue{
		log:     log,
		workers: 2,
		ch:      make(chan job, 256),
		pending: make(map[string]struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.log.Debug("worker started", "worker_id", workerID)

				for j := range q.ch {
					q.run(workerID, j)
				}

				q.log.Debug("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *Queue) run(workerID int, j job) {
	defer func() {
		q.mu.Lock()
		delete(q.pending, j.path)
		q.mu.Unlock()
	}()

	ctx := context.Background()
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	q.log.Debug("task started", "worker_id", workerID, "path", j.path, "trace_id", j.traceID)
	j.task(ctx)
}

// Enqueue schedules task for path unless a task for that path is already
// pending, in which case the call is a no-op and returns false. onAccepted,
// if non-nil, runs after the path is reserved and strictly before the task
// can start.
func (q *Queue) Enqueue(path string, task Task, onAccepted func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.log.Warn("cannot enqueue: queue is shutting down", "path", path)
		return false
	}
	if _, dup := q.pending[path]; dup {
		q.mu.Unlock()
		q.log.Debug("duplicate trigger dropped", "path", path)
		return false
	}
	q.pending[path] = struct{}{}
	if onAccepted != nil {
		onAccepted()
	}
	// keep Shutdown from closing the channel under an in-flight send
	q.enqWG.Add(1)
	q.mu.Unlock()
	defer q.enqWG.Done()

	j := job{path: path, traceID: uuid.NewString(), task: task}
	select {
	case q.ch <- j:
	default:
		q.log.Warn("queue full, applying backpressure", "path", path)
		q.ch <- j
	}
	return true
}

// Shutdown stops accepting work and waits for in-flight tasks, up to ctx.
func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.enqWG.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.log.Warn("shutdown interrupted by context")
	case <-done:
		q.log.Info("queue drained, shutdown complete")
	}
}
