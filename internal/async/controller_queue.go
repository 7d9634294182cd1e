package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/pipeline"
)

// ControllerQueue fans jobs out to a fixed worker pool, each worker running
// one processing attempt at a time under the hard timeout.
type ControllerQueue struct {
	ctrl    *pipeline.Controller
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ControllerQueue)

func WithWorkers(n int) Option {
	return func(q *ControllerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ControllerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

// WithHardTimeout bounds a single attempt. The controller enforces its own
// soft budget inside this window.
func WithHardTimeout(d time.Duration) Option {
	return func(q *ControllerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewControllerQueue(ctrl *pipeline.Controller, logger *slog.Logger, opts ...Option) *ControllerQueue {
	q := &ControllerQueue{
		ctrl:    ctrl,
		logger:  logger,
		workers: 4,
		timeout: 30 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ControllerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					outcome, err := q.ctrl.Process(ctx, job.DocumentID)
					cancel()

					switch {
					case errors.Is(err, common.ErrConflict):
						// expected when a sweep races a direct request
						q.logger.Info("document already owned by another attempt",
							"worker_id", workerID, "document_id", job.DocumentID)
					case err != nil:
						q.logger.Error("processing failed",
							"worker_id", workerID, "document_id", job.DocumentID,
							"retryable", outcome.Retryable, "error", err)
					default:
						q.logger.Info("processed document",
							"worker_id", workerID, "document_id", job.DocumentID,
							"status", outcome.Status)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ControllerQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for processing", "document_id", job.DocumentID)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
		q.ch <- job
	}
	return nil
}

func (q *ControllerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
