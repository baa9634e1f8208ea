package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/MyuRay/ONE-FIT-HERO/pkg/logger"
	"github.com/MyuRay/ONE-FIT-HERO/pkg/metrics"
)

// Default worker configuration constants.
const (
	workerShutdownTimeout = 5 * time.Second
)

// Worker drains the mirror queue into the sink. Failures are logged
// and counted; the record is dropped because local state is
// authoritative regardless of mirror outcome.
type Worker struct {
	queue Queue
	sink  Sink

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a mirror worker.
func NewWorker(queue Queue, sink Sink) *Worker {
	return &Worker{
		queue:    queue,
		sink:     sink,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("mirror"),
	}
}

// Run starts the drain loop until ctx is canceled or the worker shuts
// down.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	records := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case r, ok := <-records:
			if !ok {
				return
			}
			if err := write(ctx, w.sink, r); err != nil {
				metrics.RecordMirrorWriteError()
				w.logger.Warn(ctx, "mirror write failed; local state unaffected",
					logger.String("kind", string(r.Kind)),
					logger.Error(err),
				)
				continue
			}
			metrics.RecordMirrorWrite()
		}
	}
}

// Shutdown stops the worker, waiting for the loop to exit.
func (w *Worker) Shutdown(ctx context.Context) error {
	select {
	case <-w.shutdown:
		// already signaled
	default:
		close(w.shutdown)
	}

	waitCtx, cancel := context.WithTimeout(ctx, workerShutdownTimeout)
	defer cancel()

	select {
	case <-w.done:
		return nil
	case <-waitCtx.Done():
		return fmt.Errorf("mirror worker shutdown timed out: %w", waitCtx.Err())
	}
}
