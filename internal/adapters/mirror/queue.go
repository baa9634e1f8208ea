package mirror

import (
	"context"
	"sync"

	"github.com/MyuRay/ONE-FIT-HERO/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultQueueCapacity = 1024
)

// Queue provides non-blocking enqueue and channel-based dequeue
// semantics for mirror records. A full queue drops the record rather
// than blocking the committing caller.
type Queue interface {
	// Enqueue adds a record. Returns false if the queue is closed or
	// full; the caller treats that as a (counted) mirror miss.
	Enqueue(ctx context.Context, r Record) bool

	// Dequeue returns a channel that receives records as they become
	// available. The channel is closed when the queue is closed.
	Dequeue(ctx context.Context) <-chan Record

	// Len returns the current number of queued records.
	Len(ctx context.Context) int

	// Close shuts the queue down; no new records can be enqueued.
	Close() error
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	records chan Record
	mu      sync.RWMutex
	closed  bool
}

// QueueOption applies a configuration option to the InMemoryQueue.
type QueueOption func(*queueConfig)

type queueConfig struct {
	capacity int
}

// WithCapacity bounds the queue.
func WithCapacity(n int) QueueOption {
	return func(c *queueConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// NewInMemoryQueue creates a bounded mirror queue.
func NewInMemoryQueue(opts ...QueueOption) *InMemoryQueue {
	cfg := queueConfig{capacity: defaultQueueCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	q := &InMemoryQueue{
		records: make(chan Record, cfg.capacity),
	}
	metrics.UpdateMirrorQueueSize(0)
	return q
}

// Enqueue adds a record without blocking.
func (q *InMemoryQueue) Enqueue(ctx context.Context, r Record) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}

	select {
	case q.records <- r:
		metrics.UpdateMirrorQueueSize(len(q.records))
		return true
	case <-ctx.Done():
		return false
	default:
		return false // queue full, drop
	}
}

// Dequeue returns the record channel.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan Record {
	out := make(chan Record)
	go func() {
		defer close(out)
		for r := range q.records {
			select {
			case out <- r:
				metrics.UpdateMirrorQueueSize(len(q.records))
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued records.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.records)
}

// Close shuts the queue down.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.records)
	q.closed = true
	return nil
}
