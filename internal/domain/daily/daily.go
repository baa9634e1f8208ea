// Package daily tracks per-identity calendar-day completion for the
// at-most-one-daily-badge rule.
package daily

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Badge is one daily completion marker. Badges are append-only; once
// granted they are permanent.
type Badge struct {
	ID        string
	Identity  string
	Date      string // YYYY-MM-DD
	Timestamp time.Time
}

// Tracker records completed days to enforce at-most-one badge per
// identity per calendar date.
type Tracker interface {
	// SeenAndRecord atomically checks whether the identity already
	// completed the date and records it if not. Returns true if the
	// date was already completed, false if it was newly recorded.
	// This is the ONLY method for the daily idempotency check.
	SeenAndRecord(ctx context.Context, b Badge) bool

	// Unrecord removes a recorded day, allowing the completion to be
	// retried. Only used when a completion was marked but failed to
	// commit downstream.
	Unrecord(ctx context.Context, identity, date string)

	// Seen reports whether the identity completed the date.
	Seen(ctx context.Context, identity, date string) bool

	// Badges returns the identity's daily badges in grant order.
	Badges(ctx context.Context, identity string) []Badge

	Size() int64
}

// inMemoryTracker implements Tracker with per-identity ordered day logs.
type inMemoryTracker struct {
	mu     sync.RWMutex
	seen   map[string]map[string]struct{} // identity -> date set
	badges map[string][]Badge             // identity -> badges in grant order
	size   atomic.Int64
}

// NewInMemoryTracker creates an empty tracker.
func NewInMemoryTracker() Tracker {
	return &inMemoryTracker{
		seen:   make(map[string]map[string]struct{}),
		badges: make(map[string][]Badge),
	}
}

func (t *inMemoryTracker) SeenAndRecord(_ context.Context, b Badge) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	days, ok := t.seen[b.Identity]
	if !ok {
		days = make(map[string]struct{})
		t.seen[b.Identity] = days
	}
	if _, exists := days[b.Date]; exists {
		return true // already completed this date
	}

	days[b.Date] = struct{}{}
	t.badges[b.Identity] = append(t.badges[b.Identity], b)
	t.size.Add(1)
	return false
}

func (t *inMemoryTracker) Unrecord(_ context.Context, identity, date string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	days, ok := t.seen[identity]
	if !ok {
		return
	}
	if _, exists := days[date]; !exists {
		return
	}
	delete(days, date)

	list := t.badges[identity]
	for i := range list {
		if list[i].Date == date {
			t.badges[identity] = append(list[:i], list[i+1:]...)
			break
		}
	}
	t.size.Add(-1)
}

func (t *inMemoryTracker) Seen(_ context.Context, identity, date string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	days, ok := t.seen[identity]
	if !ok {
		return false
	}
	_, exists := days[date]
	return exists
}

func (t *inMemoryTracker) Badges(_ context.Context, identity string) []Badge {
	t.mu.RLock()
	defer t.mu.RUnlock()

	list := t.badges[identity]
	out := make([]Badge, len(list))
	copy(out, list)
	return out
}

func (t *inMemoryTracker) Size() int64 {
	return t.size.Load()
}
