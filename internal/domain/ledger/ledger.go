// Package ledger holds the append-only log of completed workout
// sessions. The ledger is the source of truth for all aggregation.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
)

// Ledger records completed sessions. Append is the only mutator;
// history is never rewritten.
type Ledger interface {
	// Append adds one immutable session record. It fails on a missing
	// id or identity and on an id that was already recorded.
	Append(ctx context.Context, s model.WorkoutSession) error

	// Query returns all sessions for an identity in insertion order.
	Query(ctx context.Context, identity string) []model.WorkoutSession

	// All returns every recorded session in insertion order.
	All(ctx context.Context) []model.WorkoutSession

	// Count returns the number of recorded sessions.
	Count(ctx context.Context) int
}

// InMemoryLedger implements Ledger with an in-memory append log.
type InMemoryLedger struct {
	mu       sync.RWMutex
	sessions []model.WorkoutSession
	seen     map[string]struct{} // session id -> recorded
}

// NewInMemoryLedger creates an empty ledger.
func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{
		seen: make(map[string]struct{}),
	}
}

// Append adds one session record.
func (l *InMemoryLedger) Append(_ context.Context, s model.WorkoutSession) error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing session id", ErrInvalidSession)
	}
	if s.Identity == "" {
		return fmt.Errorf("%w: missing identity", ErrInvalidSession)
	}
	if s.TrainerID == "" {
		return fmt.Errorf("%w: missing trainer id", ErrInvalidSession)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[s.ID]; ok {
		return fmt.Errorf("%w: session %s", ErrDuplicateSession, s.ID)
	}
	l.seen[s.ID] = struct{}{}
	l.sessions = append(l.sessions, s)
	return nil
}

// Query returns the identity's sessions in insertion order.
func (l *InMemoryLedger) Query(_ context.Context, identity string) []model.WorkoutSession {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []model.WorkoutSession
	for _, s := range l.sessions {
		if s.Identity == identity {
			out = append(out, s)
		}
	}
	return out
}

// All returns a snapshot of every session in insertion order.
func (l *InMemoryLedger) All(_ context.Context) []model.WorkoutSession {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.WorkoutSession, len(l.sessions))
	copy(out, l.sessions)
	return out
}

// Count returns the number of recorded sessions.
func (l *InMemoryLedger) Count(_ context.Context) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sessions)
}
