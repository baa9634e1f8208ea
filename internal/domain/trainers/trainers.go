// Package trainers holds the fixed trainer catalog and the per-trainer
// running score totals.
package trainers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
)

// Accumulator applies completed sessions to per-trainer running totals.
// Totals are monotonically non-decreasing and are mutated only by
// completed sessions and the fixed seed values at construction.
//
// A cosmetic drift overlay simulates other players' concurrent
// activity. It is tracked separately and never contaminates the
// authoritative totals, which stay recoverable at all times.
type Accumulator struct {
	mu    sync.RWMutex
	order []string                  // catalog iteration order
	byID  map[string]*model.Trainer // authoritative state
	drift map[string]int            // cosmetic overlay, display only
}

// NewAccumulator creates an accumulator over the given catalog. The
// catalog order is preserved for iteration and tie-breaking.
func NewAccumulator(catalog []model.Trainer) *Accumulator {
	a := &Accumulator{
		byID:  make(map[string]*model.Trainer, len(catalog)),
		drift: make(map[string]int, len(catalog)),
	}
	for _, t := range catalog {
		t := t
		a.order = append(a.order, t.ID)
		a.byID[t.ID] = &t
	}
	return a
}

// Known reports whether a trainer id exists in the catalog.
func (a *Accumulator) Known(id string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.byID[id]
	return ok
}

// Apply adds one session's awards to the trainer's totals. It is called
// exactly once per ledger append, synchronously.
func (a *Accumulator) Apply(_ context.Context, s model.WorkoutSession) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.byID[s.TrainerID]
	if !ok {
		return fmt.Errorf("%w: trainer %s", ErrUnknownTrainer, s.TrainerID)
	}
	t.UserScore += s.UserScore
	t.TrainerScore += s.TrainerScore
	return nil
}

// BoostStats raises the trainer's display attributes by one each, as
// awarded on the first completion of a calendar day.
func (a *Accumulator) BoostStats(_ context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, ok := a.byID[id]
	if !ok {
		return fmt.Errorf("%w: trainer %s", ErrUnknownTrainer, id)
	}
	t.Power++
	t.Spirit++
	t.Flexibility++
	return nil
}

// Get returns the authoritative trainer state.
func (a *Accumulator) Get(id string) (model.Trainer, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	t, ok := a.byID[id]
	if !ok {
		return model.Trainer{}, false
	}
	return *t, true
}

// List returns the authoritative trainer states in catalog order,
// without the drift overlay.
func (a *Accumulator) List() []model.Trainer {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]model.Trainer, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, *a.byID[id])
	}
	return out
}

// ListLive returns the trainer states in catalog order with the
// cosmetic drift overlay added to the trainer score. Display only.
func (a *Accumulator) ListLive() []model.Trainer {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]model.Trainer, 0, len(a.order))
	for _, id := range a.order {
		t := *a.byID[id]
		t.TrainerScore += a.drift[id]
		out = append(out, t)
	}
	return out
}

// AddDrift adds a cosmetic increment to the trainer's drift overlay.
// The authoritative totals are untouched.
func (a *Accumulator) AddDrift(id string, delta int) {
	if delta <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.byID[id]; ok {
		a.drift[id] += delta
	}
}

// IDs returns the catalog trainer ids in catalog order.
func (a *Accumulator) IDs() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}
