// Package badges evaluates the fixed badge registry against the
// aggregated workout state.
//
// Two badge semantics exist and are modeled as explicit variants:
// progress badges are fully recomputed on every evaluation and carry
// progress/maxProgress for partial display; achievement badges are
// one-shot, append-only grants that are never revoked once the
// triggering condition was observed.
package badges

import (
	"sync"
	"time"
)

// Kind tags a badge definition variant.
type Kind string

// Badge variants.
const (
	KindProgress    Kind = "progress"
	KindAchievement Kind = "achievement"
)

// Rarity grades a badge for display.
type Rarity string

// Badge rarities.
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Metric names a monitored counter for progress badges.
type Metric string

// Monitored counters.
const (
	MetricConsecutiveDays Metric = "consecutive_days"
	MetricTotalWorkouts   Metric = "total_workouts"
	MetricTotalScore      Metric = "total_score"
)

// Contribution is the identity's cumulative contribution to one
// trainer, in catalog order.
type Contribution struct {
	TrainerID string
	Amount    int
}

// State is the evaluation input, derived fresh from the ledger, the
// accumulator and the current leaderboard.
type State struct {
	ConsecutiveDays int
	TotalWorkouts   int
	TotalScore      int
	Rank            int // 0 when unranked
	Contributions   []Contribution
}

// Definition describes one badge in the registry.
type Definition struct {
	ID          string
	Name        string
	Description string
	Emoji       string
	Rarity      Rarity
	Kind        Kind

	// Progress variant: unlocked when Metric crosses Threshold.
	Metric    Metric
	Threshold int

	// Achievement variant: one-shot condition.
	Condition func(State) bool
}

// Status is the evaluated view of one badge.
type Status struct {
	Definition
	Unlocked    bool
	Progress    int       // progress variant only
	MaxProgress int       // progress variant only
	GrantedAt   time.Time // achievement variant, zero until granted
}

// Option applies a configuration option to the Evaluator.
type Option func(*Evaluator)

// WithDefinitions replaces the default registry.
func WithDefinitions(defs []Definition) Option {
	return func(e *Evaluator) {
		if len(defs) > 0 {
			e.defs = defs
		}
	}
}

// WithClock sets the time source used for achievement grant stamps.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		if now != nil {
			e.now = now
		}
	}
}

// Evaluator re-derives the unlocked badge set on every relevant state
// change. Achievement grants are recorded append-only.
type Evaluator struct {
	mu      sync.Mutex
	defs    []Definition
	granted map[string]time.Time // achievement id -> grant time
	now     func() time.Time
}

// NewEvaluator creates an evaluator with configuration options.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		defs:    DefaultRegistry(),
		granted: make(map[string]time.Time),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate derives the full badge status set for the given state.
//
// Progress badges are recomputed from scratch so stored flags can never
// drift from the actual counters. Achievement badges are checked for an
// existing grant first; a newly true condition records a grant, and a
// condition that later turns false never removes one.
func (e *Evaluator) Evaluate(state State) []Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Status, 0, len(e.defs))
	for _, def := range e.defs {
		st := Status{Definition: def}

		switch def.Kind {
		case KindProgress:
			current := metricValue(def.Metric, state)
			st.Progress = current
			st.MaxProgress = def.Threshold
			st.Unlocked = current >= def.Threshold
		case KindAchievement:
			if grantedAt, ok := e.granted[def.ID]; ok {
				st.Unlocked = true
				st.GrantedAt = grantedAt
			} else if def.Condition != nil && def.Condition(state) {
				grantedAt := e.now()
				e.granted[def.ID] = grantedAt
				st.Unlocked = true
				st.GrantedAt = grantedAt
			}
		}

		out = append(out, st)
	}
	return out
}

// NewlyGranted returns achievement ids granted by the most recent
// Evaluate calls since the given time.
func (e *Evaluator) NewlyGranted(since time.Time) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []string
	for _, def := range e.defs {
		if at, ok := e.granted[def.ID]; ok && at.After(since) {
			out = append(out, def.ID)
		}
	}
	return out
}

// Granted reports whether an achievement id has been granted.
func (e *Evaluator) Granted(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.granted[id]
	return ok
}

func metricValue(m Metric, state State) int {
	switch m {
	case MetricConsecutiveDays:
		return state.ConsecutiveDays
	case MetricTotalWorkouts:
		return state.TotalWorkouts
	case MetricTotalScore:
		return state.TotalScore
	default:
		return 0
	}
}

// topContributorTrainer returns the trainer receiving the identity's
// highest nonzero contribution. Ties resolve to the first trainer in
// catalog order.
func topContributorTrainer(state State) (string, bool) {
	best := ""
	bestAmount := 0
	for _, c := range state.Contributions {
		if c.Amount > bestAmount {
			best = c.TrainerID
			bestAmount = c.Amount
		}
	}
	return best, bestAmount > 0
}

// contributedToAll reports nonzero contribution to every trainer in the
// catalog. An empty catalog never qualifies.
func contributedToAll(state State) bool {
	if len(state.Contributions) == 0 {
		return false
	}
	for _, c := range state.Contributions {
		if c.Amount <= 0 {
			return false
		}
	}
	return true
}
