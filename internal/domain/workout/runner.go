// Package workout runs the per-session clock: elapsed active seconds
// and the per-tick trainer accrual gated by video playback state.
package workout

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	"github.com/MyuRay/ONE-FIT-HERO/pkg/metrics"
)

// Default runner configuration constants.
const (
	defaultTickInterval = time.Second
	defaultRandomSeed   = 42
	accrualMin          = 1
	accrualSpread       = 5 // accrual per playing tick is in [1,5]
)

// PlaybackState mirrors the coaching-video player state signal.
type PlaybackState string

// Playback states.
const (
	PlaybackIdle    PlaybackState = "idle"
	PlaybackPlaying PlaybackState = "playing"
	PlaybackPaused  PlaybackState = "paused"
	PlaybackEnded   PlaybackState = "ended"
)

// Valid reports whether p is a known playback state.
func (p PlaybackState) Valid() bool {
	switch p {
	case PlaybackIdle, PlaybackPlaying, PlaybackPaused, PlaybackEnded:
		return true
	default:
		return false
	}
}

// Snapshot is the deterministic result of a stopped workout clock.
type Snapshot struct {
	TrainerID      string
	Difficulty     model.Difficulty
	ElapsedSeconds int
	RawAccrual     int
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithTickSource replaces the wall-clock ticker with an external tick
// channel, for deterministic tests. cancel may be nil.
func WithTickSource(ticks <-chan time.Time, cancel func()) Option {
	return func(r *Runner) {
		if ticks != nil {
			r.ticks = ticks
			r.cancelTicks = cancel
		}
	}
}

// WithRand sets the random source for per-tick accrual.
func WithRand(rng *rand.Rand) Option {
	return func(r *Runner) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// Runner owns one workout session's clock. The clock increments
// elapsed active time once per tick while the session is not paused;
// trainer accrual accrues only while playback is playing. Stopping the
// runner deterministically halts the clock: no mutation happens after
// Stop returns, even if ticks keep arriving.
type Runner struct {
	mu         sync.Mutex
	trainerID  string
	difficulty model.Difficulty
	elapsed    int
	accrual    int
	paused     bool
	playback   PlaybackState
	stopped    bool

	ticks       <-chan time.Time
	cancelTicks func()
	rng         *rand.Rand

	stop chan struct{}
	done chan struct{}
}

// NewRunner creates a workout clock for one trainer and difficulty.
func NewRunner(trainerID string, difficulty model.Difficulty, opts ...Option) *Runner {
	r := &Runner{
		trainerID:  trainerID,
		difficulty: difficulty,
		playback:   PlaybackIdle,
		rng:        rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // cosmetic accrual, not security-sensitive
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.ticks == nil {
		ticker := time.NewTicker(defaultTickInterval)
		r.ticks = ticker.C
		r.cancelTicks = ticker.Stop
	}

	return r
}

// Run starts the clock loop until the runner is stopped or ctx is
// canceled. Cleanup is structured: the tick source is always released
// and done is always closed, including on abnormal teardown.
func (r *Runner) Run(ctx context.Context) {
	defer func() {
		if r.cancelTicks != nil {
			r.cancelTicks()
		}
		close(r.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stop:
			return
		case <-r.ticks:
			if !r.tick() {
				return
			}
		}
	}
}

// tick applies one clock tick. Returns false once the runner has been
// stopped, so a tick racing the stop signal never mutates state.
func (r *Runner) tick() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return false
	}
	if !r.paused {
		r.elapsed++
		metrics.RecordWorkoutSecond()
	}
	if r.playback == PlaybackPlaying {
		r.accrual += accrualMin + r.rng.Intn(accrualSpread)
	}
	return true
}

// Pause suspends elapsed-time accumulation.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = true
}

// Resume restarts elapsed-time accumulation.
func (r *Runner) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = false
}

// SetPlayback updates the video playback signal gating trainer accrual.
func (r *Runner) SetPlayback(state PlaybackState) error {
	if !state.Valid() {
		return fmt.Errorf("%w: playback state %q", ErrInvalidPlayback, string(state))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playback = state
	return nil
}

// Elapsed returns the current active seconds.
func (r *Runner) Elapsed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elapsed
}

// Stop halts the clock and returns its final snapshot. The snapshot is
// deterministic: once Stop returns, no further mutation can occur.
func (r *Runner) Stop(ctx context.Context) (Snapshot, error) {
	r.mu.Lock()
	if r.stopped {
		snap := r.snapshotLocked()
		r.mu.Unlock()
		return snap, nil
	}
	r.stopped = true
	snap := r.snapshotLocked()
	r.mu.Unlock()

	close(r.stop)

	select {
	case <-r.done:
		return snap, nil
	case <-ctx.Done():
		return snap, fmt.Errorf("workout stop timed out: %w", ctx.Err())
	}
}

func (r *Runner) snapshotLocked() Snapshot {
	return Snapshot{
		TrainerID:      r.trainerID,
		Difficulty:     r.difficulty,
		ElapsedSeconds: r.elapsed,
		RawAccrual:     r.accrual,
	}
}
