// Package scoring defines the contract for converting a timed workout
// into user score, trainer score increment and earned tokens.
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
)

// Scoring constants.
const (
	minutesPerSecond = 1.0 / 60.0
	fullRate         = 100.0
	minAward         = 1 // every completion awards at least one point/token
)

// defaultCaloriesPerMinute is the kcal/min burn table by difficulty.
func defaultCaloriesPerMinute() map[model.Difficulty]int {
	return map[model.Difficulty]int{
		model.DifficultyBeginner:     8,
		model.DifficultyIntermediate: 12,
		model.DifficultyAdvanced:     18,
	}
}

// defaultMultipliers is the trainer-score multiplier table by difficulty.
func defaultMultipliers() map[model.Difficulty]float64 {
	return map[model.Difficulty]float64{
		model.DifficultyBeginner:     1.0,
		model.DifficultyIntermediate: 1.5,
		model.DifficultyAdvanced:     2.0,
	}
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithCalorieTable overrides the kcal/min table. Entries with
// non-positive values are ignored.
func WithCalorieTable(table map[model.Difficulty]int) Option {
	return func(c *Calculator) {
		for d, v := range table {
			if d.Valid() && v > 0 {
				c.caloriesPerMinute[d] = v
			}
		}
	}
}

// WithDifficultyMultipliers overrides the trainer-score multiplier table.
func WithDifficultyMultipliers(table map[model.Difficulty]float64) Option {
	return func(c *Calculator) {
		for d, v := range table {
			if d.Valid() && v > 0 {
				c.multipliers[d] = v
			}
		}
	}
}

// Input abstracts the completion event fields needed for scoring.
type Input struct {
	Difficulty model.Difficulty
	// ElapsedSeconds is active workout time, accumulated only while the
	// session was not paused.
	ElapsedSeconds int
	// ReproductionRate is the externally judged motion-fidelity
	// percentage in [0,100].
	ReproductionRate float64
	// RawTrainerAccrual is the per-tick trainer accrual gathered while
	// video playback was in the playing state.
	RawTrainerAccrual int
}

// Result contains the computed awards for a completed session.
type Result struct {
	UserScore             int
	TrainerScoreIncrement int
	TokensEarned          int
	CaloriesBurned        int
	DurationMinutes       int
}

// Scorer computes session awards from an input.
type Scorer interface {
	// Score computes session awards, honoring ctx for cancellation.
	Score(ctx context.Context, in Input) (Result, error)
}

// Calculator implements Scorer with the fixed difficulty tables.
type Calculator struct {
	caloriesPerMinute map[model.Difficulty]int
	multipliers       map[model.Difficulty]float64
}

// NewCalculator creates a calculator with configuration options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		caloriesPerMinute: defaultCaloriesPerMinute(),
		multipliers:       defaultMultipliers(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Score computes the awards for one completed workout.
//
// The user score is floor(elapsedMinutes * kcalPerMin * rate/100); a
// reproduction rate of exactly 100 yields the unscaled calorie value so
// full credit is never lost to a rounding artifact of 100/100. Any
// completion awards at least one point and one token.
func (c *Calculator) Score(ctx context.Context, in Input) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, fmt.Errorf("scoring cancelled: %w", ctx.Err())
	default:
	}

	if !in.Difficulty.Valid() {
		return Result{}, fmt.Errorf("%w: difficulty %q", ErrInvalidDifficulty, string(in.Difficulty))
	}
	if in.ReproductionRate < 0 || in.ReproductionRate > fullRate {
		return Result{}, fmt.Errorf("%w: reproduction rate %.2f out of [0,100]", ErrInvalidRate, in.ReproductionRate)
	}
	if in.ElapsedSeconds < 0 {
		return Result{}, fmt.Errorf("%w: negative elapsed seconds", ErrInvalidElapsed)
	}
	if in.RawTrainerAccrual < 0 {
		return Result{}, fmt.Errorf("%w: negative trainer accrual", ErrInvalidElapsed)
	}

	minutes := float64(in.ElapsedSeconds) * minutesPerSecond
	kcal := float64(c.caloriesPerMinute[in.Difficulty])

	var userScore int
	if in.ReproductionRate >= fullRate {
		// Full reproduction: award the unscaled calorie value.
		userScore = int(math.Floor(minutes * kcal))
	} else {
		userScore = int(math.Floor(minutes * kcal * (in.ReproductionRate / fullRate)))
	}
	if userScore < minAward {
		userScore = minAward
	}

	increment := int(math.Floor(float64(in.RawTrainerAccrual) * c.multipliers[in.Difficulty]))
	if increment < minAward {
		increment = minAward
	}

	return Result{
		UserScore:             userScore,
		TrainerScoreIncrement: increment,
		TokensEarned:          userScore, // 1:1 policy, calories = tokens
		CaloriesBurned:        userScore,
		DurationMinutes:       in.ElapsedSeconds / 60,
	}, nil
}
