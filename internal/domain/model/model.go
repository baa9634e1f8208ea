// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"
)

// DefaultIdentity is the demo wallet address used for per-identity state
// while no wallet is connected. Real connections supersede it.
const DefaultIdentity = "0x1234567890abcdef1234567890abcdef12345678"

// DateLayout is the day-granularity format used for daily badges and
// session dates.
const DateLayout = "2006-01-02"

// Difficulty is the workout difficulty level.
type Difficulty string

// Supported difficulty levels.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the supported levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// ParseDifficulty validates and returns a Difficulty from its wire form.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// WorkoutSession is one completed timed workout. Records are immutable
// once appended to the ledger.
type WorkoutSession struct {
	ID              string
	Identity        string // wallet address
	TrainerID       string
	Difficulty      Difficulty
	UserScore       int // calories burned, attributed to the identity
	TrainerScore    int // trainer score increment earned by this session
	TokensEarned    int // calories burned = tokens earned (1:1)
	CaloriesBurned  int
	DurationMinutes int
	Timestamp       time.Time
	Date            string // YYYY-MM-DD
}

// Trainer is a selectable persona with cumulative score state.
type Trainer struct {
	ID          string
	Name        string
	Power       int
	Spirit      int
	Flexibility int
	Description string

	UserScore    int // cumulative calories attributed to the identity's effort
	TrainerScore int // cumulative trainer growth score
}

// TotalScore is the trainer's combined authoritative score.
func (t Trainer) TotalScore() int {
	return t.UserScore + t.TrainerScore
}

// ExchangeRecord is one successful exchange, append-only.
type ExchangeRecord struct {
	ID        string
	ItemID    string
	ItemName  string
	TokenCost int
	Timestamp time.Time
}

// DayOf formats a timestamp at day granularity.
func DayOf(t time.Time) string {
	return t.Format(DateLayout)
}
