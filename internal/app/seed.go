package service

import (
	"context"
	"fmt"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/daily"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	"github.com/MyuRay/ONE-FIT-HERO/pkg/logger"
)

// demoSession is one historical workout used to pre-populate the demo
// environment. Ages are days before start.
type demoSession struct {
	identity        string
	trainerID       string
	difficulty      model.Difficulty
	userScore       int
	trainerScore    int
	tokensEarned    int
	caloriesBurned  int
	durationMinutes int
	ageDays         int
}

func demoSessions() []demoSession {
	return []demoSession{
		{model.DefaultIdentity, "trainer-1", model.DifficultyBeginner, 2500, 3000, 120, 120, 15, 6},
		{model.DefaultIdentity, "trainer-2", model.DifficultyIntermediate, 3750, 4500, 180, 180, 15, 5},
		{model.DefaultIdentity, "trainer-1", model.DifficultyAdvanced, 5000, 6000, 270, 270, 15, 4},
		{"0xabcdef1234567890abcdef1234567890abcdef12", "trainer-3", model.DifficultyBeginner, 2200, 2800, 96, 96, 12, 3},
		{"0xabcdef1234567890abcdef1234567890abcdef12", "trainer-2", model.DifficultyIntermediate, 3600, 4200, 144, 144, 12, 2},
		{"0x9876543210fedcba9876543210fedcba98765432", "trainer-1", model.DifficultyAdvanced, 4800, 5800, 216, 216, 12, 1},
	}
}

// loadDemoData seeds the ledger, trainer totals and daily badges with
// the fixed demo history. Called once from Start, before the service
// accepts requests.
func (s *Service) loadDemoData(ctx context.Context) {
	now := s.now()

	for i, d := range demoSessions() {
		ts := now.AddDate(0, 0, -d.ageDays)
		session := model.WorkoutSession{
			ID:              fmt.Sprintf("session-%d", i+1),
			Identity:        d.identity,
			TrainerID:       d.trainerID,
			Difficulty:      d.difficulty,
			UserScore:       d.userScore,
			TrainerScore:    d.trainerScore,
			TokensEarned:    d.tokensEarned,
			CaloriesBurned:  d.caloriesBurned,
			DurationMinutes: d.durationMinutes,
			Timestamp:       ts,
			Date:            model.DayOf(ts),
		}
		if err := s.sessions.Append(ctx, session); err != nil {
			s.logger.Warn(ctx, "demo session skipped", logger.Error(err))
			continue
		}
		if err := s.accumulator.Apply(ctx, session); err != nil {
			s.logger.Warn(ctx, "demo session not accumulated", logger.Error(err))
		}
	}

	// The demo identity completed each of the previous six days.
	for i := 6; i >= 1; i-- {
		ts := now.AddDate(0, 0, -i)
		s.tracker.SeenAndRecord(ctx, daily.Badge{
			ID:        fmt.Sprintf("badge-%d", 7-i),
			Identity:  model.DefaultIdentity,
			Date:      model.DayOf(ts),
			Timestamp: ts,
		})
	}

	s.logger.Info(ctx, "demo data loaded",
		logger.Int("sessions", len(demoSessions())),
		logger.Int("dailyBadges", 6),
	)
}
