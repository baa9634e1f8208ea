package mirror

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/daily"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
)

// migrations returns the mirror schema statements. Each string is a
// single SQL statement (SQLite executes one at a time).
func migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS workout_sessions (
			id               TEXT PRIMARY KEY,
			identity         TEXT NOT NULL,
			trainer_id       TEXT NOT NULL,
			difficulty       TEXT NOT NULL,
			user_score       INTEGER NOT NULL,
			trainer_score    INTEGER NOT NULL,
			tokens_earned    INTEGER NOT NULL,
			calories_burned  INTEGER NOT NULL,
			duration_minutes INTEGER NOT NULL,
			ts               TEXT NOT NULL,
			date             TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_identity ON workout_sessions(identity)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_date ON workout_sessions(date)`,

		`CREATE TABLE IF NOT EXISTS daily_badges (
			id       TEXT PRIMARY KEY,
			identity TEXT NOT NULL,
			date     TEXT NOT NULL,
			ts       TEXT NOT NULL,
			UNIQUE(identity, date)
		)`,

		`CREATE TABLE IF NOT EXISTS exchange_history (
			id         TEXT PRIMARY KEY,
			item_id    TEXT NOT NULL,
			item_name  TEXT NOT NULL,
			token_cost INTEGER NOT NULL,
			ts         TEXT NOT NULL
		)`,
	}
}

// SQLiteSink implements Sink on a local SQLite database.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLiteSink opens (or creates) the mirror database at path and
// applies the schema.
func NewSQLiteSink(ctx context.Context, path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open mirror db: %w", err)
	}
	for _, stmt := range migrations() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate mirror db: %w", err)
		}
	}
	return &SQLiteSink{db: db}, nil
}

// WriteSession persists one completed session.
func (s *SQLiteSink) WriteSession(ctx context.Context, ws model.WorkoutSession) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO workout_sessions
		 (id, identity, trainer_id, difficulty, user_score, trainer_score,
		  tokens_earned, calories_burned, duration_minutes, ts, date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ws.ID, ws.Identity, ws.TrainerID, string(ws.Difficulty),
		ws.UserScore, ws.TrainerScore, ws.TokensEarned, ws.CaloriesBurned,
		ws.DurationMinutes, nowUTC(ws.Timestamp), ws.Date,
	)
	if err != nil {
		return fmt.Errorf("mirror session %s: %w", ws.ID, err)
	}
	return nil
}

// WriteBadge persists one daily badge.
func (s *SQLiteSink) WriteBadge(ctx context.Context, b daily.Badge) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_badges (id, identity, date, ts) VALUES (?, ?, ?, ?)`,
		b.ID, b.Identity, b.Date, nowUTC(b.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("mirror badge %s: %w", b.ID, err)
	}
	return nil
}

// WriteExchange persists one exchange record.
func (s *SQLiteSink) WriteExchange(ctx context.Context, e model.ExchangeRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO exchange_history (id, item_id, item_name, token_cost, ts)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.ItemID, e.ItemName, e.TokenCost, nowUTC(e.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("mirror exchange %s: %w", e.ID, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteSink) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close mirror db: %w", err)
	}
	return nil
}
