// Package types contains common read-projection types used across the
// application and the HTTP API.
package types

import "time"

// RankingEntry represents one leaderboard row.
type RankingEntry struct {
	Rank           int    `json:"rank"`
	Address        string `json:"address"`
	TotalWorkouts  int    `json:"total_workouts"`
	Score          int    `json:"score"`
	HasPrizeTicket bool   `json:"has_prize_ticket"`
}

// Trainer represents a trainer persona with live scores.
type Trainer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Power        int    `json:"power"`
	Spirit       int    `json:"spirit"`
	Flexibility  int    `json:"flexibility"`
	Description  string `json:"description,omitempty"`
	UserScore    int    `json:"user_score"`
	TrainerScore int    `json:"trainer_score"`
}

// Badge represents the evaluated state of one registry badge.
type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Emoji       string     `json:"emoji"`
	Rarity      string     `json:"rarity"`
	Kind        string     `json:"kind"`
	Unlocked    bool       `json:"unlocked"`
	Progress    int        `json:"progress,omitempty"`
	MaxProgress int        `json:"max_progress,omitempty"`
	GrantedAt   *time.Time `json:"granted_at,omitempty"`
}

// DailyBadge represents one daily completion marker.
type DailyBadge struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

// TokenBalance represents the current token state.
type TokenBalance struct {
	Amount      int       `json:"amount"`
	LastUpdated time.Time `json:"last_updated"`
}

// ExchangeItem represents one catalog entry.
type ExchangeItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	TokenCost   int    `json:"token_cost"`
	Available   bool   `json:"available"`
}

// ExchangeRecord represents one successful exchange.
type ExchangeRecord struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	TokenCost int       `json:"token_cost"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionResult is the outcome of a completed workout session.
type SessionResult struct {
	SessionID             string `json:"session_id"`
	UserScore             int    `json:"user_score"`
	TrainerScoreIncrement int    `json:"trainer_score_increment"`
	TokensEarned          int    `json:"tokens_earned"`
	CaloriesBurned        int    `json:"calories_burned"`
	DurationMinutes       int    `json:"duration_minutes"`
	DailyBadgeGranted     bool   `json:"daily_badge_granted"`
}
