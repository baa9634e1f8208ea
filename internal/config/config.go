// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import "context"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// InitialTokens seeds the token balance at startup.
	InitialTokens int `koanf:"initial_tokens"`

	// ReproductionRate is the stubbed motion-fidelity percentage used
	// until a real detector feed is wired in.
	ReproductionRate float64 `koanf:"reproduction_rate"`

	// DriftEnabled toggles the cosmetic trainer-score drift stream.
	DriftEnabled bool `koanf:"drift_enabled"`

	// DriftIntervalMS is the drift tick interval in milliseconds.
	DriftIntervalMS int `koanf:"drift_interval_ms"`

	// MirrorPath points the best-effort persistence mirror at a SQLite
	// file. Empty disables mirroring.
	MirrorPath string `koanf:"mirror_path"`

	// MirrorQueueSize bounds the mirror write queue.
	MirrorQueueSize int `koanf:"mirror_queue_size"`

	// SeedDemoData controls whether the demo session history and
	// ranking seeds are loaded at startup.
	SeedDemoData bool `koanf:"seed_demo_data"`

	// CaloriesPerMinute overrides the kcal/min burn table by difficulty.
	CaloriesPerMinute map[string]int `koanf:"calories_per_minute"`

	// DifficultyMultipliers overrides the trainer-score multiplier table.
	DifficultyMultipliers map[string]float64 `koanf:"difficulty_multipliers"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		MaxLeaderboardLimit: 100,
		InitialTokens:       25_000,
		ReproductionRate:    100,
		DriftEnabled:        true,
		DriftIntervalMS:     3000,
		MirrorPath:          "",
		MirrorQueueSize:     1024,
		SeedDemoData:        true,
		CaloriesPerMinute: map[string]int{
			"beginner":     8,
			"intermediate": 12,
			"advanced":     18,
		},
		DifficultyMultipliers: map[string]float64{
			"beginner":     1.0,
			"intermediate": 1.5,
			"advanced":     2.0,
		},
	}
}
