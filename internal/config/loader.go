package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if ONEFIT_CONFIG is set
//  3. env (prefix ONEFIT_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ONEFIT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ONEFIT_ADDR, ONEFIT_INITIAL_TOKENS, ...
	// Map env keys like ONEFIT_INITIAL_TOKENS -> initial_tokens (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ONEFIT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "onefit_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.ReproductionRate < 0 || cfg.ReproductionRate > 100 {
		return nil, fmt.Errorf("%w: reproduction_rate must be within [0,100]", ErrInvalidConfig)
	}
	if cfg.InitialTokens < 0 {
		return nil, fmt.Errorf("%w: initial_tokens must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
