package config

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const weightSumTolerance = 1e-6

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SHOTFORM_CONFIG is set
//  3. env (prefix SHOTFORM_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SHOTFORM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SHOTFORM_WINDOW_SIZE, SHOTFORM_LOG_LEVEL, ...
	// Map env keys like SHOTFORM_WINDOW_SIZE -> window_size (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SHOTFORM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "shotform_")
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate enforces the invariants the pipeline relies on.
func (c *Config) validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("%w: window_size must be positive", ErrInvalidConfig)
	}
	if c.ShootingSide != "left" && c.ShootingSide != "right" {
		return fmt.Errorf("%w: shooting_side must be left or right, got %q", ErrInvalidConfig, c.ShootingSide)
	}
	if c.ElbowToleranceDeg <= 0 {
		return fmt.Errorf("%w: elbow_tolerance_deg must be positive", ErrInvalidConfig)
	}
	if c.ReleaseMaxDeg <= c.ReleaseMinDeg {
		return fmt.Errorf("%w: release band must satisfy min < max", ErrInvalidConfig)
	}
	if c.KneeMaxDeg <= c.KneeMinDeg {
		return fmt.Errorf("%w: knee band must satisfy min < max", ErrInvalidConfig)
	}
	sum := c.WeightElbow + c.WeightRelease + c.WeightKnee + c.WeightAlignment
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: composite weights must sum to 1, got %.6f", ErrInvalidConfig, sum)
	}
	return nil
}
