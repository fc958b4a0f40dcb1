// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"fmt"
	"math"
)

// Config contains configuration for the recommendation engine.
type Config struct {
	// GenreBoost multiplies the prior of every selected genre.
	// Default: 2.0.
	GenreBoost float64 `json:"genre_boost"`

	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits"`
}

// LimitsConfig contains result size limits.
type LimitsConfig struct {
	// DefaultK is the number of movies returned when a request leaves K unset.
	// Default: 5.
	DefaultK int `json:"default_k"`

	// MaxK is the largest K a request may ask for; larger values are capped.
	// Default: 50.
	MaxK int `json:"max_k"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	return &Config{
		GenreBoost: 2.0,
		Limits: LimitsConfig{
			DefaultK: 5,
			MaxK:     50,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.GenreBoost <= 0 || math.IsInf(c.GenreBoost, 0) || math.IsNaN(c.GenreBoost) {
		return fmt.Errorf("genre_boost must be a positive finite number, got %f", c.GenreBoost)
	}
	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k must be >= limits.default_k, got %d < %d", c.Limits.MaxK, c.Limits.DefaultK)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
