// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/moodreel/internal/validation"
)

// ErrInvalidCatalog is wrapped by every Validate failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks field constraints and cross-entry consistency.
//
// Movie and mood genres that have no prior are allowed. They contribute
// nothing to scores and are not inserted into the working weights.
func (c *Catalog) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, verr.Error())
	}

	sum := 0.0
	genres := make(map[string]struct{}, len(c.Priors))
	for _, p := range c.Priors {
		if _, dup := genres[p.Genre]; dup {
			return fmt.Errorf("%w: duplicate genre prior %q", ErrInvalidCatalog, p.Genre)
		}
		if math.IsInf(p.Weight, 0) {
			return fmt.Errorf("%w: genre %q has infinite weight", ErrInvalidCatalog, p.Genre)
		}
		genres[p.Genre] = struct{}{}
		sum += p.Weight
	}
	if math.IsInf(sum, 0) || math.IsNaN(sum) {
		return fmt.Errorf("%w: genre prior weights overflow", ErrInvalidCatalog)
	}
	if sum <= 0 {
		return fmt.Errorf("%w: genre prior weights must have a positive sum", ErrInvalidCatalog)
	}

	moods := make(map[string]struct{}, len(c.Moods))
	for i := range c.Moods {
		m := &c.Moods[i]
		if _, dup := moods[m.Name]; dup {
			return fmt.Errorf("%w: duplicate mood %q", ErrInvalidCatalog, m.Name)
		}
		moods[m.Name] = struct{}{}

		seen := make(map[string]struct{}, len(m.Weights))
		for _, w := range m.Weights {
			if _, dup := seen[w.Genre]; dup {
				return fmt.Errorf("%w: mood %q weights genre %q twice", ErrInvalidCatalog, m.Name, w.Genre)
			}
			if math.IsInf(w.Weight, 0) {
				return fmt.Errorf("%w: mood %q has infinite weight for %q", ErrInvalidCatalog, m.Name, w.Genre)
			}
			seen[w.Genre] = struct{}{}
		}
	}

	titles := make(map[string]struct{}, len(c.Movies))
	for _, mv := range c.Movies {
		if _, dup := titles[mv.Title]; dup {
			return fmt.Errorf("%w: duplicate movie title %q", ErrInvalidCatalog, mv.Title)
		}
		titles[mv.Title] = struct{}{}
	}

	return nil
}
