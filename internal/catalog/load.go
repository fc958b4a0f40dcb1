// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads and validates a YAML catalog file.
//
// Expected layout:
//
//	priors:
//	  - {genre: Action, weight: 0.15}
//	moods:
//	  - name: Excited
//	    weights:
//	      - {genre: Action, weight: 0.4}
//	movies:
//	  - {title: The Matrix, genres: [Action, Sci-Fi], rating: 8.7}
func Load(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}

	cat := &Catalog{}
	if err := k.Unmarshal("", cat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog %s: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return cat, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
