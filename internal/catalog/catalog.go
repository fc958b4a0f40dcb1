// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package catalog holds the reference tables the recommender scores against:
// genre prior weights, mood-conditional genre weights and the movie list.
//
// A Catalog is immutable once loaded. Callers must treat the exported slices
// as read-only; PriorMap hands out a fresh copy for per-request mutation.
//
// The built-in tables come from Default. A replacement can be loaded from a
// YAML file with Load, which makes the dataset swappable at startup without
// any code change.
package catalog

// Movie is a single catalog entry.
type Movie struct {
	// Title is the display title and unique key.
	Title string `koanf:"title" json:"title" validate:"label"`

	// Genres is the ordered list of genre labels.
	Genres []string `koanf:"genres" json:"genres" validate:"required,min=1,unique,dive,label"`

	// Rating is the static critic rating (0-10).
	Rating float64 `koanf:"rating" json:"rating" validate:"gte=0,lte=10"`
}

// GenrePrior is the baseline weight of a genre before any user input.
type GenrePrior struct {
	Genre  string  `koanf:"genre" json:"genre" validate:"label"`
	Weight float64 `koanf:"weight" json:"weight" validate:"gte=0"`
}

// GenreWeight is a mood-conditional adjustment for a genre.
// A genre's working weight is multiplied by (1 + Weight).
type GenreWeight struct {
	Genre  string  `koanf:"genre" json:"genre" validate:"label"`
	Weight float64 `koanf:"weight" json:"weight" validate:"gte=0"`
}

// Mood groups the genre adjustments applied when the mood is selected.
type Mood struct {
	Name    string        `koanf:"name" json:"name" validate:"label"`
	Weights []GenreWeight `koanf:"weights" json:"weights" validate:"dive"`
}

// Catalog is the full set of reference tables.
type Catalog struct {
	// Priors is ordered; the order is the genre presentation order.
	Priors []GenrePrior `koanf:"priors" json:"priors" validate:"required,min=1,dive"`

	// Moods is ordered; the first mood is the presentation default.
	Moods []Mood `koanf:"moods" json:"moods" validate:"dive"`

	// Movies is the scoring universe.
	Movies []Movie `koanf:"movies" json:"movies" validate:"required,min=1,dive"`
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.Movies)
}

// PriorMap returns a new genre -> weight map. The caller owns the result.
func (c *Catalog) PriorMap() map[string]float64 {
	m := make(map[string]float64, len(c.Priors))
	for _, p := range c.Priors {
		m[p.Genre] = p.Weight
	}
	return m
}

// MoodWeights returns the adjustments for the named mood.
func (c *Catalog) MoodWeights(name string) ([]GenreWeight, bool) {
	for i := range c.Moods {
		if c.Moods[i].Name == name {
			return c.Moods[i].Weights, true
		}
	}
	return nil, false
}

// HasGenre reports whether genre has a prior weight.
func (c *Catalog) HasGenre(genre string) bool {
	for _, p := range c.Priors {
		if p.Genre == genre {
			return true
		}
	}
	return false
}

// HasMood reports whether the mood is known.
func (c *Catalog) HasMood(name string) bool {
	_, ok := c.MoodWeights(name)
	return ok
}

// GenreNames returns the prior genres in declaration order.
func (c *Catalog) GenreNames() []string {
	names := make([]string, len(c.Priors))
	for i, p := range c.Priors {
		names[i] = p.Genre
	}
	return names
}

// MoodNames returns the mood names in declaration order.
func (c *Catalog) MoodNames() []string {
	names := make([]string, len(c.Moods))
	for i := range c.Moods {
		names[i] = c.Moods[i].Name
	}
	return names
}

// DefaultMood returns the first declared mood, or "" when there are none.
func (c *Catalog) DefaultMood() string {
	if len(c.Moods) == 0 {
		return ""
	}
	return c.Moods[0].Name
}
