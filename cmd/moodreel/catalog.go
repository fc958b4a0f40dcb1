// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/moodreel/internal/catalog"
)

func newGenresCmd(global *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List selectable genres and their prior weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := offlineCatalog(global, cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, cat.Priors)
			}
			for _, p := range cat.Priors {
				_, _ = fmt.Fprintf(out, "%-12s %.2f\n", p.Genre, p.Weight)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newMoodsCmd(global *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List moods and the genres each one favors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := offlineCatalog(global, cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, cat.Moods)
			}
			name := color.New(color.Bold)
			for _, m := range cat.Moods {
				_, _ = name.Fprintf(out, "%-12s", m.Name)
				_, _ = fmt.Fprintln(out, formatMoodWeights(m.Weights))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newMoviesCmd(global *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List every movie in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := offlineCatalog(global, cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, cat.Movies)
			}
			renderMovies(out, cat.Movies)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func offlineCatalog(opts *globalOptions, cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := offlineConfig(opts, cmd)
	if err != nil {
		return nil, err
	}
	return catalog.LoadOrDefault(cfg.Catalog.Path)
}

func formatMoodWeights(weights []catalog.GenreWeight) string {
	parts := make([]string, 0, len(weights))
	for _, w := range weights {
		parts = append(parts, fmt.Sprintf("%s +%.0f%%", w.Genre, w.Weight*100))
	}
	return strings.Join(parts, ", ")
}

func renderMovies(out io.Writer, movies []catalog.Movie) {
	title := color.New(color.Bold)
	for _, m := range movies {
		_, _ = title.Fprintf(out, "%-28s", m.Title)
		_, _ = fmt.Fprintf(out, " %.1f  %s\n", m.Rating, strings.Join(m.Genres, ", "))
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
