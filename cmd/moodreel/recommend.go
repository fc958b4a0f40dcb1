// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/moodreel/internal/recommend"
)

// ruleWidth is the width of the separator under the results header.
const ruleWidth = 65

type recommendOptions struct {
	genres  []string
	mood    string
	k       int
	asJSON  bool
	explain bool
}

func newRecommendCmd(global *globalOptions) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank movies for the selected genres and mood",
		Long: `Rank the catalog for one or more genres and a mood.

Each selected genre's prior is boosted, the mood scales its associated
genres, and movies are ordered by their summed genre weight, then rating.
The mood defaults to the first mood in the catalog.`,
		Example: `  moodreel recommend -g Action -g Sci-Fi -m Excited
  moodreel recommend --genre Comedy,Animation --mood Happy --k 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, global, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.genres, "genre", "g", nil, "genre to select (repeatable or comma-separated)")
	flags.StringVarP(&opts.mood, "mood", "m", "", "current mood (default: first catalog mood)")
	flags.IntVar(&opts.k, "k", 0, "number of movies to return (default: recommend.default_k)")
	flags.BoolVar(&opts.asJSON, "json", false, "print the full response as JSON")
	flags.BoolVar(&opts.explain, "explain", false, "also print the normalized genre weights")

	return cmd
}

func runRecommend(cmd *cobra.Command, global *globalOptions, opts *recommendOptions) error {
	engine, err := offlineEngine(global, cmd)
	if err != nil {
		return err
	}

	mood := strings.TrimSpace(opts.mood)
	if mood == "" {
		mood = engine.Catalog().DefaultMood()
	}

	resp, err := engine.Recommend(cmd.Context(), recommend.Request{
		Genres: trimAll(opts.genres),
		Mood:   mood,
		K:      opts.k,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	renderRecommendations(out, resp)
	if opts.explain {
		renderWeights(out, engine.Catalog().GenreNames(), resp.Weights)
	}
	return nil
}

func renderRecommendations(out io.Writer, resp *recommend.Response) {
	header := color.New(color.FgCyan, color.Bold)
	title := color.New(color.Bold)
	score := color.New(color.FgGreen)

	_, _ = header.Fprintf(out, "Top Movie Recommendations for mood '%s'\n", resp.Metadata.Mood)
	_, _ = fmt.Fprintln(out, strings.Repeat("-", ruleWidth))
	for _, m := range resp.Items {
		_, _ = fmt.Fprint(out, "🎬 ")
		_, _ = title.Fprint(out, m.Title)
		_, _ = fmt.Fprintf(out, "  |  Genres: %s  |  Rating: %s  |  Score: ", strings.Join(m.Genres, ", "), formatRating(m.Rating))
		_, _ = score.Fprintf(out, "%.3f\n", m.Score)
	}

	if len(resp.Metadata.IgnoredGenres) > 0 {
		_, _ = color.New(color.FgYellow).Fprintf(out, "note: no prior weight for %s\n", strings.Join(resp.Metadata.IgnoredGenres, ", "))
	}
	if resp.Metadata.Mood != "" && !resp.Metadata.MoodApplied {
		_, _ = color.New(color.FgYellow).Fprintf(out, "note: unknown mood %q, no mood adjustment applied\n", resp.Metadata.Mood)
	}
}

// formatRating prints a rating at full precision with at least one decimal.
func formatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// renderWeights prints weights in catalog genre order.
func renderWeights(out io.Writer, genres []string, weights map[string]float64) {
	_, _ = fmt.Fprintln(out)
	_, _ = color.New(color.Bold).Fprintln(out, "Genre weights")
	for _, g := range genres {
		_, _ = fmt.Fprintf(out, "  %-12s %.4f\n", g, weights[g])
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
