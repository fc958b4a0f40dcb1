// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package catalog

// Default returns the built-in reference catalog: 11 genre priors,
// 5 moods and 13 movies. Each call returns a new value.
func Default() *Catalog {
	return &Catalog{
		Priors: []GenrePrior{
			{Genre: "Action", Weight: 0.15},
			{Genre: "Drama", Weight: 0.15},
			{Genre: "Sci-Fi", Weight: 0.15},
			{Genre: "Adventure", Weight: 0.10},
			{Genre: "Animation", Weight: 0.10},
			{Genre: "Comedy", Weight: 0.10},
			{Genre: "Thriller", Weight: 0.05},
			{Genre: "Fantasy", Weight: 0.05},
			{Genre: "Family", Weight: 0.05},
			{Genre: "Crime", Weight: 0.05},
			{Genre: "Musical", Weight: 0.05},
		},
		Moods: []Mood{
			{Name: "Happy", Weights: []GenreWeight{
				{Genre: "Comedy", Weight: 0.3},
				{Genre: "Animation", Weight: 0.3},
				{Genre: "Adventure", Weight: 0.2},
				{Genre: "Drama", Weight: 0.1},
			}},
			{Name: "Sad", Weights: []GenreWeight{
				{Genre: "Drama", Weight: 0.4},
				{Genre: "Family", Weight: 0.3},
				{Genre: "Animation", Weight: 0.2},
			}},
			{Name: "Excited", Weights: []GenreWeight{
				{Genre: "Action", Weight: 0.4},
				{Genre: "Sci-Fi", Weight: 0.3},
				{Genre: "Adventure", Weight: 0.2},
			}},
			{Name: "Thoughtful", Weights: []GenreWeight{
				{Genre: "Drama", Weight: 0.4},
				{Genre: "Sci-Fi", Weight: 0.3},
				{Genre: "Thriller", Weight: 0.2},
			}},
			{Name: "Relaxed", Weights: []GenreWeight{
				{Genre: "Comedy", Weight: 0.3},
				{Genre: "Fantasy", Weight: 0.3},
				{Genre: "Animation", Weight: 0.2},
			}},
		},
		Movies: []Movie{
			{Title: "Inception", Genres: []string{"Sci-Fi", "Action"}, Rating: 8.8},
			{Title: "The Dark Knight", Genres: []string{"Action", "Drama"}, Rating: 9.0},
			{Title: "Interstellar", Genres: []string{"Sci-Fi", "Adventure"}, Rating: 8.6},
			{Title: "The Shawshank Redemption", Genres: []string{"Drama"}, Rating: 9.3},
			{Title: "Avengers: Endgame", Genres: []string{"Action", "Fantasy"}, Rating: 8.4},
			{Title: "Coco", Genres: []string{"Animation", "Family"}, Rating: 8.4},
			{Title: "Frozen II", Genres: []string{"Animation", "Adventure"}, Rating: 6.8},
			{Title: "Joker", Genres: []string{"Crime", "Drama"}, Rating: 8.5},
			{Title: "Toy Story 4", Genres: []string{"Animation", "Comedy"}, Rating: 7.7},
			{Title: "The Matrix", Genres: []string{"Action", "Sci-Fi"}, Rating: 8.7},
			{Title: "Parasite", Genres: []string{"Drama", "Thriller"}, Rating: 8.6},
			{Title: "Tenet", Genres: []string{"Action", "Sci-Fi"}, Rating: 7.4},
			{Title: "Encanto", Genres: []string{"Animation", "Musical"}, Rating: 7.2},
		},
	}
}
