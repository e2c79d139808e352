// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package seed

import (
	"fmt"
	"math"
	"math/rand/v2"
	"net/url"
	"strings"

	"github.com/tomtom215/cinecatalog/internal/models"
)

// Generated movies span these years inclusive.
const (
	generatedFirstYear = 2000
	generatedLastYear  = 2024
)

var (
	genres = []string{
		"Action", "Drama", "Comedy", "Horror", "Sci-Fi", "Romance", "Thriller", "Crime", "Adventure",
		"Animation", "Mystery", "Fantasy", "Biography", "Documentary", "Family", "War", "Western", "Musical",
	}
	languages = []string{
		"English", "Hindi", "Spanish", "French", "Japanese", "Korean", "Mandarin", "German", "Italian", "Portuguese",
		"Russian", "Arabic", "Turkish", "Thai", "Tamil", "Telugu", "Bengali", "Punjabi", "Marathi", "Gujarati",
	}
	countries = []string{
		"USA", "India", "UK", "France", "Japan", "South Korea", "China", "Spain", "Germany", "Italy",
		"Canada", "Australia", "Brazil", "Mexico", "Russia", "Turkey", "Thailand", "Argentina", "Colombia", "Egypt",
	}
	directors = []string{
		"Christopher Nolan", "Steven Spielberg", "Martin Scorsese", "Quentin Tarantino", "James Cameron",
		"Ridley Scott", "Denis Villeneuve", "Bong Joon Ho", "Hayao Miyazaki", "Akira Kurosawa",
		"Rajkumar Hirani", "S.S. Rajamouli", "Mani Ratnam", "Zoya Akhtar", "Anurag Kashyap",
		"Pedro Almodóvar", "Alfonso Cuarón", "Alejandro G. Iñárritu", "Guillermo del Toro",
		"Wong Kar-wai", "Park Chan-wook", "Yeon Sang-ho", "Zhang Yimou",
	}
	titleWords = []string{
		"The Last", "Dark", "Silent", "Hidden", "Lost", "Eternal", "Crimson", "Shadow",
		"Rising", "Fallen", "Broken", "Golden", "Silver", "Iron", "Crystal", "Diamond",
		"Storm", "Fire", "Ice", "Thunder", "Lightning", "Ocean", "Mountain", "Desert",
		"City", "Kingdom", "Empire", "Legacy", "Chronicles", "Saga", "Tale", "Story",
	}
	titleSuffixes = []string{
		"Warrior", "Hunter", "Legend", "Quest", "Journey", "Mission", "Operation", "Project",
		"Dreams", "Secrets", "Mystery", "Prophecy", "Destiny", "Fate", "Hope", "Glory",
		"Revolution", "Rebellion", "War", "Battle", "Fight", "Strike", "Return", "Rise",
	}
	generatedCast = []string{"Lead Actor", "Supporting Actor", "Character Actor"}
)

// Generator produces synthetic movies. The same seed always yields the same
// sequence.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(uint64(seed), 0x6d6f76696573))}
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// Generate returns n synthetic movies.
func (g *Generator) Generate(n int) []models.Movie {
	out := make([]models.Movie, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.next(i))
	}
	return out
}

func (g *Generator) next(i int) models.Movie {
	r := g.rng

	primary := pick(r, genres)
	secondary := pick(r, genres)
	movieGenres := []string{primary}
	if secondary != primary {
		movieGenres = append(movieGenres, secondary)
	}

	year := generatedFirstYear + r.IntN(generatedLastYear-generatedFirstYear+1)
	rating := math.Round((r.Float64()*2+6)*10) / 10
	language := pick(r, languages)
	country := pick(r, countries)
	director := pick(r, directors)
	runtime := 85 + r.IntN(95)

	word, suffix := pick(r, titleWords), pick(r, titleSuffixes)
	title := word + " " + suffix
	if r.IntN(2) == 0 {
		title = "The " + word + " of " + suffix
	}

	g1 := strings.ToLower(primary)
	descriptions := []string{
		fmt.Sprintf("An epic %s tale set in %s that explores themes of courage, love, and redemption.", g1, country),
		fmt.Sprintf("A gripping %s narrative that captivates audiences with stellar performances and breathtaking cinematography.", g1),
		fmt.Sprintf("%s's cinematic masterpiece that revolutionized %s cinema with its bold storytelling.", country, language),
		fmt.Sprintf("A %s journey through time and space that challenges perceptions and touches the heart.", g1),
		fmt.Sprintf("An intense %s experience showcasing the best of %s filmmaking tradition.", g1, language),
	}

	imageSeed := url.QueryEscape(fmt.Sprintf("%s-%d-%d", title, year, i))

	return models.Movie{
		Title:       fmt.Sprintf("%s (%d)", title, year),
		Genre:       movieGenres,
		Rating:      rating,
		Year:        year,
		Language:    language,
		Country:     country,
		Description: pick(r, descriptions),
		Director:    director,
		Cast:        append([]string(nil), generatedCast...),
		Runtime:     runtime,
		PosterURL:   "https://source.unsplash.com/featured/300x450/?movie,cinema&sig=" + imageSeed,
	}
}
