// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package seed

import "github.com/tomtom215/cinecatalog/internal/models"

const tmdb = "https://image.tmdb.org/t/p/w500/"

// Curated returns the hand-picked real movies of the demo catalog.
// Each call returns fresh slices the caller may modify.
func Curated() []models.Movie {
	return []models.Movie{
		// English
		{Title: "The Dark Knight", Genre: []string{"Action", "Crime", "Drama"}, Rating: 9.0, Year: 2008, Language: "English", Country: "USA", Description: "When the menace known as the Joker wreaks havoc on Gotham, Batman must accept one of the greatest tests of his abilities.", Director: "Christopher Nolan", Cast: []string{"Christian Bale", "Heath Ledger", "Aaron Eckhart"}, Runtime: 152, PosterURL: tmdb + "qJ2tW6WMUDux911r6m7haRef0WH.jpg"},
		{Title: "Inception", Genre: []string{"Action", "Sci-Fi", "Thriller"}, Rating: 8.8, Year: 2010, Language: "English", Country: "USA", Description: "A thief who steals corporate secrets through dream-sharing technology is given the task of planting an idea.", Director: "Christopher Nolan", Cast: []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt"}, Runtime: 148, PosterURL: tmdb + "9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg"},
		{Title: "Interstellar", Genre: []string{"Adventure", "Drama", "Sci-Fi"}, Rating: 8.6, Year: 2014, Language: "English", Country: "USA", Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.", Director: "Christopher Nolan", Cast: []string{"Matthew McConaughey", "Anne Hathaway"}, Runtime: 169, PosterURL: tmdb + "gEU2QniE6E77NI6lCU6MxlNBvIx.jpg"},
		{Title: "Avengers: Endgame", Genre: []string{"Action", "Adventure", "Sci-Fi"}, Rating: 8.4, Year: 2019, Language: "English", Country: "USA", Description: "After Thanos' devastating events, the Avengers assemble once more to reverse his actions.", Director: "Anthony Russo", Cast: []string{"Robert Downey Jr.", "Chris Evans"}, Runtime: 181, PosterURL: tmdb + "or06FN3Dka5tukK1e9sl16pB3iy.jpg"},
		{Title: "Oppenheimer", Genre: []string{"Biography", "Drama", "History"}, Rating: 8.3, Year: 2023, Language: "English", Country: "USA", Description: "The story of J. Robert Oppenheimer and his role in developing the atomic bomb.", Director: "Christopher Nolan", Cast: []string{"Cillian Murphy", "Emily Blunt"}, Runtime: 180, PosterURL: tmdb + "8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg"},
		{Title: "Dune", Genre: []string{"Science Fiction", "Adventure", "Drama"}, Rating: 8.0, Year: 2021, Language: "English", Country: "USA", Description: "Paul Atreides joins the Fremen to protect Arrakis and the future of his family.", Director: "Denis Villeneuve", Cast: []string{"Timothée Chalamet", "Rebecca Ferguson"}, Runtime: 155, PosterURL: tmdb + "d5NXSklXo0qyIYkgV94XAgMIckC.jpg"},
		{Title: "Mad Max: Fury Road", Genre: []string{"Action", "Adventure", "Science Fiction"}, Rating: 8.1, Year: 2015, Language: "English", Country: "Australia", Description: "Max teams up with Furiosa to escape a tyrannical warlord in a desert wasteland.", Director: "George Miller", Cast: []string{"Tom Hardy", "Charlize Theron"}, Runtime: 120, PosterURL: tmdb + "8tZYtuWezp8JbcsvHYO0O46tFbo.jpg"},
		{Title: "La La Land", Genre: []string{"Comedy", "Drama", "Romance"}, Rating: 8.0, Year: 2016, Language: "English", Country: "USA", Description: "A jazz musician and an aspiring actress navigate love and ambition in Los Angeles.", Director: "Damien Chazelle", Cast: []string{"Ryan Gosling", "Emma Stone"}, Runtime: 128, PosterURL: tmdb + "uDO8zWDhfWwoFdKS4fzkUJt0Rf0.jpg"},
		{Title: "Black Panther", Genre: []string{"Action", "Adventure", "Science Fiction"}, Rating: 7.8, Year: 2018, Language: "English", Country: "USA", Description: "T'Challa returns to Wakanda to succeed the throne but faces a powerful rival.", Director: "Ryan Coogler", Cast: []string{"Chadwick Boseman", "Lupita Nyong'o"}, Runtime: 134, PosterURL: tmdb + "uxzzxijgPIY7slzFvMotPv8wjKA.jpg"},

		// Indian
		{Title: "3 Idiots", Genre: []string{"Comedy", "Drama"}, Rating: 8.4, Year: 2009, Language: "Hindi", Country: "India", Description: "Two friends embark on a quest to find their long-lost companion and discover that friendship is more important than success.", Director: "Rajkumar Hirani", Cast: []string{"Aamir Khan", "R. Madhavan"}, Runtime: 170, PosterURL: tmdb + "66A9MqXOyVFCssoloscw79z8sEb.jpg"},
		{Title: "Dangal", Genre: []string{"Action", "Biography", "Drama"}, Rating: 8.3, Year: 2016, Language: "Hindi", Country: "India", Description: "Former wrestler Mahavir Singh Phogat trains his daughters to become world-class wrestlers.", Director: "Nitesh Tiwari", Cast: []string{"Aamir Khan", "Fatima Sana Shaikh"}, Runtime: 161, PosterURL: tmdb + "3OepTRlHr2v1y4r6vJ5CdXFJJ1K.jpg"},
		{Title: "Baahubali 2: The Conclusion", Genre: []string{"Action", "Adventure", "Drama"}, Rating: 8.2, Year: 2017, Language: "Telugu", Country: "India", Description: "Amarendra Baahubali learns about his heritage and must reclaim his throne.", Director: "S.S. Rajamouli", Cast: []string{"Prabhas", "Rana Daggubati"}, Runtime: 167, PosterURL: tmdb + "xUJBypJBB9R9esYVlIQnH8hhMvX.jpg"},
		{Title: "RRR", Genre: []string{"Action", "Drama"}, Rating: 7.9, Year: 2022, Language: "Telugu", Country: "India", Description: "A tale of two legendary revolutionaries and their journey away from home.", Director: "S.S. Rajamouli", Cast: []string{"N.T. Rama Rao Jr.", "Ram Charan"}, Runtime: 187, PosterURL: tmdb + "wE0I6efAW4cDDmZQWtwZMOW44EJ.jpg"},
		{Title: "Drishyam", Genre: []string{"Crime", "Drama", "Thriller"}, Rating: 8.2, Year: 2013, Language: "Malayalam", Country: "India", Description: "A man goes to extreme lengths to save his family from the dark side of the law.", Director: "Jeethu Joseph", Cast: []string{"Mohanlal", "Meena"}, Runtime: 160, PosterURL: tmdb + "8uZANYkmpqHd5xMd0fEGEyPLLj8.jpg"},

		// Japanese
		{Title: "Spirited Away", Genre: []string{"Animation", "Adventure", "Family"}, Rating: 8.6, Year: 2001, Language: "Japanese", Country: "Japan", Description: "During her family's move, a sullen girl wanders into a world ruled by gods and witches.", Director: "Hayao Miyazaki", Cast: []string{"Daveigh Chase", "Suzanne Pleshette"}, Runtime: 125, PosterURL: tmdb + "39wmItIWsg5sZMyRUHLkWBcuVCM.jpg"},
		{Title: "Your Name", Genre: []string{"Animation", "Drama", "Fantasy"}, Rating: 8.4, Year: 2016, Language: "Japanese", Country: "Japan", Description: "Two strangers find themselves connected in a bizarre way as they live each other's lives.", Director: "Makoto Shinkai", Cast: []string{"Ryunosuke Kamiki"}, Runtime: 106, PosterURL: tmdb + "q719jXXEzOoYaps6babgKnONONX.jpg"},
		{Title: "Demon Slayer: Mugen Train", Genre: []string{"Animation", "Action", "Fantasy"}, Rating: 8.2, Year: 2020, Language: "Japanese", Country: "Japan", Description: "Tanjiro and his comrades board the Mugen Train to confront a powerful demon.", Director: "Haruo Sotozaki", Cast: []string{"Natsuki Hanae", "Akari Kitō"}, Runtime: 117, PosterURL: tmdb + "h8Rb9gBr48ODIwYUttZNYeMWeUU.jpg"},

		// Korean
		{Title: "Parasite", Genre: []string{"Drama", "Thriller"}, Rating: 8.6, Year: 2019, Language: "Korean", Country: "South Korea", Description: "Greed and class discrimination threaten the symbiotic relationship between wealthy and poor families.", Director: "Bong Joon Ho", Cast: []string{"Song Kang-ho", "Lee Sun-kyun"}, Runtime: 132, PosterURL: tmdb + "7IiTTgloJzvGI1TAYymCfbfl3vT.jpg"},
		{Title: "Oldboy", Genre: []string{"Action", "Drama", "Mystery"}, Rating: 8.4, Year: 2003, Language: "Korean", Country: "South Korea", Description: "After being kidnapped and imprisoned for 15 years, a man is released to find his captor.", Director: "Park Chan-wook", Cast: []string{"Choi Min-sik"}, Runtime: 120, PosterURL: tmdb + "pWDtjs568ZfOTMbURQBYuT4Qbdj.jpg"},

		// French
		{Title: "Amélie", Genre: []string{"Comedy", "Romance"}, Rating: 8.3, Year: 2001, Language: "French", Country: "France", Description: "Amélie is an innocent girl in Paris who decides to help those around her and discovers love.", Director: "Jean-Pierre Jeunet", Cast: []string{"Audrey Tautou"}, Runtime: 122, PosterURL: tmdb + "nSxDa3M9aMvGVLoItzWTepQ5h5d.jpg"},
		{Title: "The Intouchables", Genre: []string{"Biography", "Comedy", "Drama"}, Rating: 8.5, Year: 2011, Language: "French", Country: "France", Description: "A quadriplegic aristocrat hires a young man from the projects as his caregiver.", Director: "Olivier Nakache", Cast: []string{"François Cluzet", "Omar Sy"}, Runtime: 112, PosterURL: tmdb + "4mFsNQwbD0F237Tx7gAPotd0nbJ.jpg"},

		// Spanish
		{Title: "Pan's Labyrinth", Genre: []string{"Drama", "Fantasy", "War"}, Rating: 8.2, Year: 2006, Language: "Spanish", Country: "Spain", Description: "In 1944 Spain, a girl meets a mysterious faun who claims she is a princess.", Director: "Guillermo del Toro", Cast: []string{"Ivana Baquero"}, Runtime: 118, PosterURL: tmdb + "k9D3KbZPJLI4KV5cJ04VcJ65e5n.jpg"},
		{Title: "The Secret in Their Eyes", Genre: []string{"Crime", "Drama", "Mystery"}, Rating: 8.2, Year: 2009, Language: "Spanish", Country: "Argentina", Description: "A retired legal counselor writes a novel about an unresolved homicide case.", Director: "Juan José Campanella", Cast: []string{"Ricardo Darín"}, Runtime: 129, PosterURL: tmdb + "aWrDH2BN3Msp53vXnIJlKNSd0t8.jpg"},
		{Title: "Roma", Genre: []string{"Drama"}, Rating: 7.8, Year: 2018, Language: "Spanish", Country: "Mexico", Description: "A year in the life of a middle-class family's maid in Mexico City during the 1970s.", Director: "Alfonso Cuarón", Cast: []string{"Yalitza Aparicio"}, Runtime: 135, PosterURL: tmdb + "dtIIyQyALk57ko5bjacn0sHossu.jpg"},

		// Other
		{Title: "Crouching Tiger, Hidden Dragon", Genre: []string{"Action", "Adventure", "Drama"}, Rating: 7.9, Year: 2000, Language: "Mandarin", Country: "China", Description: "A young woman steals a legendary sword from a famed swordsman.", Director: "Ang Lee", Cast: []string{"Chow Yun-fat", "Michelle Yeoh"}, Runtime: 120, PosterURL: tmdb + "iNDVBFNz4xjgEuF7WG8ZhiXEWwt.jpg"},
		{Title: "Portrait of a Lady on Fire", Genre: []string{"Drama", "Romance"}, Rating: 8.0, Year: 2019, Language: "French", Country: "France", Description: "On a remote island, a painter is tasked with secretly creating a wedding portrait.", Director: "Céline Sciamma", Cast: []string{"Noémie Merlant", "Adèle Haenel"}, Runtime: 120, PosterURL: tmdb + "4de9illPXP4NRdPsIMZzPGcPv0f.jpg"},
	}
}
