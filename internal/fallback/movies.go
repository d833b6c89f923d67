package fallback

import "github.com/Shuvikm/sonyliv-clone/internal/models"

var fallbackMovies = []models.Content{
	movie("mov_1", "Avengers: Endgame",
		"After the devastating events of Infinity War, the Avengers assemble once more to reverse Thanos' actions and restore balance.",
		[]string{"Action", "Adventure", "Sci-Fi"}, "/or06FN3Dka5tukK1e9sl16pB3iy.jpg", "/7RyHsO4yDXtBv1zUU3mTpHeQ0d5.jpg",
		8.4, 15000000, 2019, "en", "TcMBFSGVi1c"),
	movie("mov_2", "The Dark Knight",
		"When the Joker wreaks havoc on Gotham, Batman must accept one of the greatest tests of his ability to fight injustice.",
		[]string{"Action", "Crime", "Drama"}, "/qJ2tW6WMUDux911r6m7haRef0WH.jpg", "/nMKdUUepR0i5zn0y1T4CsSB5chy.jpg",
		9.0, 12000000, 2008, "en", "EXeTwQWrcwY"),
	movie("mov_3", "Inception",
		"A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
		[]string{"Action", "Sci-Fi", "Thriller"}, "/edv5CZvWj09upOsy2Y6IwDhK8bt.jpg", "/s3TBrRGB1iav7gFOCNx3H31MoES.jpg",
		8.8, 9800000, 2010, "en", "YoHD9XEInc0"),
	movie("mov_4", "Interstellar",
		"A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		[]string{"Adventure", "Drama", "Sci-Fi"}, "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg", "/xJHokMbljvjADYdit5fK5VQsXEG.jpg",
		8.6, 8500000, 2014, "en", "zSWdZVtXT7E"),
	movie("mov_5", "Spider-Man: No Way Home",
		"Peter Parker seeks help from Doctor Strange, accidentally opening the multiverse with villains from alternate realities.",
		[]string{"Action", "Adventure", "Fantasy"}, "/1g0dhYtq4irTY1GPXvft6k4YLjm.jpg", "/14QbnygCuTO0vl7CAFmPf1fgZfV.jpg",
		8.2, 11000000, 2021, "en", "JfVOs4VSpmA"),
	movie("mov_6", "Oppenheimer",
		"The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
		[]string{"Biography", "Drama", "History"}, "/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg", "/rLb2cwF3Pazuxaj0sRXQ037tGI1.jpg",
		8.5, 7500000, 2023, "en", "uYPbbksJxIg"),
	movie("mov_7", "Jawan",
		"A prison warden embarks on a mission to rectify social injustices, seeking revenge against a ruthless businessman.",
		[]string{"Action", "Thriller", "Drama"}, "/jitH0qopYIZC0RjvH9MgGkixAn6.jpg", "/1H5SA0SxjYQMwVzBetmvmfVy8DF.jpg",
		7.9, 18000000, 2023, "hi", "MWOlnLMPrG4"),
	movie("mov_8", "Pathaan",
		"An Indian spy takes on the nefarious villains who are planning to attack India with a deadly virus.",
		[]string{"Action", "Thriller"}, "/lptctJJqrlkMhKnrSVBQyCdgpTj.jpg", "/y3AeW220VY9Dq1rmT5RzjhOTL5Q.jpg",
		7.1, 20000000, 2023, "hi", "vqu4z34wENw"),
	movie("mov_9", "RRR",
		"A tale of two legendary revolutionaries and their journey away from home before they began fighting for their country.",
		[]string{"Action", "Drama", "History"}, "/nEufeZlyAOLqO2brrs0yeF1lgXO.jpg", "/x35fZEXbWarXqVGXcsxD8zy3rSI.jpg",
		8.0, 25000000, 2022, "te", "GY4BgdUSpME"),
	movie("mov_10", "KGF Chapter 2",
		"Rocky takes control of the Kolar Gold Fields and becomes a feared overlord, but his enemies from the past seek revenge.",
		[]string{"Action", "Drama", "Thriller"}, "/7zQJYV02yehWrQN6NjKsBorqUBR.jpg", "/lL6N6qsxhiKqZ2DjUPT8kKsLdVw.jpg",
		8.4, 22000000, 2022, "kn", "JKa9O1wSgl8"),
	movie("mov_11", "3 Idiots",
		"Two friends search for their long-lost companion who inspired them to think differently about life and education.",
		[]string{"Comedy", "Drama"}, "/66A9MqXOyVFCssoloscw79z8Tew.jpg", "/bLJTjfbZ1XpogfPer0gq6SkZXYR.jpg",
		8.4, 15000000, 2009, "hi", "K0eDlFX9GMc"),
	movie("mov_12", "Dangal",
		"Former wrestler Mahavir Singh Phogat trains his daughters Geeta and Babita to become world-class wrestlers.",
		[]string{"Action", "Biography", "Drama"}, "/fM4WVl4XYYosnUPfvAGMPfuqAjU.jpg", "/lN22BgwzPWfZ4XJBW9LLCTI4KTV.jpg",
		8.4, 19000000, 2016, "hi", "x_7YlGv9u1g"),
	movie("mov_13", "Vikram",
		"A special agent investigates a case of serial killings connected to a drug syndicate.",
		[]string{"Action", "Crime", "Thriller"}, "/n1kGGopXvSeyRfXGnwtQ8V1c5Gl.jpg", "/lnWkyG3LLgbbrIEeHrBpuEMevnH.jpg",
		8.3, 14000000, 2022, "ta", "OKBMCL-frPU"),
	movie("mov_14", "Dune: Part Two",
		"Paul Atreides unites with the Fremen to seek revenge against those who destroyed his family.",
		[]string{"Sci-Fi", "Adventure", "Drama"}, "/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg", "/xOMo8BRK7PfcJv9JCnx7s5hj0PX.jpg",
		8.5, 9000000, 2024, "en", "Way9Dexny3w"),
	movie("tt4154796", "Avengers: Infinity War",
		"The Avengers must stop Thanos from collecting all six Infinity Stones.",
		[]string{"Action", "Adventure", "Sci-Fi"}, "/7WsyChQLEftFiDOVTGkv3hFpyyt.jpg", "/bOGkgRGdhrBYJSLpXaxhXVstddV.jpg",
		8.4, 14000000, 2018, "en", "6ZfuNTqbHE8"),
	movie("tt0133093", "The Matrix",
		"A hacker discovers the true nature of reality and his role in the war against its controllers.",
		[]string{"Action", "Sci-Fi"}, "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg", "/l4QHerTSbMI7qgvasqxP36pqjN6.jpg",
		8.7, 9500000, 1999, "en", "vKQi3bBA1y8"),
}

func movie(id, title, description string, genre []string, posterPath, backdropPath string,
	rating float64, views int64, year int, language, trailerKey string) *models.Movie {
	return &models.Movie{
		Base: models.Base{
			ID:          id,
			Title:       title,
			Description: description,
			Type:        models.CategoryMovie,
			Genre:       genre,
			Poster:      tmdbImage("w500", posterPath),
			Backdrop:    tmdbImage("w1280", backdropPath),
			Rating:      rating,
			Views:       views,
			ReleaseYear: year,
			Language:    language,
			VideoURL:    models.YouTubeEmbedURL(trailerKey),
		},
	}
}
