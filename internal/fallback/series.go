package fallback

import "github.com/Shuvikm/sonyliv-clone/internal/models"

var fallbackSeries = []models.Content{
	series("ser_1", "Scam 1992: The Harshad Mehta Story",
		"The rise and fall of Harshad Mehta, a stockbroker who single-handedly took the stock market to dizzying heights.",
		[]string{"Biography", "Crime", "Drama"}, tmdbImage("w500", "/sJ6K4mLqVQMIpN71N9iJQnF28Ck.jpg"), tmdbImage("w1280", "/lDYTKE7tMJ0YoR92lFpTuPZc73K.jpg"),
		9.3, 25000000, 2020, "hi", 1, 10, "sOv5yFhQsJA"),
	series("ser_2", "The Family Man",
		"A middle-class man who works for a special cell of the National Investigation Agency, while trying to balance family life.",
		[]string{"Action", "Comedy", "Drama"}, tmdbImage("w500", "/eBJEvkxlRFtAkunISm4CPSNzLOz.jpg"), tmdbImage("w1280", "/1F4EG97yw9FnXSjjQr9rQFvmZz9.jpg"),
		8.7, 30000000, 2019, "hi", 2, 19, "Ji8vLuAHbmo"),
	series("ser_3", "Sacred Games",
		"A link in their pasts leads a cop to a criminal, whose cryptic warning of something sinister starts a chain of events.",
		[]string{"Action", "Crime", "Drama"}, tmdbImage("w500", "/pkkNpKPshpjgEXy1IeZwMQBo8Nh.jpg"), tmdbImage("w1280", "/akVv4dftMZFIhmQV6o6X3X0ddD.jpg"),
		8.6, 22000000, 2018, "hi", 2, 16, "bQxUaMkHqhY"),
	series("ser_4", "Mirzapur",
		"A shocking incident at a wedding procession ignites a series of events entangling the lives of two families in the lawless city of Mirzapur.",
		[]string{"Action", "Crime", "Drama"}, tmdbImage("w500", "/wdF5geiJBZblXHZTfhVLWdhX37v.jpg"), tmdbImage("w1280", "/aH0LqThXAOMjnT3KyUvzLzh7txN.jpg"),
		8.5, 28000000, 2018, "hi", 3, 28, "pVLtYHNdqaE"),
	series("ser_5", "Panchayat",
		"An engineering graduate takes up the job of a panchayat secretary in a remote village for lack of better options.",
		[]string{"Comedy", "Drama"}, tmdbImage("w500", "/zspxqgGlHbmN5YLMPfxXWKqq45d.jpg"), tmdbImage("w1280", "/ynQEVKBHNJorxLU3lXQaF1Xvxpe.jpg"),
		8.9, 20000000, 2020, "hi", 3, 24, "NfuiB52K0PQ"),
	series("ser_6", "Aspirants",
		"Three friends preparing for the civil services exam navigate friendship, ambition and setbacks in Delhi.",
		[]string{"Drama"}, "https://images.unsplash.com/photo-1516979187457-637abb4f9353?w=300&h=450&fit=crop",
		"https://images.unsplash.com/photo-1516979187457-637abb4f9353?w=1280&h=720&fit=crop",
		9.1, 18000000, 2021, "hi", 2, 10, "9MAswBOlJuk"),
	series("ser_7", "Breaking Bad",
		"A chemistry teacher diagnosed with cancer turns to manufacturing methamphetamine to secure his family's future.",
		[]string{"Crime", "Drama", "Thriller"}, tmdbImage("w500", "/ggFHVNu6YYI5L9pCfOacjizRGt.jpg"), tmdbImage("w1280", "/tsRy63Mu5cu8etL1X7ZLyf7AQDQ.jpg"),
		9.5, 35000000, 2008, "en", 5, 62, "HhesaQXLuRY"),
	series("ser_8", "Game of Thrones",
		"Nine noble families fight for control over the lands of Westeros, while an ancient enemy returns after being dormant for millennia.",
		[]string{"Action", "Adventure", "Drama"}, tmdbImage("w500", "/u3bZgnGQ9T01sWNhyveQz0wH0Hl.jpg"), tmdbImage("w1280", "/suopoADq0k8YZr4dQXcU6pToj6s.jpg"),
		9.2, 40000000, 2011, "en", 8, 73, "KPLWWIOCOOQ"),
}

func series(id, title, description string, genre []string, poster, backdrop string,
	rating float64, views int64, year int, language string, seasons, episodes int, trailerKey string) *models.Series {
	return &models.Series{
		Base: models.Base{
			ID:          id,
			Title:       title,
			Description: description,
			Type:        models.CategorySeries,
			Genre:       genre,
			Poster:      poster,
			Backdrop:    backdrop,
			Rating:      rating,
			Views:       views,
			ReleaseYear: year,
			Language:    language,
			VideoURL:    models.YouTubeEmbedURL(trailerKey),
		},
		Seasons:  seasons,
		Episodes: episodes,
	}
}
