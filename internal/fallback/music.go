package fallback

import "github.com/Shuvikm/sonyliv-clone/internal/models"

var fallbackMusic = []models.Content{
	music("mus_1", "Kesariya - Brahmastra", "A soulful love song from the movie Brahmastra, sung by Arijit Singh.",
		[]string{"Bollywood", "Romantic", "Pop"}, 9.2, 850000000, 2022, "hi", "Arijit Singh", "4:27", "BddP6PYo2gs"),
	music("mus_2", "Tum Hi Ho - Aashiqui 2", "One of the most loved romantic songs from Aashiqui 2, sung by Arijit Singh.",
		[]string{"Bollywood", "Romantic"}, 9.5, 1200000000, 2013, "hi", "Arijit Singh", "4:22", "IJq0yyWug1k"),
	music("mus_3", "Naatu Naatu - RRR", "Oscar-winning energetic dance song from RRR movie.",
		[]string{"Tollywood", "Dance", "Folk"}, 9.8, 500000000, 2022, "te", "Rahul Sipligunj, Kaala Bhairava", "3:36", "OsU0CGZoV8E"),
	music("mus_4", "Oo Antava - Pushpa", "The chartbusting dance number from Pushpa: The Rise.",
		[]string{"Tollywood", "Item Song", "Dance"}, 8.8, 600000000, 2021, "te", "Indravathi Chauhan", "3:54", "xXpFU9T1E3Q"),
	music("mus_5", "Jhoome Jo Pathaan", "High energy party anthem from Pathaan.",
		[]string{"Bollywood", "Dance", "Party"}, 8.5, 300000000, 2023, "hi", "Arijit Singh, Sukriti Kakar", "3:18", "Bt2mWUcN7v4"),
	music("mus_6", "Blinding Lights - The Weeknd", "Synth-pop hit that topped charts worldwide.",
		[]string{"Pop", "Synth-pop", "Electronic"}, 9.3, 3800000000, 2020, "en", "The Weeknd", "3:22", "4NRXx6U8ABQ"),
	music("mus_7", "Shape of You - Ed Sheeran", "Dancehall-tinged pop single from the album Divide.",
		[]string{"Pop", "Dancehall"}, 9.0, 6200000000, 2017, "en", "Ed Sheeran", "4:23", "JGwWNGJdvx8"),
	music("mus_8", "Uptown Funk - Bruno Mars", "Funk and soul throwback produced by Mark Ronson.",
		[]string{"Funk", "Pop", "Soul"}, 9.1, 4700000000, 2014, "en", "Mark Ronson ft. Bruno Mars", "4:30", "OPf0YbXqDm0"),
	music("mus_9", "Calm Down - Rema & Selena Gomez", "Viral Afrobeats remix featuring Selena Gomez.",
		[]string{"Afrobeats", "Pop", "Dance"}, 8.7, 1000000000, 2022, "en", "Rema & Selena Gomez", "3:59", "WcIcVapfqXw"),
}

func music(id, title, description string, genre []string, rating float64, views int64,
	year int, language, artist, duration, videoKey string) *models.Music {
	thumb := "https://i.ytimg.com/vi/" + videoKey + "/maxresdefault.jpg"
	return &models.Music{
		Base: models.Base{
			ID:          id,
			Title:       title,
			Description: description,
			Type:        models.CategoryMusic,
			Genre:       genre,
			Poster:      thumb,
			Backdrop:    thumb,
			Rating:      rating,
			Views:       views,
			ReleaseYear: year,
			Language:    language,
			VideoURL:    models.YouTubeEmbedURL(videoKey),
		},
		Artist:   artist,
		Duration: duration,
	}
}
