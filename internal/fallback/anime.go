package fallback

import "github.com/Shuvikm/sonyliv-clone/internal/models"

var fallbackAnime = []models.Content{
	anime("ani_1", "Demon Slayer: Kimetsu no Yaiba",
		"A boy raised by boars joins the Demon Slayer Corps to turn his sister back into a human after she becomes a demon.",
		[]string{"Action", "Adventure", "Fantasy"}, "/xUfRZu2mi8jH6SzQEJGP6tjBuYj.jpg", "/nGlktdEmzzwPtcWsYJMGvY5IqXP.jpg",
		8.7, 45000000, 2019, 4, 55, "VQGCKyvzIM4"),
	anime("ani_2", "Attack on Titan",
		"Humanity lives in cities surrounded by walls due to the Titans, gigantic humanoid beings who devour humans.",
		[]string{"Action", "Drama", "Fantasy"}, "/hTP1DtLGFamjfi8rhPH8bQq5sLX.jpg", "/rqbCbjB19amtOtFQbb3K2lgm2zv.jpg",
		9.0, 55000000, 2013, 4, 87, "MGRm4IzK1SQ"),
	anime("ani_3", "One Piece",
		"Monkey D. Luffy and his pirate crew explore the Grand Line in search of the world's ultimate treasure.",
		[]string{"Action", "Adventure", "Comedy"}, "/fcXdJlbSdUEeMSJFsXKsznGwwok.jpg", "/2rmK7mnchw9Xr3XdiTFSxTTLXqv.jpg",
		8.9, 70000000, 1999, 21, 1100, "MCb13lbVGE0"),
	anime("ani_4", "Jujutsu Kaisen",
		"A high school student swallows a cursed finger and joins a secret organization of sorcerers to fight curses.",
		[]string{"Action", "Fantasy", "Horror"}, "/fNg1j3I8aLCZlnSNYW2jJIXBxan.jpg", "/doAzov2bZNUlkZWycKCqHqdPG3P.jpg",
		8.6, 40000000, 2020, 2, 47, "4A_X-Dvl0ws"),
	anime("ani_5", "My Hero Academia",
		"In a world where most people have superpowers, a powerless boy enrolls in a prestigious hero academy.",
		[]string{"Action", "Adventure", "Comedy"}, "/ivOLM47yJt90P19RH1Fw79AkfMI.jpg", "/9RqliZcoDEjSEISeA0LY7kQiZzG.jpg",
		8.4, 38000000, 2016, 7, 138, "D5fYOnwYkj4"),
	anime("ani_6", "Naruto Shippuden",
		"Naruto returns after two and a half years of training to protect his village from the Akatsuki.",
		[]string{"Action", "Adventure", "Fantasy"}, "/zAYRe2bJxpWTVrwxmgCvG2Fmz8R.jpg", "/t0xbbuNJqGwRhTIZC6IQLRsGC0U.jpg",
		8.6, 60000000, 2007, 21, 500, "1dy2zPPrKj0"),
	anime("ani_7", "Death Note",
		"A student discovers a notebook that kills anyone whose name is written in it and sets out to cleanse the world.",
		[]string{"Mystery", "Psychological", "Thriller"}, "/iigTJJdTkmpjWZAYpuURcKBqsWo.jpg", "/A2ua1znEeY2X7LQ5KLZM2ggw5GV.jpg",
		9.0, 50000000, 2006, 1, 37, "NlJZ-YgAt-c"),
	anime("ani_8", "Fullmetal Alchemist: Brotherhood",
		"Two brothers search for the Philosopher's Stone after a failed alchemical ritual costs them dearly.",
		[]string{"Action", "Adventure", "Drama"}, "/1E2p8fcgcjy6CCZXAOO5g8fGBDH.jpg", "/a6ptrTUH1c5OdWanjyYtAkLHkcA.jpg",
		9.1, 42000000, 2009, 1, 64, "ANn9NpaAo_U"),
}

func anime(id, title, description string, genre []string, posterPath, backdropPath string,
	rating float64, views int64, year, seasons, episodes int, trailerKey string) *models.Anime {
	return &models.Anime{
		Base: models.Base{
			ID:          id,
			Title:       title,
			Description: description,
			Type:        models.CategoryAnime,
			Genre:       genre,
			Poster:      tmdbImage("w500", posterPath),
			Backdrop:    tmdbImage("w1280", backdropPath),
			Rating:      rating,
			Views:       views,
			ReleaseYear: year,
			Language:    "ja",
			VideoURL:    models.YouTubeEmbedURL(trailerKey),
		},
		Format:   "tv",
		Seasons:  seasons,
		Episodes: episodes,
	}
}
