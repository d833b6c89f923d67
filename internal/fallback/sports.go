package fallback

import "github.com/Shuvikm/sonyliv-clone/internal/models"

var fallbackSports = []models.Content{
	sport("sport_1", "UEFA Champions League Final", "Real Madrid vs Manchester City - The biggest club football match of the year",
		"photo-1574629810360-7efbbe195018", 9.5, 5000000, true, "Football",
		[]string{"Real Madrid", "Manchester City"}, "Wembley Stadium", "hWGMuSRWsso"),
	sport("sport_2", "Premier League - Arsenal vs Liverpool", "Top of the table clash in the English Premier League",
		"photo-1571019613454-1cb2f99b2d8b", 9.2, 3500000, true, "Football",
		[]string{"Arsenal", "Liverpool"}, "Emirates Stadium", "PhJHMW7LfCE"),
	sport("sport_3", "NBA Finals Game 7", "Lakers vs Celtics - The most historic rivalry in basketball",
		"photo-1546519638-68e109498ffc", 9.8, 4200000, true, "Basketball",
		[]string{"Los Angeles Lakers", "Boston Celtics"}, "Crypto.com Arena", "XpKxHcZMRk4"),
	sport("sport_4", "Wimbledon Men's Final", "Djokovic vs Alcaraz - Battle for the grass court crown",
		"photo-1622279457486-62dcc4a431d6", 9.4, 2800000, false, "Tennis",
		[]string{"Novak Djokovic", "Carlos Alcaraz"}, "Centre Court, Wimbledon", "L8Wl2HhTF-E"),
	sport("sport_5", "ICC Cricket World Cup Final", "India vs Australia - The ultimate cricket showdown",
		"photo-1540747913346-19e32dc3e97e", 9.6, 8000000, true, "Cricket",
		[]string{"India", "Australia"}, "Narendra Modi Stadium", "U8XhZ7ykR-Y"),
	sport("sport_6", "IPL Final - MI vs CSK", "El Clasico of Indian Premier League - Mumbai Indians vs Chennai Super Kings",
		"photo-1531415074968-036ba1b575da", 9.3, 7500000, true, "Cricket",
		[]string{"Mumbai Indians", "Chennai Super Kings"}, "Wankhede Stadium", "y7PQhFqKCQY"),
	sport("sport_7", "F1 Monaco Grand Prix", "The crown jewel of Formula 1 racing through the streets of Monte Carlo",
		"photo-1568605117036-5fe5e7bab0b7", 9.1, 3200000, false, "Racing",
		[]string{"Red Bull Racing", "Ferrari", "Mercedes"}, "Circuit de Monaco", "EGUZJVY-sHo"),
	sport("sport_8", "Super Bowl LVIII", "The biggest game in American football - NFL Championship",
		"photo-1566577739112-5180d4bf9390", 9.7, 12000000, false, "American Football",
		[]string{"Kansas City Chiefs", "San Francisco 49ers"}, "Allegiant Stadium, Las Vegas", "W9NQCrZCqvE"),
	sport("sport_9", "Boxing Heavyweight Championship", "Tyson Fury vs Anthony Joshua - Battle of British Heavyweights",
		"photo-1517438476312-10d79c077509", 9.0, 4500000, false, "Boxing",
		[]string{"Tyson Fury", "Anthony Joshua"}, "Wembley Stadium", "AzJHY10UBWQ"),
}

func sport(id, title, description, unsplashPhoto string, rating float64, views int64,
	live bool, sportType string, teams []string, venue, trailerKey string) *models.Sport {
	return &models.Sport{
		Base: models.Base{
			ID:          id,
			Title:       title,
			Description: description,
			Type:        models.CategorySport,
			Genre:       []string{"Sports", sportType},
			Poster:      unsplashImage(unsplashPhoto, 300, 450),
			Backdrop:    unsplashImage(unsplashPhoto, 1280, 720),
			Rating:      rating,
			Views:       views,
			Language:    "en",
			VideoURL:    models.YouTubeEmbedURL(trailerKey),
		},
		IsLive:    live,
		SportType: sportType,
		Teams:     teams,
		Venue:     venue,
	}
}
