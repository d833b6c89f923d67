// Package fallback holds the static sample catalog served whenever a provider
// call fails or no API key is configured. Every accessor returns deep copies.
package fallback

import (
	"fmt"
	"strings"

	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

// PlaceholderImage is the poster used when a provider record carries no image.
const PlaceholderImage = "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=300&h=450&fit=crop"

const tmdbImageBase = "https://image.tmdb.org/t/p/"

// localIDPrefixes mark ids that only exist in this catalog.
var localIDPrefixes = []string{"mov_", "ser_", "ani_", "tt", "sport_", "mus_", "news_"}

var trailers = map[models.Category]string{
	models.CategoryMovie:  models.YouTubeEmbedURL("TcMBFSGVi1c"),
	models.CategorySeries: models.YouTubeEmbedURL("HhesaQXLuRY"),
	models.CategoryAnime:  models.YouTubeEmbedURL("hDZ7y8RP5HE"),
	models.CategorySport:  models.YouTubeEmbedURL("PhJHMW7LfCE"),
}

// mixedSearch is the small cross-category list shown when a blended search fails entirely.
var mixedSearch = []models.Content{
	&models.Movie{Base: models.Base{
		ID: "mov_mix_1", Title: "Avengers: Endgame", Description: "The epic conclusion to the Infinity Saga",
		Type: models.CategoryMovie, Genre: []string{"Action", "Adventure"},
		Poster: "https://via.placeholder.com/300x450/ff6b6b/ffffff?text=Avengers", Backdrop: PlaceholderImage,
		Rating: 8.4, Views: 1500000, ReleaseYear: 2019, Language: "en",
	}},
	&models.Sport{Base: models.Base{
		ID: "sport_mix_2", Title: "Premier League Live", Description: "Manchester United vs Liverpool",
		Type: models.CategorySport, Genre: []string{"Football"},
		Poster: "https://via.placeholder.com/300x450/4CAF50/ffffff?text=Football", Backdrop: PlaceholderImage,
		Rating: 9.2, Views: 850000, Language: "en",
	}, IsLive: true, SportType: "Football", Teams: []string{"Manchester United", "Liverpool"}},
	&models.News{Base: models.Base{
		ID: "news_mix_3", Title: "Breaking News", Description: "Latest world news and updates",
		Type: models.CategoryNews, Genre: []string{"News"},
		Poster: "https://via.placeholder.com/300x450/2196F3/ffffff?text=News", Backdrop: PlaceholderImage,
		Rating: 7.8, Views: 320000, Language: "en",
	}, NewsCategory: "Breaking"},
}

func listFor(kind models.Category) []models.Content {
	switch kind {
	case models.CategoryMovie:
		return fallbackMovies
	case models.CategorySeries:
		return fallbackSeries
	case models.CategoryAnime:
		return fallbackAnime
	case models.CategorySport:
		return fallbackSports
	case models.CategoryNews:
		return fallbackNews
	case models.CategoryMusic:
		return fallbackMusic
	default:
		return nil
	}
}

// ForCategory returns the fallback list for a category. Unknown categories return nil.
func ForCategory(kind models.Category) []models.Content {
	return models.CloneAll(listFor(kind))
}

func Movies() []models.Content { return ForCategory(models.CategoryMovie) }
func Series() []models.Content { return ForCategory(models.CategorySeries) }
func Anime() []models.Content  { return ForCategory(models.CategoryAnime) }
func Sports() []models.Content { return ForCategory(models.CategorySport) }
func News() []models.Content   { return ForCategory(models.CategoryNews) }
func Music() []models.Content  { return ForCategory(models.CategoryMusic) }

// MixedSearch returns the cross-category list used when a blended search fails.
func MixedSearch() []models.Content {
	return models.CloneAll(mixedSearch)
}

// Search filters a category's fallback list by a case-insensitive substring.
// A blank term returns the whole list.
func Search(kind models.Category, term string) []models.Content {
	return Filter(listFor(kind), term)
}

// Filter returns copies of the items whose searchable text contains term.
func Filter(items []models.Content, term string) []models.Content {
	term = models.FoldTerm(term)
	if term == "" {
		return models.CloneAll(items)
	}
	out := make([]models.Content, 0, len(items))
	for _, c := range items {
		if c.Matches(term) {
			out = append(out, c.Clone())
		}
	}
	return out
}

// IsLocalID reports whether id belongs to this catalog rather than a provider.
func IsLocalID(id string) bool {
	for _, p := range localIDPrefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

// Lookup finds a record by id across movies, series and anime first, then
// the remaining categories.
func Lookup(id string) (models.Content, bool) {
	for _, kind := range models.AllCategories {
		for _, c := range listFor(kind) {
			if c.Common().ID == id {
				return c.Clone(), true
			}
		}
	}
	for _, c := range mixedSearch {
		if c.Common().ID == id {
			return c.Clone(), true
		}
	}
	return nil, false
}

// Trailer returns the default trailer URL for a category, the movie trailer
// for categories without one.
func Trailer(kind models.Category) string {
	if t, ok := trailers[kind]; ok {
		return t
	}
	return trailers[models.CategoryMovie]
}

// WithDerivedTrailer sets Videos to a single trailer built from VideoURL.
// Records without a VideoURL get an empty list.
func WithDerivedTrailer(c models.Content) models.Content {
	base := c.Common()
	if base.VideoURL == "" {
		base.Videos = []models.Video{}
		return c
	}
	key := base.VideoURL[strings.LastIndex(base.VideoURL, "/")+1:]
	base.Videos = []models.Video{{
		ID:        "1",
		Key:       key,
		Name:      "Official Trailer",
		Type:      "Trailer",
		URL:       base.VideoURL,
		Thumbnail: models.YouTubeThumbnailURL(key),
	}}
	return c
}

// Validate checks the catalog invariants for every category.
func Validate() error {
	for _, kind := range models.AllCategories {
		items := listFor(kind)
		if len(items) == 0 {
			return fmt.Errorf("fallback %s list is empty", kind)
		}
		for i, c := range items {
			b := c.Common()
			if b.ID == "" || b.Title == "" || b.Poster == "" || b.Type != kind {
				return fmt.Errorf("fallback %s item %d is incomplete: %+v", kind, i, b)
			}
		}
	}
	return nil
}

func tmdbImage(size, path string) string {
	return tmdbImageBase + size + path
}

func unsplashImage(photo string, w, h int) string {
	return fmt.Sprintf("https://images.unsplash.com/%s?w=%d&h=%d&fit=crop", photo, w, h)
}
