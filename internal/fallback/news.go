package fallback

import (
	"time"

	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

// NewsPlaceholderImage is used for articles without an image.
const NewsPlaceholderImage = "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=300&h=450&fit=crop"

// Publish dates are fixed so the catalog stays deterministic.
var fallbackNews = []models.Content{
	newsItem("news_fb_1", "Breaking News: Major Tech Breakthrough", "Scientists discover revolutionary quantum computing method",
		"Technology", "Sony News", NewsPlaceholderImage, 8.5, 450000, time.Date(2024, 11, 2, 9, 0, 0, 0, time.UTC)),
	newsItem("news_fb_2", "India wins cricket series", "A dominant bowling display seals the series for India on the final day.",
		"Sports", "Sony Sports Desk", "https://images.unsplash.com/photo-1517649763962-0c623066013b?w=300&h=450&fit=crop", 8.1, 380000,
		time.Date(2024, 10, 28, 18, 30, 0, 0, time.UTC)),
	newsItem("news_fb_3", "Bollywood box office round-up", "Festive releases push weekend collections past previous records.",
		"Entertainment", "Sony Entertainment", "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=300&h=450&fit=crop", 7.8, 320000,
		time.Date(2024, 10, 27, 12, 0, 0, 0, time.UTC)),
	newsItem("news_fb_4", "Markets close higher on tech rally", "Technology shares lift benchmark indices for a third straight session.",
		"Business", "Sony Business", "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=300&h=450&fit=crop", 7.5, 210000,
		time.Date(2024, 10, 25, 16, 0, 0, 0, time.UTC)),
}

func newsItem(id, title, description, category, source, poster string, rating float64, views int64, published time.Time) *models.News {
	return &models.News{
		Base: models.Base{
			ID:          id,
			Title:       title,
			Description: description,
			Type:        models.CategoryNews,
			Genre:       []string{category},
			Poster:      poster,
			Backdrop:    poster,
			Rating:      rating,
			Views:       views,
			ReleaseYear: published.Year(),
			Language:    "en",
		},
		NewsCategory: category,
		Source:       source,
		PublishDate:  published,
	}
}
