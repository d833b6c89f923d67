package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/fallback"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

const (
	defaultNewsCategory = "General"
	noDescription       = "No description available"
)

type newsResponse struct {
	Status       string        `json:"status"`
	Code         string        `json:"code"`
	Message      string        `json:"message"`
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}

// NewsArticle is one NewsAPI article
type NewsArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// NewsParser maps a NewsAPI response onto News records
type NewsParser struct {
	Category string
}

func NewNewsParser(category string) Parser[models.Content] {
	return &NewsParser{Category: category}
}

// Parse fails when NewsAPI reports a status other than "ok".
func (p *NewsParser) Parse(body io.Reader) ([]models.Content, error) {
	var resp newsResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("news provider returned status %q: %s", resp.Status, resp.Message)
	}

	category := firstNonEmpty(p.Category, defaultNewsCategory)
	items := make([]models.Content, 0, len(resp.Articles))
	for i, a := range resp.Articles {
		items = append(items, p.mapArticle(i, len(resp.Articles), a, category))
	}
	return items, nil
}

func (p *NewsParser) mapArticle(index, total int, a NewsArticle, category string) *models.News {
	logger := config.GetLogger()

	published, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil && a.PublishedAt != "" {
		logger.Debug().Str("publishedAt", a.PublishedAt).Msg("Unparsable article publish date")
	}
	description := StripHTML(a.Description)
	if description == "" {
		description = noDescription
	}
	image := firstNonEmpty(a.URLToImage, fallback.NewsPlaceholderImage)

	return &models.News{
		Base: models.Base{
			ID:          fmt.Sprintf("news_%d", index),
			Title:       firstNonEmpty(StripHTML(a.Title), "Untitled"),
			Description: description,
			Type:        models.CategoryNews,
			Genre:       []string{category},
			Poster:      image,
			Backdrop:    image,
			// NewsAPI has no rating or popularity; rank by position in the response.
			Rating:      float64(7 + index%3),
			Views:       int64(50000 + (total-index)*10000),
			ReleaseYear: yearOf(published),
			Language:    "en",
		},
		NewsCategory: category,
		Source:       a.Source.Name,
		PublishDate:  published,
		URL:          a.URL,
	}
}

func yearOf(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	return t.Year()
}

// StripHTML returns the text of an HTML fragment with whitespace collapsed.
// Plain text passes through trimmed.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " ")
	}
	r, err := NewUTF8Reader(strings.NewReader(fragment), "text/html; charset=utf-8")
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
