package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/Shuvikm/sonyliv-clone/internal/fallback"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/testutil"
)

func TestNewsParser(t *testing.T) {
	t.Parallel()
	body := testutil.GenerateNewsJSON([]testutil.ArticleOptions{
		{Source: "The Verge", Title: "Chips get faster", Description: "<p>New <b>silicon</b>&nbsp;ships.</p>",
			URL: "https://example.com/a", Image: "https://example.com/a.jpg", PublishedAt: "2024-05-01T10:00:00Z"},
		{Source: "Wired", Title: "No summary", URL: "https://example.com/b", PublishedAt: "garbage"},
	})

	got, err := NewNewsParser("Technology").Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(got))
	}

	first, ok := got[0].(*models.News)
	if !ok {
		t.Fatalf("expected *models.News, got %T", got[0])
	}
	if first.ID != "news_0" || first.Source != "The Verge" || first.NewsCategory != "Technology" {
		t.Errorf("unexpected article: %+v", first)
	}
	if first.Description != "New silicon ships." {
		t.Errorf("expected stripped description, got %q", first.Description)
	}
	if !first.PublishDate.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)) || first.ReleaseYear != 2024 {
		t.Errorf("publish date = %v, year = %d", first.PublishDate, first.ReleaseYear)
	}
	if first.Rating < 7 || first.Rating > 9 {
		t.Errorf("rating %v out of range", first.Rating)
	}

	second := got[1].(*models.News)
	if second.ID != "news_1" || second.Description != "No description available" {
		t.Errorf("unexpected second article: %+v", second.Base)
	}
	if second.Poster != fallback.NewsPlaceholderImage {
		t.Errorf("expected placeholder poster, got %s", second.Poster)
	}
	if !second.PublishDate.IsZero() || second.ReleaseYear != 0 {
		t.Errorf("expected zero publish date for garbage input")
	}
}

func TestNewsParser_DefaultCategory(t *testing.T) {
	t.Parallel()
	body := testutil.GenerateNewsJSON([]testutil.ArticleOptions{{Source: "BBC", Title: "Hello"}})
	got, err := NewNewsParser("").Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	n := got[0].(*models.News)
	if n.NewsCategory != "General" || n.Genre[0] != "General" {
		t.Errorf("expected General category, got %q %v", n.NewsCategory, n.Genre)
	}
}

func TestNewsParser_ErrorStatus(t *testing.T) {
	t.Parallel()
	body := testutil.GenerateNewsErrorJSON("apiKeyInvalid", "Your API key is invalid")
	_, err := NewNewsParser("").Parse(strings.NewReader(body))
	if err == nil || !strings.Contains(err.Error(), "API key is invalid") {
		t.Fatalf("expected provider status error, got %v", err)
	}
}

func TestStripHTML(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"plain   text\n here":               "plain text here",
		"<p>Hello <i>world</i></p>":         "Hello world",
		"Fish &amp; Chips":                  "Fish & Chips",
		"":                                  "",
		"<ul><li>one</li><li>two</li></ul>": "onetwo",
	}
	for in, want := range tests {
		if got := StripHTML(in); got != want {
			t.Errorf("StripHTML(%q) = %q, want %q", in, got, want)
		}
	}
}
