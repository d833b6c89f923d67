package client

import (
	"bytes"
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/parser"
)

const (
	defaultNewsQuery = "technology"
	newsPageSize     = 20
)

// SearchNews queries NewsAPI /everything, newest first. An empty query
// searches technology news.
func (c *client) SearchNews(ctx context.Context, query, category string) models.Result[[]models.Content] {
	logger := config.GetLogger()
	if !c.news.configured() {
		return c.fallbackList(models.CategoryNews, "no news API key")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		query = defaultNewsQuery
	}
	category = strings.TrimSpace(category)

	q := url.Values{}
	q.Set("q", query)
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(newsPageSize))
	if category != "" {
		q.Set("category", category)
	}

	body, err := c.fetchPage(ctx, c.news, "/everything", q)
	if err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("Failed to fetch news")
		return c.fallbackList(models.CategoryNews, "news request failed")
	}
	items, err := parser.NewNewsParser(category).Parse(bytes.NewReader(body))
	if err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("Failed to parse news")
		return c.fallbackList(models.CategoryNews, "news response rejected")
	}
	if len(items) > newsPageSize {
		items = items[:newsPageSize]
	}
	return c.listResult(models.CategoryNews, items)
}
