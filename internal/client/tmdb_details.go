package client

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/parser"
)

func (c *client) MovieDetails(ctx context.Context, id string) (*parser.TMDBDetails, error) {
	return c.details(ctx, "/movie/", id)
}

func (c *client) SeriesDetails(ctx context.Context, id string) (*parser.TMDBDetails, error) {
	return c.details(ctx, "/tv/", id)
}

func (c *client) details(ctx context.Context, prefix, id string) (*parser.TMDBDetails, error) {
	if !c.tmdb.configured() {
		return nil, &apperrors.ErrUnavailable{Dependency: "tmdb"}
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.NewContentNotFoundError(id)
	}

	query := url.Values{}
	query.Set("append_to_response", "credits")
	body, err := c.fetchPage(ctx, c.tmdb, prefix+url.PathEscape(id), query)
	if err != nil {
		return nil, fmt.Errorf("fetch details %s%s: %w", prefix, id, err)
	}
	d, err := parser.NewTMDBDetailsParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *client) MovieVideos(ctx context.Context, id string) []models.Video {
	return c.videos(ctx, "/movie/", id, false)
}

func (c *client) SeriesVideos(ctx context.Context, id string) []models.Video {
	return c.videos(ctx, "/tv/", id, true)
}

func (c *client) videos(ctx context.Context, prefix, id string, series bool) []models.Video {
	logger := config.GetLogger()
	if !c.tmdb.configured() || strings.TrimSpace(id) == "" {
		return []models.Video{}
	}

	body, err := c.fetchPage(ctx, c.tmdb, prefix+url.PathEscape(id)+"/videos", nil)
	if err != nil {
		logger.Warn().Err(err).Str("id", id).Msg("Failed to fetch videos")
		return []models.Video{}
	}
	videos, err := parser.NewVideoParser(series).Parse(bytes.NewReader(body))
	if err != nil {
		logger.Warn().Err(err).Str("id", id).Msg("Failed to parse videos")
		return []models.Video{}
	}
	return videos
}
