package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/fallback"
	"github.com/Shuvikm/sonyliv-clone/internal/metrics"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/parser"
)

// pageBatchSize controls how many pages are fetched in parallel at once.
const pageBatchSize = 10

// animePages is the number of discover pages fetched per format for anime.
const animePages = 3

// pageRequest is one TMDB page to fetch and the parser for its results
type pageRequest struct {
	path   string
	query  url.Values
	parser *parser.TMDBListParser
}

func (c *client) PopularMovies(ctx context.Context, page, pageCount int) models.Result[[]models.Content] {
	return c.pagedList(ctx, models.CategoryMovie, "/movie/popular", nil, page, pageCount)
}

func (c *client) TopRatedMovies(ctx context.Context, page, pageCount int) models.Result[[]models.Content] {
	return c.pagedList(ctx, models.CategoryMovie, "/movie/top_rated", nil, page, pageCount)
}

func (c *client) PopularSeries(ctx context.Context, page, pageCount int) models.Result[[]models.Content] {
	return c.pagedList(ctx, models.CategorySeries, "/tv/popular", nil, page, pageCount)
}

func (c *client) TrendingMovies(ctx context.Context) models.Result[[]models.Content] {
	return c.pagedList(ctx, models.CategoryMovie, "/trending/movie/week", nil, 1, 1)
}

func (c *client) ActionMovies(ctx context.Context, page int) models.Result[[]models.Content] {
	query := url.Values{}
	query.Set("with_genres", "28")
	query.Set("sort_by", "popularity.desc")
	return c.pagedList(ctx, models.CategoryMovie, "/discover/movie", query, page, 1)
}

// Anime merges the Japanese animation discover lists for movies and TV and
// orders them by rating, highest first.
func (c *client) Anime(ctx context.Context) models.Result[[]models.Content] {
	if !c.tmdb.configured() {
		return c.fallbackList(models.CategoryAnime, "no TMDB API key")
	}

	requests := make([]pageRequest, 0, 2*animePages)
	for _, format := range []string{"movie", "tv"} {
		p := parser.NewTMDBListParser(models.CategoryAnime, format, c.imageBase)
		for page := 1; page <= animePages; page++ {
			query := url.Values{}
			query.Set("with_genres", "16")
			query.Set("with_original_language", "ja")
			query.Set("sort_by", "popularity.desc")
			query.Set("page", strconv.Itoa(page))
			requests = append(requests, pageRequest{path: "/discover/" + format, query: query, parser: p})
		}
	}

	items, err := c.fetchPages(ctx, requests)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("Some anime pages failed")
	}
	// Dedupe before sorting so the movie record wins over a tv record with the same id.
	items = models.DedupeByID(items)
	slices.SortStableFunc(items, func(a, b models.Content) int {
		ra, rb := a.Common().Rating, b.Common().Rating
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		default:
			return 0
		}
	})
	return c.listResult(models.CategoryAnime, items)
}

func (c *client) SearchMovies(ctx context.Context, query string) models.Result[[]models.Content] {
	if strings.TrimSpace(query) == "" {
		return c.PopularMovies(ctx, 1, 0)
	}
	return c.search(ctx, models.CategoryMovie, "/search/movie", query)
}

func (c *client) SearchSeries(ctx context.Context, query string) models.Result[[]models.Content] {
	if strings.TrimSpace(query) == "" {
		return c.PopularSeries(ctx, 1, 0)
	}
	return c.search(ctx, models.CategorySeries, "/search/tv", query)
}

// search degrades to the category fallback filtered by the query.
func (c *client) search(ctx context.Context, kind models.Category, path, query string) models.Result[[]models.Content] {
	query = strings.TrimSpace(query)
	logger := config.GetLogger()

	if !c.tmdb.configured() {
		metrics.FallbacksTotal.WithLabelValues(kind.String()).Inc()
		return models.Fallback(fallback.Search(kind, query))
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("page", "1")
	items, err := c.fetchPages(ctx, []pageRequest{{path: path, query: q, parser: parser.NewTMDBListParser(kind, "", c.imageBase)}})
	items = models.DedupeByID(items)
	if err != nil || len(items) == 0 {
		logger.Info().Err(err).Str("kind", kind.String()).Str("query", query).Msg("Search returned nothing, using fallback")
		metrics.FallbacksTotal.WithLabelValues(kind.String()).Inc()
		return models.Fallback(fallback.Search(kind, query))
	}
	return models.Ok(items)
}

// pagedList fetches pages page..page+pageCount-1 of a TMDB list endpoint.
func (c *client) pagedList(ctx context.Context, kind models.Category, path string, base url.Values, page, pageCount int) models.Result[[]models.Content] {
	if !c.tmdb.configured() {
		return c.fallbackList(kind, "no TMDB API key")
	}
	if page < 1 {
		page = 1
	}
	pageCount = c.pageCount(pageCount)

	p := parser.NewTMDBListParser(kind, "", c.imageBase)
	requests := make([]pageRequest, 0, pageCount)
	for n := page; n < page+pageCount; n++ {
		query := url.Values{}
		for k, v := range base {
			query[k] = append([]string(nil), v...)
		}
		query.Set("page", strconv.Itoa(n))
		requests = append(requests, pageRequest{path: path, query: query, parser: p})
	}

	items, err := c.fetchPages(ctx, requests)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("path", path).Int("pages", pageCount).Msg("Some pages failed")
	}
	return c.listResult(kind, items)
}

// fetchPages fetches every request in parallel batches of pageBatchSize and
// concatenates the parsed items in request order. A failed page contributes
// nothing; its error is joined into the returned error.
func (c *client) fetchPages(ctx context.Context, requests []pageRequest) ([]models.Content, error) {
	logger := config.GetLogger()
	results := make([][]models.Content, len(requests))
	errs := make([]error, len(requests))

	for batchStart := 0; batchStart < len(requests); batchStart += pageBatchSize {
		batchEnd := min(batchStart+pageBatchSize, len(requests))

		var batchWg sync.WaitGroup
		batchWg.Add(batchEnd - batchStart)

		for i := batchStart; i < batchEnd; i++ {
			go func() {
				defer batchWg.Done()
				req := requests[i]

				body, err := c.fetchPage(ctx, c.tmdb, req.path, req.query)
				if err != nil {
					logger.Warn().Err(err).Str("path", req.path).Str("page", req.query.Get("page")).Msg("Failed to fetch page")
					errs[i] = err
					return
				}
				items, err := req.parser.Parse(bytes.NewReader(body))
				if err != nil {
					logger.Warn().Err(err).Str("path", req.path).Str("page", req.query.Get("page")).Msg("Failed to parse page")
					errs[i] = err
					return
				}
				results[i] = items
			}()
		}

		batchWg.Wait()

		if ctx.Err() != nil {
			errs = append(errs, fmt.Errorf("page fetch cancelled: %w", ctx.Err()))
			break
		}
	}

	var merged []models.Content
	for _, items := range results {
		merged = append(merged, items...)
	}
	return merged, errors.Join(errs...)
}

// listResult dedupes items and degrades to the category fallback when nothing is left.
func (c *client) listResult(kind models.Category, items []models.Content) models.Result[[]models.Content] {
	items = models.DedupeByID(items)
	if len(items) == 0 {
		return c.fallbackList(kind, "provider returned no items")
	}
	return models.Ok(items)
}

func (c *client) fallbackList(kind models.Category, reason string) models.Result[[]models.Content] {
	logger := config.GetLogger()
	logger.Info().Str("kind", kind.String()).Str("reason", reason).Msg("Serving fallback catalog")
	metrics.FallbacksTotal.WithLabelValues(kind.String()).Inc()
	return models.Fallback(fallback.ForCategory(kind))
}
