package client

import (
	"context"
	"net/http"
	"time"

	"github.com/Shuvikm/sonyliv-clone/internal/cache"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/parser"
)

// Client is the provider adapter layer. List methods never fail: every
// provider error or empty response degrades to a Fallback result.
type Client interface {
	PopularMovies(ctx context.Context, page, pageCount int) models.Result[[]models.Content]
	TrendingMovies(ctx context.Context) models.Result[[]models.Content]
	TopRatedMovies(ctx context.Context, page, pageCount int) models.Result[[]models.Content]
	ActionMovies(ctx context.Context, page int) models.Result[[]models.Content]
	PopularSeries(ctx context.Context, page, pageCount int) models.Result[[]models.Content]
	Anime(ctx context.Context) models.Result[[]models.Content]

	// SearchMovies and SearchSeries delegate to the popular lists for a blank query.
	SearchMovies(ctx context.Context, query string) models.Result[[]models.Content]
	SearchSeries(ctx context.Context, query string) models.Result[[]models.Content]
	SearchNews(ctx context.Context, query, category string) models.Result[[]models.Content]

	// Video lookups return an empty list on failure.
	MovieVideos(ctx context.Context, id string) []models.Video
	SeriesVideos(ctx context.Context, id string) []models.Video

	MovieDetails(ctx context.Context, id string) (*parser.TMDBDetails, error)
	SeriesDetails(ctx context.Context, id string) (*parser.TMDBDetails, error)

	// ImageBaseURL is the TMDB image CDN used to build poster URLs.
	ImageBaseURL() string

	Close() error
}

const (
	defaultMaxPages = 5
	hardMaxPages    = 20
)

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	tmdb          provider
	news          provider
	imageBase     string
	maxPages      int
	responseCache cache.Cache
}

// NewClient creates the provider client. responseCache may be nil, in which
// case every call goes to the network.
func NewClient(cfg *config.Config, responseCache cache.Cache) Client {
	timeout := config.ParseDuration("client_timeout", cfg.ClientTimeout, 10*time.Second)

	// Clone DefaultTransport to keep its pooling, HTTP/2 and proxy-from-env settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(baseTransport),
	}

	maxPages := cfg.Client.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	maxPages = min(maxPages, hardMaxPages)

	imageBase := cfg.TMDB.ImageBaseURL
	if imageBase == "" {
		imageBase = "https://image.tmdb.org/t/p/"
	}

	breakerDelay := config.ParseDuration("client.breaker_delay", cfg.Client.BreakerDelay, defaultBreakerDelay)

	return &client{
		httpClient:    httpClient,
		tmdb:          newTMDBProvider(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, newBreaker(providerTMDB, cfg.Client.BreakerThreshold, breakerDelay)),
		news:          newNewsProvider(cfg.News.BaseURL, cfg.News.APIKey, newBreaker(providerNews, cfg.Client.BreakerThreshold, breakerDelay)),
		imageBase:     imageBase,
		maxPages:      maxPages,
		responseCache: responseCache,
	}
}

func (c *client) ImageBaseURL() string {
	return c.imageBase
}

// Close releases the response cache.
func (c *client) Close() error {
	if c.responseCache == nil {
		return nil
	}
	return c.responseCache.Close()
}

// pageCount clamps a requested page count to the configured maximum.
func (c *client) pageCount(requested int) int {
	if requested <= 0 || requested > c.maxPages {
		return c.maxPages
	}
	return requested
}
