package services

import (
	"context"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/Shuvikm/sonyliv-clone/internal/client"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/fallback"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/parser"
)

// homeFeedLimit caps every home carousel
const homeFeedLimit = 8

// DefaultCatalog implements Catalog on top of a provider client
type DefaultCatalog struct {
	client client.Client
}

// NewCatalog creates the browse façade.
func NewCatalog(c client.Client) Catalog {
	return &DefaultCatalog{client: c}
}

func (s *DefaultCatalog) Search(ctx context.Context, query string) models.Result[[]models.Content] {
	logger := config.GetLogger()

	var movies, series models.Result[[]models.Content]
	p := pool.New()
	p.Go(func() { movies = s.client.SearchMovies(ctx, query) })
	p.Go(func() { series = s.client.SearchSeries(ctx, query) })
	p.Wait()

	merged := interleave(movies.Data, series.Data)
	if movies.IsDegraded() && series.IsDegraded() && len(merged) == 0 {
		mixed := fallback.Filter(fallback.MixedSearch(), query)
		if len(mixed) == 0 {
			mixed = fallback.MixedSearch()
		}
		logger.Info().Str("query", query).Int("results", len(mixed)).Msg("Search degraded to mixed fallback")
		return models.Fallback(mixed)
	}
	// Any fallback record in the merge makes the whole answer a fallback.
	if movies.IsDegraded() || series.IsDegraded() {
		return models.Fallback(merged)
	}

	logger.Debug().
		Str("query", query).
		Int("movies", len(movies.Data)).
		Int("series", len(series.Data)).
		Msg("Search completed")
	return models.Ok(merged)
}

// interleave takes a[0], b[0], a[1], b[1], ... up to the longer length.
func interleave(a, b []models.Content) []models.Content {
	out := make([]models.Content, 0, len(a)+len(b))
	for i := 0; i < max(len(a), len(b)); i++ {
		if i < len(a) {
			out = append(out, a[i])
		}
		if i < len(b) {
			out = append(out, b[i])
		}
	}
	return out
}

func (s *DefaultCatalog) HomeFeed(ctx context.Context) models.HomeFeed {
	var feed models.HomeFeed
	p := pool.New()
	p.Go(func() {
		feed.Trending = carousel(s.client.TrendingMovies(ctx), models.CategoryMovie)
	})
	p.Go(func() {
		feed.Series = carousel(s.client.PopularSeries(ctx, 1, 1), models.CategorySeries)
	})
	p.Go(func() {
		feed.Anime = carousel(s.client.Anime(ctx), models.CategoryAnime)
	})
	p.Go(func() {
		feed.News = carousel(s.client.SearchNews(ctx, "", ""), models.CategoryNews)
	})
	p.Wait()
	return feed
}

// carousel truncates a home list, substituting the category fallback for an empty one.
func carousel(r models.Result[[]models.Content], kind models.Category) models.Result[[]models.Content] {
	if len(r.Data) == 0 {
		r = models.Fallback(fallback.ForCategory(kind))
	}
	if len(r.Data) > homeFeedLimit {
		r.Data = r.Data[:homeFeedLimit]
	}
	return r
}

func (s *DefaultCatalog) ContentDetails(ctx context.Context, id string, kind models.Category, format string) models.Result[models.Content] {
	logger := config.GetLogger()
	id = strings.TrimSpace(id)
	if id == "" {
		return models.NotFound[models.Content]()
	}

	if fallback.IsLocalID(id) {
		if c, ok := fallback.Lookup(id); ok {
			return models.Ok(fallback.WithDerivedTrailer(c))
		}
		logger.Debug().Str("id", id).Msg("Local id not in fallback catalog")
		return models.NotFound[models.Content]()
	}

	var (
		details    *parser.TMDBDetails
		detailsErr error
		videos     []models.Video
	)
	filmEndpoint := true
	switch kind {
	case models.CategorySeries:
		filmEndpoint = false
	case models.CategoryAnime:
		filmEndpoint = strings.EqualFold(strings.TrimSpace(format), "movie")
	default:
		kind = models.CategoryMovie
	}

	p := pool.New()
	if filmEndpoint {
		p.Go(func() { details, detailsErr = s.client.MovieDetails(ctx, id) })
		p.Go(func() { videos = s.client.MovieVideos(ctx, id) })
	} else {
		p.Go(func() { details, detailsErr = s.client.SeriesDetails(ctx, id) })
		p.Go(func() { videos = s.client.SeriesVideos(ctx, id) })
	}
	p.Wait()
	return s.assemble(kind, id, details, detailsErr, videos)
}

// assemble builds the detail record, falling back to the static catalog
// when the provider failed.
func (s *DefaultCatalog) assemble(kind models.Category, id string, details *parser.TMDBDetails, detailsErr error, videos []models.Video) models.Result[models.Content] {
	if detailsErr != nil {
		logger := config.GetLogger()
		logger.Warn().Err(detailsErr).Str("id", id).Str("kind", kind.String()).Msg("Details unavailable, trying fallback catalog")
		if c, ok := fallback.Lookup(id); ok {
			return models.Fallback(fallback.WithDerivedTrailer(c))
		}
		return models.NotFound[models.Content]()
	}

	content := details.ToContent(kind, s.client.ImageBaseURL())
	base := content.Common()
	base.Videos = videos
	if base.Videos == nil {
		base.Videos = []models.Video{}
	}
	if trailer, ok := parser.PrimaryTrailer(videos); ok {
		base.VideoURL = trailer.URL
	} else {
		base.VideoURL = fallback.Trailer(kind)
	}
	return models.Ok(content)
}

func (s *DefaultCatalog) Browse(ctx context.Context, kind models.Category, filter Filter) models.Result[[]models.Content] {
	filter.Search = strings.TrimSpace(filter.Search)

	var r models.Result[[]models.Content]
	switch kind {
	case models.CategoryMovie:
		if filter.Search != "" {
			r = s.client.SearchMovies(ctx, filter.Search)
		} else {
			r = s.client.PopularMovies(ctx, 1, 0)
		}
	case models.CategorySeries:
		if filter.Search != "" {
			r = s.client.SearchSeries(ctx, filter.Search)
		} else {
			r = s.client.PopularSeries(ctx, 1, 0)
		}
	case models.CategoryAnime:
		r = s.client.Anime(ctx)
		r.Data = fallback.Filter(r.Data, filter.Search)
	case models.CategorySport:
		r = s.SearchSports(filter.Search)
	case models.CategoryMusic:
		r = s.SearchMusic(filter.Search)
	case models.CategoryNews:
		r = s.SearchNews(ctx, filter.Search, "")
	default:
		return models.NotFound[[]models.Content]()
	}

	r.Data = applyFilter(r.Data, filter)
	return r
}

// applyFilter keeps items matching genre and language (case-insensitive
// substring) and year (exact).
func applyFilter(items []models.Content, f Filter) []models.Content {
	genre := strings.ToLower(strings.TrimSpace(f.Genre))
	language := strings.ToLower(strings.TrimSpace(f.Language))
	if genre == "" && language == "" && f.Year == 0 {
		return items
	}

	out := make([]models.Content, 0, len(items))
	for _, c := range items {
		b := c.Common()
		if f.Year != 0 && b.ReleaseYear != f.Year {
			continue
		}
		if language != "" && !strings.Contains(strings.ToLower(b.Language), language) {
			continue
		}
		if genre != "" && !slices.ContainsFunc(b.Genre, func(g string) bool {
			return strings.Contains(strings.ToLower(g), genre)
		}) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SearchSports filters the built-in sports catalog. There is no live provider.
func (s *DefaultCatalog) SearchSports(query string) models.Result[[]models.Content] {
	return models.Ok(fallback.Search(models.CategorySport, query))
}

// SearchMusic filters the built-in music catalog. There is no live provider.
func (s *DefaultCatalog) SearchMusic(query string) models.Result[[]models.Content] {
	return models.Ok(fallback.Search(models.CategoryMusic, query))
}

func (s *DefaultCatalog) SearchNews(ctx context.Context, query, category string) models.Result[[]models.Content] {
	return s.client.SearchNews(ctx, query, category)
}

func (s *DefaultCatalog) TopRated(ctx context.Context, page int) models.Result[[]models.Content] {
	return s.client.TopRatedMovies(ctx, page, 0)
}

func (s *DefaultCatalog) Action(ctx context.Context, page int) models.Result[[]models.Content] {
	return s.client.ActionMovies(ctx, page)
}

func (s *DefaultCatalog) Trending(ctx context.Context) models.Result[[]models.Content] {
	return s.client.TrendingMovies(ctx)
}
