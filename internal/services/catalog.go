package services

import (
	"context"

	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

// Catalog aggregates the provider adapters and the static fallback catalog
// into the browse operations used by the web pages. No method returns an
// error: provider failures surface as a Fallback status.
type Catalog interface {
	// Search interleaves movie and series results, movie first. The result
	// is a Fallback as soon as either side came from the static catalog.
	Search(ctx context.Context, query string) models.Result[[]models.Content]

	// HomeFeed loads the trending, series, anime and news carousels in parallel.
	HomeFeed(ctx context.Context) models.HomeFeed

	// ContentDetails resolves one record with its trailer. Local ids never
	// touch the network. format picks the endpoint for anime: "movie" reads
	// the film record, anything else the TV record.
	ContentDetails(ctx context.Context, id string, kind models.Category, format string) models.Result[models.Content]

	// Browse lists one category with the page filters applied.
	Browse(ctx context.Context, kind models.Category, filter Filter) models.Result[[]models.Content]

	SearchSports(query string) models.Result[[]models.Content]
	SearchMusic(query string) models.Result[[]models.Content]
	SearchNews(ctx context.Context, query, category string) models.Result[[]models.Content]

	TopRated(ctx context.Context, page int) models.Result[[]models.Content]
	Action(ctx context.Context, page int) models.Result[[]models.Content]
	Trending(ctx context.Context) models.Result[[]models.Content]
}

// Filter narrows a Browse listing. Zero values disable a filter.
type Filter struct {
	Search   string
	Genre    string
	Year     int
	Language string
}

// IsZero reports whether no filter is set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}
