package store

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

// Paging defaults
const (
	DefaultLimit = 20
	MaxLimit     = 100
	listLimit    = 10 // featured and trending
)

var sortableFields = map[string]bool{
	"createdAt":   true,
	"updatedAt":   true,
	"title":       true,
	"releaseYear": true,
	"rating":      true,
	"views":       true,
	"matchDate":   true,
	"publishDate": true,
}

// ContentQuery holds the filter parameters of GET /content. Paging and
// sort are applied separately through Paging and Sort.
type ContentQuery struct {
	Type   string
	Genre  string
	Search string
}

// ActiveFilter matches documents that are active or carry no status.
func ActiveFilter() bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"status": models.CatalogStatusActive},
		bson.M{"status": bson.M{"$exists": false}},
	}}
}

// textMatch is a case-insensitive substring match. The term is matched
// literally, never as a pattern.
func textMatch(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// searchFilter ORs a substring match of term over fields. Array fields
// match when any element matches.
func searchFilter(term string, fields ...string) bson.M {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: textMatch(term)})
	}
	return bson.M{"$or": or}
}

// and combines the non-empty parts with ActiveFilter. Each part keeps its
// own $or, so a search never replaces the status condition.
func and(parts ...bson.M) bson.M {
	all := bson.A{ActiveFilter()}
	for _, p := range parts {
		if len(p) > 0 {
			all = append(all, p)
		}
	}
	return bson.M{"$and": all}
}

func eq(field string, value any) bson.M {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return bson.M{field: strings.TrimSpace(v)}
	case int:
		if v == 0 {
			return nil
		}
	}
	return bson.M{field: value}
}

// ContentFilter builds the GET /content filter.
func ContentFilter(q ContentQuery) bson.M {
	return and(
		eq("type", q.Type),
		eq("genre", q.Genre),
		searchFilter(q.Search, "title", "description", "genre"),
	)
}

// FeaturedFilter matches featured active documents.
func FeaturedFilter() bson.M {
	return and(bson.M{"isFeatured": true})
}

// TrendingFilter matches trending active documents.
func TrendingFilter() bson.M {
	return and(bson.M{"isTrending": true})
}

// MoviesFilter builds the GET /content/movies filter. A zero year is ignored.
func MoviesFilter(genre string, year int, search string) bson.M {
	return and(
		bson.M{"type": models.CatalogTypeMovie},
		eq("genre", genre),
		eq("releaseYear", year),
		searchFilter(search, "title", "description", "genre"),
	)
}

// SportsFilter builds the GET /content/sports filter.
func SportsFilter(sportType string, liveOnly bool, search string) bson.M {
	var live bson.M
	if liveOnly {
		live = bson.M{"isLive": true}
	}
	return and(
		bson.M{"type": models.CatalogTypeSport},
		eq("sportType", sportType),
		live,
		searchFilter(search, "title", "description", "sportType"),
	)
}

// NewsFilter builds the GET /content/news filter.
func NewsFilter(category, search string) bson.M {
	return and(
		bson.M{"type": models.CatalogTypeNews},
		eq("newsCategory", category),
		searchFilter(search, "title", "description", "newsCategory"),
	)
}

// SerialsFilter builds the GET /content/serials filter over serials and shows.
func SerialsFilter(genre, search string) bson.M {
	return and(
		bson.M{"type": bson.M{"$in": bson.A{models.CatalogTypeSerial, models.CatalogTypeShow}}},
		eq("genre", genre),
		searchFilter(search, "title", "description", "genre"),
	)
}

// SearchFilter builds the GET /content/search/{query} filter.
func SearchFilter(query string) bson.M {
	return and(searchFilter(query, "title", "description", "genre", "type"))
}

// Sort returns a single-field sort. Any order other than "asc" sorts
// descending. An unknown field falls back to the default createdAt
// descending, whatever the order.
func Sort(field, order string) bson.D {
	if !sortableFields[field] {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	dir := -1
	if strings.EqualFold(order, "asc") {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}}
}

// Paging normalizes page and limit and returns the skip for them.
func Paging(page, limit int64) (normPage, normLimit, skip int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)
	return page, limit, (page - 1) * limit
}

// TotalPages is ceil(total / limit).
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
