package models

import "strings"

// Category is the kind of a browse Content record
type Category int

const (
	CategoryUnknown Category = iota
	CategoryMovie
	CategorySeries
	CategoryAnime
	CategorySport
	CategoryNews
	CategoryMusic
)

// AllCategories lists every concrete category in display order
var AllCategories = []Category{
	CategoryMovie,
	CategorySeries,
	CategoryAnime,
	CategorySport,
	CategoryNews,
	CategoryMusic,
}

// String returns the wire name of the category
func (c Category) String() string {
	switch c {
	case CategoryMovie:
		return "movie"
	case CategorySeries:
		return "series"
	case CategoryAnime:
		return "anime"
	case CategorySport:
		return "sport"
	case CategoryNews:
		return "news"
	case CategoryMusic:
		return "music"
	default:
		return "unknown"
	}
}

// ParseCategory converts a category name to Category. Plural and backend
// spellings ("movies", "tv", "serial", "show", "sports") are accepted.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies":
		return CategoryMovie
	case "series", "tv", "serial", "serials", "show", "shows":
		return CategorySeries
	case "anime":
		return CategoryAnime
	case "sport", "sports":
		return CategorySport
	case "news":
		return CategoryNews
	case "music":
		return CategoryMusic
	default:
		return CategoryUnknown
	}
}

// CatalogType maps a browse category to the backend catalog document type.
// Anime and music have no backend counterpart and map to an empty string.
func (c Category) CatalogType() CatalogType {
	switch c {
	case CategoryMovie:
		return CatalogTypeMovie
	case CategorySeries:
		return CatalogTypeSerial
	case CategorySport:
		return CatalogTypeSport
	case CategoryNews:
		return CatalogTypeNews
	default:
		return ""
	}
}

// MarshalJSON implements json.Marshaler interface
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (c *Category) UnmarshalJSON(data []byte) error {
	*c = ParseCategory(strings.Trim(string(data), `"`))
	return nil
}
