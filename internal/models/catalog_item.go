package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
)

// CatalogType is the document type used by the catalog backend. It is a
// separate vocabulary from Category; see Category.CatalogType for the mapping.
type CatalogType string

const (
	CatalogTypeMovie  CatalogType = "movie"
	CatalogTypeSport  CatalogType = "sport"
	CatalogTypeNews   CatalogType = "news"
	CatalogTypeSerial CatalogType = "serial"
	CatalogTypeShow   CatalogType = "show"
)

// Valid reports whether t is one of the known catalog types.
func (t CatalogType) Valid() bool {
	switch t {
	case CatalogTypeMovie, CatalogTypeSport, CatalogTypeNews, CatalogTypeSerial, CatalogTypeShow:
		return true
	}
	return false
}

// CatalogStatus is the publication state of a catalog document
type CatalogStatus string

const (
	CatalogStatusActive     CatalogStatus = "active"
	CatalogStatusInactive   CatalogStatus = "inactive"
	CatalogStatusComingSoon CatalogStatus = "coming_soon"
)

// CastMember is a credited person on a catalog document
type CastMember struct {
	Name  string `bson:"name" json:"name"`
	Role  string `bson:"role,omitempty" json:"role,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// CatalogItem is a content document persisted by the catalog backend
type CatalogItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Type        CatalogType        `bson:"type" json:"type"`
	Genre       []string           `bson:"genre" json:"genre"`
	Language    string             `bson:"language" json:"language"`
	Duration    int                `bson:"duration" json:"duration"` // minutes
	ReleaseYear int                `bson:"releaseYear,omitempty" json:"releaseYear,omitempty"`
	Rating      float64            `bson:"rating" json:"rating"`
	Poster      string             `bson:"poster" json:"poster"`
	Banner      string             `bson:"banner,omitempty" json:"banner,omitempty"`
	Trailer     string             `bson:"trailer,omitempty" json:"trailer,omitempty"`
	StreamURL   string             `bson:"streamUrl" json:"streamUrl"`
	IsLive      bool               `bson:"isLive" json:"isLive"`
	IsFeatured  bool               `bson:"isFeatured" json:"isFeatured"`
	IsTrending  bool               `bson:"isTrending" json:"isTrending"`
	Cast        []CastMember       `bson:"cast,omitempty" json:"cast,omitempty"`
	Director    string             `bson:"director,omitempty" json:"director,omitempty"`
	Producer    string             `bson:"producer,omitempty" json:"producer,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Views       int64              `bson:"views" json:"views"`
	Likes       int64              `bson:"likes" json:"likes"`
	Dislikes    int64              `bson:"dislikes" json:"dislikes"`
	Status      CatalogStatus      `bson:"status" json:"status"`

	SportType string     `bson:"sportType,omitempty" json:"sportType,omitempty"`
	Teams     []string   `bson:"teams,omitempty" json:"teams,omitempty"`
	Venue     string     `bson:"venue,omitempty" json:"venue,omitempty"`
	MatchDate *time.Time `bson:"matchDate,omitempty" json:"matchDate,omitempty"`

	NewsCategory string     `bson:"newsCategory,omitempty" json:"newsCategory,omitempty"`
	Source       string     `bson:"source,omitempty" json:"source,omitempty"`
	PublishDate  *time.Time `bson:"publishDate,omitempty" json:"publishDate,omitempty"`

	Season        int    `bson:"season,omitempty" json:"season,omitempty"`
	Episode       int    `bson:"episode,omitempty" json:"episode,omitempty"`
	TotalEpisodes int    `bson:"totalEpisodes,omitempty" json:"totalEpisodes,omitempty"`
	AirTime       string `bson:"airTime,omitempty" json:"airTime,omitempty"`
	Channel       string `bson:"channel,omitempty" json:"channel,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Normalize trims the title and fills in schema defaults.
func (c *CatalogItem) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	if c.Language == "" {
		c.Language = "English"
	}
	if c.Status == "" {
		c.Status = CatalogStatusActive
	}
}

// Validate checks required fields and value ranges.
func (c *CatalogItem) Validate() error {
	var fields []string
	if c.Title == "" {
		fields = append(fields, "title")
	}
	if c.Description == "" {
		fields = append(fields, "description")
	}
	if !c.Type.Valid() {
		fields = append(fields, "type")
	}
	if len(c.Genre) == 0 {
		fields = append(fields, "genre")
	}
	if c.Poster == "" {
		fields = append(fields, "poster")
	}
	if c.StreamURL == "" {
		fields = append(fields, "streamUrl")
	}
	if c.Rating < 0 || c.Rating > 10 {
		fields = append(fields, "rating")
	}
	switch c.Status {
	case CatalogStatusActive, CatalogStatusInactive, CatalogStatusComingSoon:
	default:
		fields = append(fields, "status")
	}
	if len(fields) > 0 {
		return &apperrors.ErrValidation{Fields: fields}
	}
	return nil
}
