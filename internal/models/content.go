package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Content is a normalized browse record. Each category has its own variant
// carrying only the fields that make sense for it; the shared subset lives
// in Base and is reached through Common.
type Content interface {
	Common() *Base
	Kind() Category
	// Matches reports whether term, already passed through FoldTerm, occurs
	// in the record's searchable text. Variants extend the default title/description match.
	Matches(term string) bool
	Clone() Content
}

// Base holds the fields shared by every Content variant
type Base struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        Category `json:"type"`
	Genre       []string `json:"genre"`
	Poster      string   `json:"poster"`
	Backdrop    string   `json:"backdrop"`
	Rating      float64  `json:"rating"`      // 0-10
	Views       int64    `json:"views"`       // popularity proxy, not a real view count
	ReleaseYear int      `json:"releaseYear"` // 0 when unknown
	Language    string   `json:"language"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Videos      []Video  `json:"videos,omitzero"` // nil on list records, never nil on details
}

func (b *Base) Common() *Base { return b }

func (b *Base) Kind() Category { return b.Type }

func (b *Base) Matches(term string) bool {
	return containsFold(b.Title, term) || containsFold(b.Description, term)
}

func (b Base) clone() Base {
	b.Genre = cloneStrings(b.Genre)
	b.Videos = slices.Clone(b.Videos)
	return b
}

// Movie is a feature film
type Movie struct {
	Base
	IMDbID   string   `json:"imdbID,omitempty"`
	Cast     []string `json:"cast,omitempty"`
	Director string   `json:"director,omitempty"`
	Tagline  string   `json:"tagline,omitempty"`
	Status   string   `json:"status,omitempty"`
	Duration int      `json:"duration,omitempty"` // minutes
}

func (m *Movie) Clone() Content {
	c := *m
	c.Base = m.Base.clone()
	c.Cast = cloneStrings(m.Cast)
	return &c
}

// Series is an episodic TV show
type Series struct {
	Base
	IMDbID   string   `json:"imdbID,omitempty"`
	Seasons  int      `json:"seasons,omitempty"`
	Episodes int      `json:"episodes,omitempty"`
	Cast     []string `json:"cast,omitempty"`
	Director string   `json:"director,omitempty"`
	Tagline  string   `json:"tagline,omitempty"`
	Status   string   `json:"status,omitempty"`
	Duration int      `json:"duration,omitempty"` // minutes per episode
}

func (s *Series) Clone() Content {
	c := *s
	c.Base = s.Base.clone()
	c.Cast = cloneStrings(s.Cast)
	return &c
}

// Anime is Japanese animation, either a film or a TV show
type Anime struct {
	Base
	Format   string   `json:"format,omitempty"` // "movie" or "tv"
	Seasons  int      `json:"seasons,omitempty"`
	Episodes int      `json:"episodes,omitempty"`
	Cast     []string `json:"cast,omitempty"`
	Director string   `json:"director,omitempty"`
	Tagline  string   `json:"tagline,omitempty"`
	Status   string   `json:"status,omitempty"`
	Duration int      `json:"duration,omitempty"` // minutes, per episode for tv
}

func (a *Anime) Clone() Content {
	c := *a
	c.Base = a.Base.clone()
	c.Cast = cloneStrings(a.Cast)
	return &c
}

// Sport is a match or tournament event
type Sport struct {
	Base
	IsLive    bool     `json:"isLive"`
	SportType string   `json:"sportType,omitempty"`
	Teams     []string `json:"teams,omitempty"`
	Venue     string   `json:"venue,omitempty"`
}

func (s *Sport) Matches(term string) bool {
	return s.Base.Matches(term) || containsFold(s.SportType, term) || anyContainsFold(s.Teams, term)
}

func (s *Sport) Clone() Content {
	c := *s
	c.Base = s.Base.clone()
	c.Teams = cloneStrings(s.Teams)
	return &c
}

// News is a news article
type News struct {
	Base
	NewsCategory string    `json:"newsCategory,omitempty"`
	Source       string    `json:"source,omitempty"`
	PublishDate  time.Time `json:"publishDate"`
	URL          string    `json:"url,omitempty"`
}

func (n *News) Matches(term string) bool {
	return n.Base.Matches(term) || containsFold(n.NewsCategory, term) || containsFold(n.Source, term)
}

func (n *News) Clone() Content {
	c := *n
	c.Base = n.Base.clone()
	return &c
}

// Music is a song or music video
type Music struct {
	Base
	Artist   string `json:"artist,omitempty"`
	Duration string `json:"duration,omitempty"` // "m:ss"
}

func (m *Music) Matches(term string) bool {
	return m.Base.Matches(term) || containsFold(m.Artist, term) || anyContainsFold(m.Genre, term)
}

func (m *Music) Clone() Content {
	c := *m
	c.Base = m.Base.clone()
	return &c
}

// NewContent returns an empty variant for the category with Type already set.
func NewContent(kind Category) (Content, error) {
	var c Content
	switch kind {
	case CategoryMovie:
		c = &Movie{}
	case CategorySeries:
		c = &Series{}
	case CategoryAnime:
		c = &Anime{}
	case CategorySport:
		c = &Sport{}
	case CategoryNews:
		c = &News{}
	case CategoryMusic:
		c = &Music{}
	default:
		return nil, fmt.Errorf("unknown content category %q", kind)
	}
	c.Common().Type = kind
	return c, nil
}

// DecodeContent decodes a flat JSON object into the variant named by its "type" field.
func DecodeContent(data []byte) (Content, error) {
	var probe struct {
		Type Category `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode content type: %w", err)
	}
	c, err := NewContent(probe.Type)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("decode %s content: %w", probe.Type, err)
	}
	return c, nil
}

// CloneAll deep copies a list of Content records.
func CloneAll(items []Content) []Content {
	out := make([]Content, len(items))
	for i, c := range items {
		out[i] = c.Clone()
	}
	return out
}

// DedupeByID keeps the first occurrence of every id, preserving order.
func DedupeByID(items []Content) []Content {
	seen := make(map[string]struct{}, len(items))
	out := make([]Content, 0, len(items))
	for _, c := range items {
		id := c.Common().ID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, c)
	}
	return out
}

func containsFold(s, lowerTerm string) bool {
	return s != "" && strings.Contains(FoldTerm(s), lowerTerm)
}

func anyContainsFold(values []string, lowerTerm string) bool {
	for _, v := range values {
		if containsFold(v, lowerTerm) {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
