package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

type tmdbVideos struct {
	Results []TMDBVideo `json:"results"`
}

// TMDBVideo is one entry of a /videos response
type TMDBVideo struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

var (
	movieVideoTypes  = []string{"Trailer", "Teaser", "Clip"}
	seriesVideoTypes = []string{"Trailer", "Teaser", "Clip", "Opening Credits"}
)

// VideoParser keeps the YouTube videos of the accepted types
type VideoParser struct {
	types []string
}

// NewVideoParser returns a parser for movie videos, or TV videos when series is
// true (which also accept opening credits).
func NewVideoParser(series bool) Parser[models.Video] {
	if series {
		return &VideoParser{types: seriesVideoTypes}
	}
	return &VideoParser{types: movieVideoTypes}
}

func (p *VideoParser) Parse(body io.Reader) ([]models.Video, error) {
	var payload tmdbVideos
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode TMDB videos: %w", err)
	}

	videos := make([]models.Video, 0, len(payload.Results))
	for _, v := range payload.Results {
		if v.Site != "YouTube" || v.Key == "" || !p.accepts(v.Type) {
			continue
		}
		videos = append(videos, models.Video{
			ID:        v.ID,
			Key:       v.Key,
			Name:      v.Name,
			Type:      v.Type,
			URL:       models.YouTubeEmbedURL(v.Key),
			Thumbnail: models.YouTubeThumbnailURL(v.Key),
		})
	}
	return videos, nil
}

func (p *VideoParser) accepts(t string) bool {
	for _, want := range p.types {
		if t == want {
			return true
		}
	}
	return false
}

// PrimaryTrailer picks the first Trailer, else the first video.
func PrimaryTrailer(videos []models.Video) (models.Video, bool) {
	for _, v := range videos {
		if v.Type == "Trailer" {
			return v, true
		}
	}
	if len(videos) > 0 {
		return videos[0], true
	}
	return models.Video{}, false
}
