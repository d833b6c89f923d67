package parser

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Image sizes requested from the TMDB image CDN
const (
	PosterSize   = "w500"
	BackdropSize = "w1280"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01", "2006"}

// ImageURL joins a TMDB image path onto the CDN base. An empty path yields placeholder.
func ImageURL(base, size, path, placeholder string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return placeholder
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + size + path
}

// ReleaseYear extracts the year from a provider date string, 0 when it is absent or invalid.
func ReleaseYear(date string) int {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year()
		}
	}
	return 0
}

// Views converts a provider popularity score into the views counter.
func Views(popularity float64) int64 {
	if popularity <= 0 || math.IsNaN(popularity) || math.IsInf(popularity, 0) {
		return 0
	}
	return int64(math.Floor(popularity * 1000))
}

// NormalizeRating maps a provider rating onto 0-10 with one decimal.
// Ratings above 10 are read as a 0-100 score.
func NormalizeRating(r float64) float64 {
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	if r > 10 {
		r /= 10
	}
	if r > 10 {
		r = 10
	}
	return math.Round(r*10) / 10
}

// sampleVideoURL is the placeholder player URL attached to list items until real
// videos are fetched with the details.
func sampleVideoURL(id int) string {
	return "https://www.youtube.com/embed/sample_" + strconv.Itoa(id)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
