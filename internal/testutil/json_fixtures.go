package testutil

import (
	"encoding/json"
	"fmt"
)

// TMDBItemOptions describes one entry of a generated TMDB list page
type TMDBItemOptions struct {
	ID           int
	Title        string // movies
	Name         string // tv
	Overview     string
	PosterPath   string
	BackdropPath string
	VoteAverage  float64
	Popularity   float64
	ReleaseDate  string
	FirstAirDate string
	GenreIDs     []int
	Language     string
}

type tmdbItemJSON struct {
	ID               int     `json:"id"`
	Title            string  `json:"title,omitempty"`
	Name             string  `json:"name,omitempty"`
	Overview         string  `json:"overview"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	Popularity       float64 `json:"popularity"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	FirstAirDate     string  `json:"first_air_date,omitempty"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GenerateTMDBPageJSON renders a TMDB list response the way /movie/popular,
// /tv/popular, /search/* and /discover/* return it.
func GenerateTMDBPageJSON(page, totalPages int, items []TMDBItemOptions) string {
	results := make([]tmdbItemJSON, 0, len(items))
	for _, it := range items {
		lang := it.Language
		if lang == "" {
			lang = "en"
		}
		genres := it.GenreIDs
		if genres == nil {
			genres = []int{}
		}
		results = append(results, tmdbItemJSON{
			ID:               it.ID,
			Title:            it.Title,
			Name:             it.Name,
			Overview:         it.Overview,
			PosterPath:       nullable(it.PosterPath),
			BackdropPath:     nullable(it.BackdropPath),
			VoteAverage:      it.VoteAverage,
			Popularity:       it.Popularity,
			ReleaseDate:      it.ReleaseDate,
			FirstAirDate:     it.FirstAirDate,
			GenreIDs:         genres,
			OriginalLanguage: lang,
		})
	}
	return mustJSON(map[string]any{
		"page":          page,
		"results":       results,
		"total_pages":   totalPages,
		"total_results": len(results) * totalPages,
	})
}

// MovieItems returns n movie list items with ids start..start+n-1.
func MovieItems(start, n int) []TMDBItemOptions {
	items := make([]TMDBItemOptions, 0, n)
	for i := start; i < start+n; i++ {
		items = append(items, TMDBItemOptions{
			ID:          i,
			Title:       fmt.Sprintf("Movie %d", i),
			Overview:    fmt.Sprintf("Overview of movie %d", i),
			PosterPath:  fmt.Sprintf("/poster%d.jpg", i),
			VoteAverage: 7.5,
			Popularity:  12.5,
			ReleaseDate: "2020-05-01",
			GenreIDs:    []int{28, 12},
		})
	}
	return items
}

// SeriesItems returns n tv list items with ids start..start+n-1.
func SeriesItems(start, n int) []TMDBItemOptions {
	items := make([]TMDBItemOptions, 0, n)
	for i := start; i < start+n; i++ {
		items = append(items, TMDBItemOptions{
			ID:           i,
			Name:         fmt.Sprintf("Show %d", i),
			Overview:     fmt.Sprintf("Overview of show %d", i),
			PosterPath:   fmt.Sprintf("/show%d.jpg", i),
			VoteAverage:  8.1,
			Popularity:   30,
			FirstAirDate: "2019-09-20",
			GenreIDs:     []int{18},
		})
	}
	return items
}

// VideoOptions describes one entry of a generated /videos response
type VideoOptions struct {
	ID   string
	Key  string
	Name string
	Site string // defaults to YouTube
	Type string
}

// GenerateTMDBVideosJSON renders a /movie/{id}/videos or /tv/{id}/videos response.
func GenerateTMDBVideosJSON(id int, videos []VideoOptions) string {
	results := make([]map[string]string, 0, len(videos))
	for _, v := range videos {
		site := v.Site
		if site == "" {
			site = "YouTube"
		}
		results = append(results, map[string]string{
			"id": v.ID, "key": v.Key, "name": v.Name, "site": site, "type": v.Type,
		})
	}
	return mustJSON(map[string]any{"id": id, "results": results})
}

// DetailsOptions describes a generated /movie/{id} or /tv/{id} payload
type DetailsOptions struct {
	ID             int
	Title          string
	Name           string
	Overview       string
	Runtime        int
	EpisodeRunTime []int
	Seasons        int
	Episodes       int
	Tagline        string
	Status         string
	ReleaseDate    string
	FirstAirDate   string
	Cast           []string
	Director       string
}

// GenerateTMDBDetailsJSON renders a details payload with credits appended.
func GenerateTMDBDetailsJSON(d DetailsOptions) string {
	cast := make([]map[string]any, 0, len(d.Cast))
	for i, name := range d.Cast {
		cast = append(cast, map[string]any{"name": name, "character": "Role", "order": i})
	}
	crew := []map[string]string{{"name": "Someone Else", "job": "Producer"}}
	if d.Director != "" {
		crew = append(crew, map[string]string{"name": d.Director, "job": "Director"})
	}
	payload := map[string]any{
		"id":                 d.ID,
		"overview":           d.Overview,
		"poster_path":        "/detail.jpg",
		"backdrop_path":      "/detail_bg.jpg",
		"vote_average":       8.8,
		"popularity":         99.5,
		"genres":             []map[string]any{{"id": 28, "name": "Action"}},
		"original_language":  "en",
		"runtime":            d.Runtime,
		"episode_run_time":   d.EpisodeRunTime,
		"number_of_seasons":  d.Seasons,
		"number_of_episodes": d.Episodes,
		"tagline":            d.Tagline,
		"status":             d.Status,
		"credits":            map[string]any{"cast": cast, "crew": crew},
	}
	if d.Title != "" {
		payload["title"] = d.Title
		payload["release_date"] = d.ReleaseDate
	}
	if d.Name != "" {
		payload["name"] = d.Name
		payload["first_air_date"] = d.FirstAirDate
	}
	return mustJSON(payload)
}

// ArticleOptions describes one NewsAPI article
type ArticleOptions struct {
	Source      string
	Title       string
	Description string
	URL         string
	Image       string
	PublishedAt string
}

// GenerateNewsJSON renders a successful NewsAPI /everything response.
func GenerateNewsJSON(articles []ArticleOptions) string {
	out := make([]map[string]any, 0, len(articles))
	for _, a := range articles {
		out = append(out, map[string]any{
			"source":      map[string]any{"id": nil, "name": a.Source},
			"author":      "Reporter",
			"title":       a.Title,
			"description": nullable(a.Description),
			"url":         a.URL,
			"urlToImage":  nullable(a.Image),
			"publishedAt": a.PublishedAt,
			"content":     nil,
		})
	}
	return mustJSON(map[string]any{"status": "ok", "totalResults": len(out), "articles": out})
}

// GenerateNewsErrorJSON renders a NewsAPI error response.
func GenerateNewsErrorJSON(code, message string) string {
	return mustJSON(map[string]string{"status": "error", "code": code, "message": message})
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
