package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/fallback"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

// TMDBPage is one page of a TMDB list, search, discover or trending response
type TMDBPage struct {
	Page         int        `json:"page"`
	Results      []TMDBItem `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// TMDBItem is a movie or TV entry inside a TMDB list response
type TMDBItem struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	Popularity       float64 `json:"popularity"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	MediaType        string  `json:"media_type"`
}

// TMDBListParser maps TMDB list pages onto Content records of one category
type TMDBListParser struct {
	Kind      models.Category
	Format    string // anime only: "movie" or "tv"
	ImageBase string
}

// NewTMDBListParser creates a list parser for kind. Anime lists pass the
// endpoint format ("movie" or "tv") so records keep their origin.
func NewTMDBListParser(kind models.Category, format, imageBase string) *TMDBListParser {
	return &TMDBListParser{Kind: kind, Format: format, ImageBase: imageBase}
}

// Parse decodes a TMDB page and maps every usable result.
func (p *TMDBListParser) Parse(body io.Reader) ([]models.Content, error) {
	var page TMDBPage
	if err := json.NewDecoder(body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode TMDB page: %w", err)
	}

	items := make([]models.Content, 0, len(page.Results))
	for _, item := range page.Results {
		if item.ID == 0 {
			logger := config.GetLogger()
			logger.Debug().Str("kind", p.Kind.String()).Msg("Skipping TMDB result without id")
			continue
		}
		items = append(items, p.Map(item))
	}
	return items, nil
}

// Map converts one TMDB list item into the parser's category.
func (p *TMDBListParser) Map(item TMDBItem) models.Content {
	base := models.Base{
		ID:          fmt.Sprint(item.ID),
		Description: item.Overview,
		Type:        p.Kind,
		Genre:       GenreNames(item.GenreIDs),
		Poster:      ImageURL(p.ImageBase, PosterSize, item.PosterPath, fallback.PlaceholderImage),
		Backdrop:    ImageURL(p.ImageBase, BackdropSize, item.BackdropPath, fallback.PlaceholderImage),
		Rating:      NormalizeRating(item.VoteAverage),
		Views:       Views(item.Popularity),
		Language:    item.OriginalLanguage,
		VideoURL:    sampleVideoURL(item.ID),
	}

	switch p.Kind {
	case models.CategorySeries:
		base.Title = firstNonEmpty(item.Name, item.Title, "Untitled")
		base.ReleaseYear = ReleaseYear(item.FirstAirDate)
		return &models.Series{Base: base}
	case models.CategoryAnime:
		base.Title = firstNonEmpty(item.Title, item.Name, "Untitled")
		base.ReleaseYear = ReleaseYear(firstNonEmpty(item.ReleaseDate, item.FirstAirDate))
		format := p.Format
		if format == "" {
			format = item.MediaType
		}
		return &models.Anime{Base: base, Format: format}
	default:
		base.Type = models.CategoryMovie
		base.Title = firstNonEmpty(item.Title, item.Name, "Untitled")
		base.ReleaseYear = ReleaseYear(item.ReleaseDate)
		return &models.Movie{Base: base}
	}
}

// TMDBDetails is the payload of /movie/{id} or /tv/{id} with credits appended
type TMDBDetails struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	Name             string      `json:"name"`
	Overview         string      `json:"overview"`
	PosterPath       string      `json:"poster_path"`
	BackdropPath     string      `json:"backdrop_path"`
	VoteAverage      float64     `json:"vote_average"`
	Popularity       float64     `json:"popularity"`
	ReleaseDate      string      `json:"release_date"`
	FirstAirDate     string      `json:"first_air_date"`
	Genres           []TMDBGenre `json:"genres"`
	OriginalLanguage string      `json:"original_language"`
	Runtime          int         `json:"runtime"`
	EpisodeRunTime   []int       `json:"episode_run_time"`
	NumberOfSeasons  int         `json:"number_of_seasons"`
	NumberOfEpisodes int         `json:"number_of_episodes"`
	Tagline          string      `json:"tagline"`
	Status           string      `json:"status"`
	IMDbID           string      `json:"imdb_id"`
	Credits          TMDBCredits `json:"credits"`
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TMDBCredits struct {
	Cast []TMDBCastMember `json:"cast"`
	Crew []TMDBCrewMember `json:"crew"`
}

type TMDBCastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type TMDBCrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// TMDBDetailsParser decodes a details payload
type TMDBDetailsParser struct{}

func NewTMDBDetailsParser() SingleResultParser[TMDBDetails] {
	return &TMDBDetailsParser{}
}

func (p *TMDBDetailsParser) Parse(body io.Reader) (TMDBDetails, error) {
	var d TMDBDetails
	if err := json.NewDecoder(body).Decode(&d); err != nil {
		return TMDBDetails{}, fmt.Errorf("failed to decode TMDB details: %w", err)
	}
	if d.ID == 0 {
		return TMDBDetails{}, errors.New("TMDB details payload has no id")
	}
	return d, nil
}

const maxDetailCast = 5

// Director returns the first crew member with the Director job, or "Unknown".
func (d *TMDBDetails) Director() string {
	for _, c := range d.Credits.Crew {
		if c.Job == "Director" {
			return c.Name
		}
	}
	return "Unknown"
}

// TopCast returns up to five cast names in billing order.
func (d *TMDBDetails) TopCast() []string {
	n := min(len(d.Credits.Cast), maxDetailCast)
	cast := make([]string, 0, n)
	for _, c := range d.Credits.Cast[:n] {
		cast = append(cast, c.Name)
	}
	return cast
}

// Duration is the runtime in minutes, falling back to the first episode run time.
func (d *TMDBDetails) Duration() int {
	if d.Runtime > 0 {
		return d.Runtime
	}
	if len(d.EpisodeRunTime) > 0 {
		return d.EpisodeRunTime[0]
	}
	return 0
}

// Format is "movie" for a /movie/{id} payload and "tv" for a /tv/{id} one.
// Movie payloads carry a title, TV payloads a name.
func (d *TMDBDetails) Format() string {
	if d.Title != "" && d.Name == "" {
		return "movie"
	}
	return "tv"
}

// ToContent assembles the detail record for kind. Movies map to Movie, anime
// to Anime in the payload's format, everything else to Series.
func (d *TMDBDetails) ToContent(kind models.Category, imageBase string) models.Content {
	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, firstNonEmpty(g.Name, GenreName(g.ID)))
	}
	status := firstNonEmpty(d.Status, "Released")
	base := models.Base{
		ID:          fmt.Sprint(d.ID),
		Title:       firstNonEmpty(d.Title, d.Name, "Untitled"),
		Description: d.Overview,
		Type:        kind,
		Genre:       genres,
		Poster:      ImageURL(imageBase, PosterSize, d.PosterPath, fallback.PlaceholderImage),
		Backdrop:    ImageURL(imageBase, BackdropSize, d.BackdropPath, fallback.PlaceholderImage),
		Rating:      NormalizeRating(d.VoteAverage),
		Views:       Views(d.Popularity),
		ReleaseYear: ReleaseYear(firstNonEmpty(d.ReleaseDate, d.FirstAirDate)),
		Language:    d.OriginalLanguage,
	}

	switch kind {
	case models.CategoryMovie:
		return &models.Movie{
			Base:     base,
			IMDbID:   d.IMDbID,
			Cast:     d.TopCast(),
			Director: d.Director(),
			Tagline:  d.Tagline,
			Status:   status,
			Duration: d.Duration(),
		}
	case models.CategoryAnime:
		return &models.Anime{
			Base:     base,
			Format:   d.Format(),
			Seasons:  d.NumberOfSeasons,
			Episodes: d.NumberOfEpisodes,
			Cast:     d.TopCast(),
			Director: d.Director(),
			Tagline:  d.Tagline,
			Status:   status,
			Duration: d.Duration(),
		}
	default:
		base.Type = models.CategorySeries
		return &models.Series{
			Base:     base,
			Seasons:  d.NumberOfSeasons,
			Episodes: d.NumberOfEpisodes,
			Cast:     d.TopCast(),
			Director: d.Director(),
			Tagline:  d.Tagline,
			Status:   status,
			Duration: d.Duration(),
		}
	}
}
