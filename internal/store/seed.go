package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

const samplePoster = "https://via.placeholder.com/300x450/%s/ffffff?text=%s"

const sampleStream = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// SampleCatalog returns the documents inserted by the seed command. Match
// and publish dates are relative to now.
func SampleCatalog(now time.Time) []models.CatalogItem {
	return []models.CatalogItem{
		{
			Title:       "Avengers: Endgame",
			Description: "The epic conclusion to the Infinity Saga",
			Type:        models.CatalogTypeMovie,
			Genre:       []string{"Action", "Adventure"},
			Duration:    181,
			ReleaseYear: 2019,
			Rating:      8.4,
			Poster:      fmt.Sprintf(samplePoster, "ff6b6b", "Avengers"),
			StreamURL:   sampleStream,
			IsFeatured:  true,
			IsTrending:  true,
			Cast: []models.CastMember{
				{Name: "Robert Downey Jr.", Role: "Tony Stark / Iron Man"},
				{Name: "Chris Evans", Role: "Steve Rogers / Captain America"},
			},
			Director: "Anthony Russo, Joe Russo",
			Producer: "Kevin Feige",
			Tags:     []string{"Marvel", "Superhero", "Action"},
			Views:    1500000,
		},
		{
			Title:       "Premier League Live",
			Description: "Manchester United vs Liverpool",
			Type:        models.CatalogTypeSport,
			Genre:       []string{"Football"},
			Rating:      9.2,
			Poster:      fmt.Sprintf(samplePoster, "4CAF50", "Football"),
			StreamURL:   sampleStream,
			IsLive:      true,
			IsFeatured:  true,
			SportType:   "Football",
			Teams:       []string{"Manchester United", "Liverpool"},
			Venue:       "Old Trafford",
			MatchDate:   &now,
			Views:       850000,
		},
		{
			Title:        "Breaking News",
			Description:  "Latest world news and updates",
			Type:         models.CatalogTypeNews,
			Genre:        []string{"News"},
			Rating:       7.8,
			Poster:       fmt.Sprintf(samplePoster, "2196F3", "News"),
			StreamURL:    sampleStream,
			NewsCategory: "Breaking",
			Source:       "Sony News",
			PublishDate:  &now,
			Views:        320000,
		},
		{
			Title:         "Stranger Things",
			Description:   "Supernatural thriller series about kids and monsters",
			Type:          models.CatalogTypeSerial,
			Genre:         []string{"Drama", "Horror", "Sci-Fi"},
			Rating:        8.7,
			Poster:        fmt.Sprintf(samplePoster, "9C27B0", "Stranger+Things"),
			StreamURL:     sampleStream,
			IsTrending:    true,
			Season:        4,
			Episode:       9,
			TotalEpisodes: 34,
			Channel:       "Netflix",
			Views:         1200000,
		},
		{
			Title:       "Shark Tank India",
			Description: "Entrepreneurs pitch their businesses to a panel of investors",
			Type:        models.CatalogTypeShow,
			Genre:       []string{"Reality", "Business"},
			Language:    "Hindi",
			Rating:      7.9,
			Poster:      fmt.Sprintf(samplePoster, "00BCD4", "Shark+Tank"),
			StreamURL:   sampleStream,
			Season:      3,
			AirTime:     "21:00",
			Channel:     "Sony TV",
			Views:       540000,
		},
		{
			Title:       "The Dark Knight",
			Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham",
			Type:        models.CatalogTypeMovie,
			Genre:       []string{"Action", "Crime", "Drama"},
			Duration:    152,
			ReleaseYear: 2008,
			Rating:      9.0,
			Poster:      fmt.Sprintf(samplePoster, "333333", "Dark+Knight"),
			StreamURL:   sampleStream,
			Cast: []models.CastMember{
				{Name: "Christian Bale", Role: "Bruce Wayne / Batman"},
				{Name: "Heath Ledger", Role: "Joker"},
			},
			Director: "Christopher Nolan",
			Producer: "Christopher Nolan",
			Tags:     []string{"Batman", "DC", "Superhero"},
			Views:    1200000,
		},
		{
			Title:       "NBA Finals",
			Description: "Lakers vs Celtics Game 7",
			Type:        models.CatalogTypeSport,
			Genre:       []string{"Basketball"},
			Rating:      8.8,
			Poster:      fmt.Sprintf(samplePoster, "FF9800", "NBA"),
			StreamURL:   sampleStream,
			IsLive:      true,
			SportType:   "Basketball",
			Teams:       []string{"Lakers", "Celtics"},
			Venue:       "Staples Center",
			MatchDate:   &now,
			Views:       650000,
		},
	}
}

// Seed replaces the catalog with SampleCatalog and makes sure the sample
// account exists. hash turns the sample password into a stored hash.
func Seed(ctx context.Context, db *DB, hash func(string) (string, error)) error {
	logger := config.GetLogger()

	n, err := db.Contents.Replace(ctx, SampleCatalog(time.Now().UTC()))
	if err != nil {
		return err
	}
	logger.Info().Int("count", n).Msg("Inserted sample content")

	password, err := hash("password123")
	if err != nil {
		return err
	}
	created, err := db.Users.Upsert(ctx, &models.User{
		Username:     "demo_user",
		Email:        "demo@example.com",
		PasswordHash: password,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	logger.Info().Bool("created", created).Str("email", "demo@example.com").Msg("Sample user ready")
	return nil
}
