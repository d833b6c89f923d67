package fallback

import (
	"strings"
	"testing"

	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

func TestForCategory_NonEmptyAndComplete(t *testing.T) {
	t.Parallel()
	for _, kind := range models.AllCategories {
		t.Run(kind.String(), func(t *testing.T) {
			items := ForCategory(kind)
			if len(items) == 0 {
				t.Fatalf("expected non-empty fallback list for %s", kind)
			}
			for _, c := range items {
				b := c.Common()
				if b.ID == "" || b.Title == "" || b.Poster == "" {
					t.Errorf("incomplete record: %+v", b)
				}
				if c.Kind() != kind {
					t.Errorf("record %s has type %s, want %s", b.ID, c.Kind(), kind)
				}
			}
		})
	}
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestForCategory_ReturnsCopies(t *testing.T) {
	t.Parallel()
	first := Movies()
	first[0].Common().Title = "mutated"
	first[0].Common().Genre[0] = "mutated"

	second := Movies()
	if second[0].Common().Title == "mutated" || second[0].Common().Genre[0] == "mutated" {
		t.Fatal("mutating a returned record leaked into the catalog")
	}
}

func TestForCategory_UniqueIDs(t *testing.T) {
	t.Parallel()
	seen := map[string]string{}
	for _, kind := range models.AllCategories {
		for _, c := range ForCategory(kind) {
			id := c.Common().ID
			if prev, ok := seen[id]; ok {
				t.Errorf("id %s used by both %s and %s", id, prev, kind)
			}
			seen[id] = kind.String()
		}
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		kind    models.Category
		term    string
		wantIDs []string
	}{
		{"movie title", models.CategoryMovie, "INCEPTION", []string{"mov_3"}},
		{"movie description", models.CategoryMovie, "wormhole", []string{"mov_4"}},
		{"sport team", models.CategorySport, "lakers", []string{"sport_3"}},
		{"sport type", models.CategorySport, "cricket", []string{"sport_5", "sport_6"}},
		{"music artist", models.CategoryMusic, "ed sheeran", []string{"mus_7"}},
		{"music genre", models.CategoryMusic, "afrobeats", []string{"mus_9"}},
		{"no match", models.CategorySeries, "zzzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.kind, tt.term)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search(%s, %q) returned %d items, want %d", tt.kind, tt.term, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].Common().ID != id {
					t.Errorf("item %d = %s, want %s", i, got[i].Common().ID, id)
				}
			}
		})
	}
}

func TestSearch_BlankTermReturnsAll(t *testing.T) {
	t.Parallel()
	if got, want := len(Search(models.CategoryAnime, "   ")), len(Anime()); got != want {
		t.Errorf("blank search returned %d items, want %d", got, want)
	}
}

func TestIsLocalID(t *testing.T) {
	t.Parallel()
	tests := map[string]bool{
		"mov_1":     true,
		"ser_4":     true,
		"ani_2":     true,
		"tt0133093": true,
		"sport_9":   true,
		"mus_3":     true,
		"news_0":    true,
		"550":       false,
		"":          false,
	}
	for id, want := range tests {
		if got := IsLocalID(id); got != want {
			t.Errorf("IsLocalID(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	c, ok := Lookup("ser_7")
	if !ok {
		t.Fatal("expected ser_7 to be found")
	}
	s, isSeries := c.(*models.Series)
	if !isSeries {
		t.Fatalf("expected *models.Series, got %T", c)
	}
	if s.Title != "Breaking Bad" || s.Seasons != 5 {
		t.Errorf("unexpected record: %+v", s)
	}

	if _, ok := Lookup("mov_999"); ok {
		t.Error("expected mov_999 to be missing")
	}
}

func TestWithDerivedTrailer(t *testing.T) {
	t.Parallel()
	c, _ := Lookup("mov_1")
	c = WithDerivedTrailer(c)
	videos := c.Common().Videos
	if len(videos) != 1 {
		t.Fatalf("expected one derived video, got %d", len(videos))
	}
	v := videos[0]
	if v.ID != "1" || v.Type != "Trailer" || v.Name != "Official Trailer" {
		t.Errorf("unexpected video metadata: %+v", v)
	}
	if v.URL != "https://www.youtube.com/embed/TcMBFSGVi1c" {
		t.Errorf("url = %s", v.URL)
	}
	if v.Thumbnail != "https://img.youtube.com/vi/TcMBFSGVi1c/hqdefault.jpg" {
		t.Errorf("thumbnail = %s", v.Thumbnail)
	}

	bare := WithDerivedTrailer(&models.Movie{Base: models.Base{ID: "x"}})
	if bare.Common().Videos == nil || len(bare.Common().Videos) != 0 {
		t.Errorf("expected empty non-nil videos for record without url")
	}
}

func TestTrailer(t *testing.T) {
	t.Parallel()
	if !strings.HasSuffix(Trailer(models.CategorySeries), "HhesaQXLuRY") {
		t.Errorf("series trailer = %s", Trailer(models.CategorySeries))
	}
	if Trailer(models.CategoryMusic) != Trailer(models.CategoryMovie) {
		t.Error("categories without a trailer should use the movie trailer")
	}
}

func TestMixedSearch(t *testing.T) {
	t.Parallel()
	items := MixedSearch()
	if len(items) != 3 {
		t.Fatalf("expected 3 mixed items, got %d", len(items))
	}
	kinds := []models.Category{models.CategoryMovie, models.CategorySport, models.CategoryNews}
	for i, k := range kinds {
		if items[i].Kind() != k {
			t.Errorf("item %d kind = %s, want %s", i, items[i].Kind(), k)
		}
	}
}
