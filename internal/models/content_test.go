package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
)

func TestDedupeByID_FirstOccurrenceWins(t *testing.T) {
	items := []Content{
		&Movie{Base: Base{ID: "1", Title: "first"}},
		&Movie{Base: Base{ID: "2", Title: "second"}},
		&Movie{Base: Base{ID: "1", Title: "duplicate"}},
		&Movie{Base: Base{ID: "3", Title: "third"}},
		&Movie{Base: Base{ID: "2", Title: "duplicate"}},
	}

	got := DedupeByID(items)
	if len(got) != 3 {
		t.Fatalf("expected 3 unique items, got %d", len(got))
	}
	wantTitles := []string{"first", "second", "third"}
	for i, c := range got {
		if c.Common().Title != wantTitles[i] {
			t.Errorf("item %d title = %q, want %q", i, c.Common().Title, wantTitles[i])
		}
	}
}

func TestContent_Matches(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		term    string
		want    bool
	}{
		{"title", &Movie{Base: Base{Title: "Inception"}}, "incep", true},
		{"description", &Series{Base: Base{Description: "A crime drama"}}, "crime", true},
		{"miss", &Movie{Base: Base{Title: "Inception"}}, "matrix", false},
		{"sport team", &Sport{Base: Base{Title: "Final"}, Teams: []string{"Real Madrid"}}, "madrid", true},
		{"sport type", &Sport{Base: Base{Title: "Final"}, SportType: "Football"}, "football", true},
		{"music artist", &Music{Base: Base{Title: "Kesariya"}, Artist: "Arijit Singh"}, "arijit", true},
		{"music genre", &Music{Base: Base{Title: "Kesariya", Genre: []string{"Bollywood"}}}, "bolly", true},
		{"movie genre is not searched", &Movie{Base: Base{Title: "X", Genre: []string{"Action"}}}, "action", false},
		{"accented title", &Movie{Base: Base{Title: "Amélie"}}, "amelie", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.Matches(tt.term); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestFoldTerm(t *testing.T) {
	tests := map[string]string{
		"  Inception ": "inception",
		"Amélie":       "amelie",
		"Pokémon":      "pokemon",
		"NAÏVE Café":   "naive cafe",
		"":             "",
	}
	for in, want := range tests {
		if got := FoldTerm(in); got != want {
			t.Errorf("FoldTerm(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContent_CloneIsDeep(t *testing.T) {
	orig := &Sport{
		Base:  Base{ID: "sport_1", Title: "Final", Genre: []string{"Sports"}},
		Teams: []string{"A", "B"},
	}
	cp := orig.Clone().(*Sport)
	cp.Teams[0] = "changed"
	cp.Genre[0] = "changed"
	cp.Title = "changed"

	if orig.Teams[0] != "A" || orig.Genre[0] != "Sports" || orig.Title != "Final" {
		t.Errorf("clone mutated the original: %+v", orig)
	}
}

func TestBase_VideosEncoding(t *testing.T) {
	list, err := json.Marshal(&Movie{Base: Base{ID: "1"}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(list), `"videos"`) {
		t.Errorf("Expected no videos key on a list record, got %s", list)
	}

	detail := &Anime{Base: Base{ID: "2", Videos: []Video{}}, Cast: []string{"A"}}
	clone := detail.Clone().(*Anime)
	if clone.Videos == nil {
		t.Fatal("Expected clone to keep an empty videos slice")
	}
	clone.Cast[0] = "B"
	if detail.Cast[0] != "A" {
		t.Error("Expected anime cast to be copied")
	}
	raw, err := json.Marshal(clone)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"videos":[]`) {
		t.Errorf("Expected an empty videos array on a detail record, got %s", raw)
	}
}

func TestDecodeContent_RoundTrip(t *testing.T) {
	in := &Series{
		Base:     Base{ID: "ser_1", Title: "Scam 1992", Type: CategorySeries, Poster: "p", Rating: 9.3},
		Seasons:  1,
		Episodes: 10,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	out, err := DecodeContent(data)
	if err != nil {
		t.Fatalf("DecodeContent error: %v", err)
	}
	s, ok := out.(*Series)
	if !ok {
		t.Fatalf("expected *Series, got %T", out)
	}
	if s.ID != "ser_1" || s.Seasons != 1 || s.Episodes != 10 || s.Kind() != CategorySeries {
		t.Errorf("unexpected decoded series: %+v", s)
	}
}

func TestDecodeContent_UnknownType(t *testing.T) {
	if _, err := DecodeContent([]byte(`{"id":"x","type":"podcast"}`)); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestResult_Status(t *testing.T) {
	ok := Ok([]int{1})
	if ok.IsDegraded() || !ok.Found() {
		t.Errorf("Ok result flags wrong: %+v", ok)
	}
	fb := Fallback([]int{1})
	if !fb.IsDegraded() || !fb.Found() {
		t.Errorf("Fallback result flags wrong: %+v", fb)
	}
	nf := NotFound[Content]()
	if nf.Found() || nf.Data != nil {
		t.Errorf("NotFound result flags wrong: %+v", nf)
	}
}

func TestCatalogItem_Validate(t *testing.T) {
	item := CatalogItem{Title: "  Avengers  ", Description: "d", Type: CatalogTypeMovie, Genre: []string{"Action"}, Poster: "p", StreamURL: "s"}
	item.Normalize()
	if err := item.Validate(); err != nil {
		t.Fatalf("expected valid item, got %v", err)
	}
	if item.Title != "Avengers" || item.Language != "English" || item.Status != CatalogStatusActive {
		t.Errorf("Normalize did not apply defaults: %+v", item)
	}

	bad := CatalogItem{Type: "anime", Rating: 11, Status: CatalogStatusActive}
	err := bad.Validate()
	var verr *apperrors.ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	want := []string{"title", "description", "type", "genre", "poster", "streamUrl", "rating"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", verr.Fields, want)
	}
	for i := range want {
		if verr.Fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, verr.Fields[i], want[i])
		}
	}
}
