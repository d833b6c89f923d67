// Tests for category.go: Category String(), ParseCategory(), CatalogType() and JSON round trips.
package models

import (
	"encoding/json"
	"testing"
)

func TestCategory_String(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     string
	}{
		{"unknown", CategoryUnknown, "unknown"},
		{"movie", CategoryMovie, "movie"},
		{"series", CategorySeries, "series"},
		{"anime", CategoryAnime, "anime"},
		{"sport", CategorySport, "sport"},
		{"news", CategoryNews, "news"},
		{"music", CategoryMusic, "music"},
		{"invalid high value", Category(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.String(); got != tt.want {
				t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"movie", CategoryMovie},
		{"Movies", CategoryMovie},
		{"tv", CategorySeries},
		{"serial", CategorySeries},
		{"show", CategorySeries},
		{" anime ", CategoryAnime},
		{"sports", CategorySport},
		{"NEWS", CategoryNews},
		{"music", CategoryMusic},
		{"podcast", CategoryUnknown},
		{"", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCategory(tt.input); got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategory_CatalogType(t *testing.T) {
	tests := []struct {
		category Category
		want     CatalogType
	}{
		{CategoryMovie, CatalogTypeMovie},
		{CategorySeries, CatalogTypeSerial},
		{CategorySport, CatalogTypeSport},
		{CategoryNews, CatalogTypeNews},
		{CategoryAnime, ""},
		{CategoryMusic, ""},
	}
	for _, tt := range tests {
		if got := tt.category.CatalogType(); got != tt.want {
			t.Errorf("%v.CatalogType() = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestCategory_JSONInStruct(t *testing.T) {
	type wrapper struct {
		Type Category `json:"type"`
	}

	data, err := json.Marshal(wrapper{Type: CategoryAnime})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"type":"anime"}` {
		t.Errorf("Marshal = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"type":"tv"}`), &w); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if w.Type != CategorySeries {
		t.Errorf("Unmarshal type = %v, want series", w.Type)
	}
}
