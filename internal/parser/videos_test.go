package parser

import (
	"strings"
	"testing"

	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/testutil"
)

func TestVideoParser(t *testing.T) {
	t.Parallel()
	body := testutil.GenerateTMDBVideosJSON(1, []testutil.VideoOptions{
		{ID: "a", Key: "teaser1", Name: "Teaser", Type: "Teaser"},
		{ID: "b", Key: "vimeo1", Name: "Vimeo Trailer", Type: "Trailer", Site: "Vimeo"},
		{ID: "c", Key: "bts1", Name: "Making of", Type: "Behind the Scenes"},
		{ID: "d", Key: "op1", Name: "Opening", Type: "Opening Credits"},
		{ID: "e", Key: "trailer1", Name: "Official Trailer", Type: "Trailer"},
	})

	tests := []struct {
		name   string
		series bool
		want   []string
	}{
		{"movie", false, []string{"teaser1", "trailer1"}},
		{"series", true, []string{"teaser1", "op1", "trailer1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			videos, err := NewVideoParser(tt.series).Parse(strings.NewReader(body))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(videos) != len(tt.want) {
				t.Fatalf("got %d videos, want %d", len(videos), len(tt.want))
			}
			for i, key := range tt.want {
				if videos[i].Key != key {
					t.Errorf("video %d key = %s, want %s", i, videos[i].Key, key)
				}
			}
			if videos[0].URL != "https://www.youtube.com/embed/teaser1" ||
				videos[0].Thumbnail != "https://img.youtube.com/vi/teaser1/hqdefault.jpg" {
				t.Errorf("unexpected urls: %+v", videos[0])
			}
		})
	}
}

func TestPrimaryTrailer(t *testing.T) {
	t.Parallel()
	teaser := models.Video{Key: "t", Type: "Teaser"}
	trailer := models.Video{Key: "tr", Type: "Trailer"}

	if v, ok := PrimaryTrailer([]models.Video{teaser, trailer}); !ok || v.Key != "tr" {
		t.Errorf("expected the Trailer to win, got %+v", v)
	}
	if v, ok := PrimaryTrailer([]models.Video{teaser}); !ok || v.Key != "t" {
		t.Errorf("expected the first video, got %+v", v)
	}
	if _, ok := PrimaryTrailer(nil); ok {
		t.Error("expected no trailer for empty list")
	}
}
