package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

func conds(t *testing.T, filter bson.M) bson.A {
	t.Helper()
	all, ok := filter["$and"].(bson.A)
	require.True(t, ok, "filter must be an $and: %v", filter)
	require.NotEmpty(t, all)
	assert.Equal(t, ActiveFilter(), all[0], "first condition must be the active filter")
	return all[1:]
}

func TestContentFilter(t *testing.T) {
	assert.Empty(t, conds(t, ContentFilter(ContentQuery{})))

	got := conds(t, ContentFilter(ContentQuery{Type: "movie", Genre: "Action", Search: "dark"}))
	require.Len(t, got, 3)
	assert.Equal(t, bson.M{"type": "movie"}, got[0])
	assert.Equal(t, bson.M{"genre": "Action"}, got[1])
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"title": primitive.Regex{Pattern: "dark", Options: "i"}},
		bson.M{"description": primitive.Regex{Pattern: "dark", Options: "i"}},
		bson.M{"genre": primitive.Regex{Pattern: "dark", Options: "i"}},
	}}, got[2])
}

func TestSearchTermIsLiteral(t *testing.T) {
	got := conds(t, SearchFilter("a.b (c)"))
	require.Len(t, got, 1)
	or := got[0].(bson.M)["$or"].(bson.A)
	require.Len(t, or, 4)
	assert.Equal(t, bson.M{"type": primitive.Regex{Pattern: `a\.b \(c\)`, Options: "i"}}, or[3])
}

func TestMoviesFilter(t *testing.T) {
	got := conds(t, MoviesFilter("Drama", 2008, ""))
	assert.Equal(t, bson.A{
		bson.M{"type": models.CatalogTypeMovie},
		bson.M{"genre": "Drama"},
		bson.M{"releaseYear": 2008},
	}, got)

	assert.Len(t, conds(t, MoviesFilter("", 0, "")), 1)
}

func TestSportsFilter(t *testing.T) {
	got := conds(t, SportsFilter("Football", true, "united"))
	require.Len(t, got, 4)
	assert.Equal(t, bson.M{"sportType": "Football"}, got[1])
	assert.Equal(t, bson.M{"isLive": true}, got[2])
	assert.Contains(t, got[3].(bson.M)["$or"], bson.M{"sportType": primitive.Regex{Pattern: "united", Options: "i"}})

	assert.Len(t, conds(t, SportsFilter("", false, "")), 1)
}

func TestNewsAndSerialsFilter(t *testing.T) {
	news := conds(t, NewsFilter("Breaking", ""))
	assert.Equal(t, bson.A{bson.M{"type": models.CatalogTypeNews}, bson.M{"newsCategory": "Breaking"}}, news)

	serials := conds(t, SerialsFilter("", ""))
	assert.Equal(t, bson.A{
		bson.M{"type": bson.M{"$in": bson.A{models.CatalogTypeSerial, models.CatalogTypeShow}}},
	}, serials)
}

func TestFeaturedTrendingFilter(t *testing.T) {
	assert.Equal(t, bson.A{bson.M{"isFeatured": true}}, conds(t, FeaturedFilter()))
	assert.Equal(t, bson.A{bson.M{"isTrending": true}}, conds(t, TrendingFilter()))
}

func TestSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, Sort("", ""))
	assert.Equal(t, bson.D{{Key: "views", Value: 1}}, Sort("views", "ASC"))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, Sort("password", "asc"))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}}, Sort("createdAt", "asc"))
	assert.Equal(t, bson.D{{Key: "title", Value: -1}}, Sort("title", "sideways"))
}

func TestPaging(t *testing.T) {
	tests := []struct {
		page, limit                   int64
		wantPage, wantLimit, wantSkip int64
	}{
		{0, 0, 1, DefaultLimit, 0},
		{3, 10, 3, 10, 20},
		{2, 1000, 2, MaxLimit, MaxLimit},
	}
	for _, tt := range tests {
		p, l, s := Paging(tt.page, tt.limit)
		assert.Equal(t, []int64{tt.wantPage, tt.wantLimit, tt.wantSkip}, []int64{p, l, s})
	}
	assert.Equal(t, int64(3), TotalPages(41, 20))
	assert.Equal(t, int64(0), TotalPages(0, 20))
}

func TestParseID(t *testing.T) {
	_, err := parseID("not-an-id")
	assert.ErrorIs(t, err, &apperrors.ErrValidation{})

	oid := primitive.NewObjectID()
	got, err := parseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)
}

func TestUpdateDocumentDropsImmutableFields(t *testing.T) {
	item := &models.CatalogItem{ID: primitive.NewObjectID(), Title: "T", Views: 9, CreatedAt: time.Now()}
	doc, err := updateDocument(item)
	require.NoError(t, err)
	assert.NotContains(t, doc, "_id")
	assert.NotContains(t, doc, "createdAt")
	assert.NotContains(t, doc, "views")
	assert.Equal(t, "T", doc["title"])
}

func TestSampleCatalogIsValid(t *testing.T) {
	items := SampleCatalog(time.Now())
	types := map[models.CatalogType]bool{}
	for i := range items {
		items[i].Normalize()
		require.NoError(t, items[i].Validate(), items[i].Title)
		types[items[i].Type] = true
	}
	for _, want := range []models.CatalogType{
		models.CatalogTypeMovie, models.CatalogTypeSport, models.CatalogTypeNews,
		models.CatalogTypeSerial, models.CatalogTypeShow,
	} {
		assert.True(t, types[want], "missing sample of type %s", want)
	}
}
