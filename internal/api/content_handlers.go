package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/store"
)

// withContents answers 503 when no database is connected.
func (s *Server) withContents(w http.ResponseWriter, r *http.Request) bool {
	if s.contents == nil {
		writeFailure(w, r, &apperrors.ErrUnavailable{Dependency: "database"}, "")
		return false
	}
	return true
}

// list writes one page under key along with the pagination fields.
func (s *Server) list(w http.ResponseWriter, r *http.Request, key string, filter bson.M, sort bson.D, message string) {
	if !s.withContents(w, r) {
		return
	}
	page, err := s.contents.List(r.Context(), filter, sort,
		int64(queryInt(r, "page", 1)), int64(queryInt(r, "limit", store.DefaultLimit)))
	if err != nil {
		writeFailure(w, r, err, message)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		key:           page.Items,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
		"total":       page.Total,
	})
}

func (s *Server) handleListContent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ContentFilter(store.ContentQuery{
		Type:   q.Get("type"),
		Genre:  q.Get("genre"),
		Search: q.Get("search"),
	})
	s.list(w, r, "content", filter, store.Sort(q.Get("sort"), q.Get("order")), "Failed to fetch content")
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	if !s.withContents(w, r) {
		return
	}
	items, err := s.contents.Featured(r.Context())
	if err != nil {
		writeFailure(w, r, err, "Failed to fetch featured content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"featured": items})
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	if !s.withContents(w, r) {
		return
	}
	items, err := s.contents.Trending(r.Context())
	if err != nil {
		writeFailure(w, r, err, "Failed to fetch trending content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trending": items})
}

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.MoviesFilter(q.Get("genre"), queryInt(r, "year", 0), q.Get("search"))
	s.list(w, r, "movies", filter, store.Sort("releaseYear", "desc"), "Failed to fetch movies")
}

func (s *Server) handleSports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.SportsFilter(q.Get("sportType"), q.Get("isLive") == "true", q.Get("search"))
	s.list(w, r, "sports", filter, store.Sort("matchDate", "desc"), "Failed to fetch sports content")
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.NewsFilter(q.Get("category"), q.Get("search"))
	s.list(w, r, "news", filter, store.Sort("publishDate", "desc"), "Failed to fetch news content")
}

func (s *Server) handleSerials(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.SerialsFilter(q.Get("genre"), q.Get("search"))
	s.list(w, r, "serials", filter, store.Sort("createdAt", "desc"), "Failed to fetch serials")
}

func (s *Server) handleSearchContent(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(mux.Vars(r)["query"])
	s.list(w, r, "results", store.SearchFilter(query), store.Sort("views", "desc"), "Search failed")
}

func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	if !s.withContents(w, r) {
		return
	}
	item, err := s.contents.View(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, r, err, "Failed to fetch content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"content": item})
}

func (s *Server) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	if !s.withContents(w, r) {
		return
	}
	var item models.CatalogItem
	if err := decodeJSON(r, &item); err != nil {
		writeFailure(w, r, err, "Failed to create content")
		return
	}
	if err := s.contents.Create(r.Context(), &item); err != nil {
		writeFailure(w, r, err, "Failed to create content")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"content": item})
}

func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	if !s.withContents(w, r) {
		return
	}
	var item models.CatalogItem
	if err := decodeJSON(r, &item); err != nil {
		writeFailure(w, r, err, "Failed to update content")
		return
	}
	updated, err := s.contents.Update(r.Context(), mux.Vars(r)["id"], &item)
	if err != nil {
		writeFailure(w, r, err, "Failed to update content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"content": updated})
}

func (s *Server) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	if !s.withContents(w, r) {
		return
	}
	if err := s.contents.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeFailure(w, r, err, "Failed to delete content")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Content deleted"})
}
