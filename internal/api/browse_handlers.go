package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/services"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.HomeFeed(r.Context()))
}

func (s *Server) handleBrowseSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Search(r.Context(), r.URL.Query().Get("q")))
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	result := s.catalog.ContentDetails(r.Context(), vars["id"], models.ParseCategory(vars["kind"]), r.URL.Query().Get("format"))
	if !result.Found() {
		writeError(w, http.StatusNotFound, "Content not found")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	kind := models.ParseCategory(mux.Vars(r)["kind"])
	if kind == models.CategoryUnknown {
		writeError(w, http.StatusNotFound, "Unknown category")
		return
	}
	q := r.URL.Query()
	result := s.catalog.Browse(r.Context(), kind, services.Filter{
		Search:   q.Get("search"),
		Genre:    q.Get("genre"),
		Year:     queryInt(r, "year", 0),
		Language: q.Get("language"),
	})
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBrowseSports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.SearchSports(r.URL.Query().Get("q")))
}

func (s *Server) handleBrowseMusic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.SearchMusic(r.URL.Query().Get("q")))
}

func (s *Server) handleBrowseNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, s.catalog.SearchNews(r.Context(), q.Get("q"), strings.TrimSpace(q.Get("category"))))
}

func (s *Server) handleTopRated(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.TopRated(r.Context(), queryInt(r, "page", 1)))
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Action(r.Context(), queryInt(r, "page", 1)))
}

func (s *Server) handleMoviesTrending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Trending(r.Context()))
}
