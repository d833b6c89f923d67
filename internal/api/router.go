package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Shuvikm/sonyliv-clone/internal/auth"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
	"github.com/Shuvikm/sonyliv-clone/internal/services"
)

// ContentStore is the catalog document store behind /content
type ContentStore interface {
	List(ctx context.Context, filter bson.M, sort bson.D, page, limit int64) (*models.Page, error)
	Featured(ctx context.Context) ([]models.CatalogItem, error)
	Trending(ctx context.Context) ([]models.CatalogItem, error)
	View(ctx context.Context, id string) (*models.CatalogItem, error)
	Create(ctx context.Context, item *models.CatalogItem) error
	Update(ctx context.Context, id string, item *models.CatalogItem) (*models.CatalogItem, error)
	Delete(ctx context.Context, id string) error
}

// Options configures a Server. Contents and Ping are nil when no database
// is connected; catalog routes then answer 503.
type Options struct {
	Catalog        services.Catalog
	Auth           *auth.Service
	Contents       ContentStore
	Ping           func(ctx context.Context) error
	Limiter        *IPRateLimiter
	TrustedProxies TrustedProxies
	AllowedOrigins []string
}

// Server holds the HTTP handlers
type Server struct {
	catalog  services.Catalog
	auth     *auth.Service
	contents ContentStore
	ping     func(ctx context.Context) error
	limiter  *IPRateLimiter
	proxies  TrustedProxies
	origins  []string
}

func NewServer(opts Options) *Server {
	return &Server{
		catalog:  opts.Catalog,
		auth:     opts.Auth,
		contents: opts.Contents,
		ping:     opts.Ping,
		limiter:  opts.Limiter,
		proxies:  opts.TrustedProxies,
		origins:  opts.AllowedOrigins,
	}
}

// Handler builds the routed handler with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.accessLog)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()

	a := v1.PathPrefix("/auth").Subrouter()
	a.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	a.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	a.Handle("/profile", s.requireToken(http.HandlerFunc(s.handleProfile))).Methods(http.MethodGet)
	a.Handle("/logout", s.requireToken(http.HandlerFunc(s.handleLogout))).Methods(http.MethodPost)

	c := v1.PathPrefix("/content").Subrouter()
	c.HandleFunc("", s.handleListContent).Methods(http.MethodGet)
	c.HandleFunc("/featured", s.handleFeatured).Methods(http.MethodGet)
	c.HandleFunc("/trending", s.handleTrending).Methods(http.MethodGet)
	c.HandleFunc("/movies", s.handleMovies).Methods(http.MethodGet)
	c.HandleFunc("/sports", s.handleSports).Methods(http.MethodGet)
	c.HandleFunc("/news", s.handleNews).Methods(http.MethodGet)
	c.HandleFunc("/serials", s.handleSerials).Methods(http.MethodGet)
	c.HandleFunc("/search/{query}", s.handleSearchContent).Methods(http.MethodGet)
	c.HandleFunc("/{id}", s.handleGetContent).Methods(http.MethodGet)
	c.Handle("", s.requireToken(http.HandlerFunc(s.handleCreateContent))).Methods(http.MethodPost)
	c.Handle("/{id}", s.requireToken(http.HandlerFunc(s.handleUpdateContent))).Methods(http.MethodPut)
	c.Handle("/{id}", s.requireToken(http.HandlerFunc(s.handleDeleteContent))).Methods(http.MethodDelete)

	b := v1.PathPrefix("/browse").Subrouter()
	b.Use(s.requireSession)
	b.HandleFunc("/home", s.handleHome).Methods(http.MethodGet)
	b.HandleFunc("/search", s.handleBrowseSearch).Methods(http.MethodGet)
	b.HandleFunc("/details/{kind}/{id}", s.handleDetails).Methods(http.MethodGet)
	b.HandleFunc("/sports", s.handleBrowseSports).Methods(http.MethodGet)
	b.HandleFunc("/music", s.handleBrowseMusic).Methods(http.MethodGet)
	b.HandleFunc("/news", s.handleBrowseNews).Methods(http.MethodGet)
	b.HandleFunc("/movies/top-rated", s.handleTopRated).Methods(http.MethodGet)
	b.HandleFunc("/movies/action", s.handleAction).Methods(http.MethodGet)
	b.HandleFunc("/movies/trending", s.handleMoviesTrending).Methods(http.MethodGet)
	b.HandleFunc("/{kind}", s.handleBrowse).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})

	var h http.Handler = r
	if s.limiter != nil {
		h = RateLimit(s.limiter)(h)
	}
	h = CORS(s.origins)(h)
	return Recover(h)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	database := "disconnected"
	if s.ping != nil {
		if err := s.ping(r.Context()); err == nil {
			database = "connected"
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": database})
}
