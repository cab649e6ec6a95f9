package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/reel/internal/domain/profile"
	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/domain/session"
	"github.com/rpggio/reel/internal/metrics"
)

// Sessions manages viewer sessions.
type Sessions interface {
	Open(ctx context.Context) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Close(ctx context.Context, id string) error
}

// Config wires the HTTP server's dependencies.
type Config struct {
	Catalog  *project.Catalog
	Profile  profile.Profile
	Sessions Sessions
	// Metrics is optional; nil disables /metrics and request instrumentation.
	Metrics *metrics.Metrics
	// MCP is mounted at /mcp when set.
	MCP    http.Handler
	Logger *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	catalog  *project.Catalog
	profile  profile.Profile
	sessions Sessions
	logger   *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(requestLogger(logger))
	r.Use(SessionMiddleware)

	srv := &Server{
		catalog:  cfg.Catalog,
		profile:  cfg.Profile.Normalized(),
		sessions: cfg.Sessions,
		logger:   logger,
	}

	r.Get("/health", srv.handleHealth)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}
	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
		r.Handle("/mcp/*", cfg.MCP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/views/home", srv.handleHomeView)
		r.Get("/views/featured", srv.handleFeaturedView)
		r.Get("/views/about", srv.handleAboutView)

		r.Get("/projects", srv.handleListProjects)
		r.Get("/projects/{id}", srv.handleGetProject)
		r.Get("/projects/{id}/detail", srv.handleGetDetail)
		r.Get("/featured", srv.handleFeatured)
		r.Get("/categories", srv.handleCategories)
		r.Get("/years", srv.handleYears)

		r.Post("/sessions", srv.handleOpenSession)

		r.Group(func(r chi.Router) {
			r.Use(srv.requireSession)

			r.Delete("/sessions", srv.handleCloseSession)

			r.Get("/gallery", srv.handleGallery)
			r.Put("/gallery/search", srv.handleSearch)
			r.Put("/gallery/category", srv.handleCategory)
			r.Post("/gallery/category/toggle", srv.handleToggleCategory)
			r.Put("/gallery/year", srv.handleYear)
			r.Delete("/gallery/filters", srv.handleClearFilters)
			r.Put("/gallery/selection", srv.handleSelect)
			r.Delete("/gallery/selection", srv.handleCloseDetail)

			r.Get("/carousel", srv.handleCarousel)
			r.Post("/carousel/next", srv.handleCarouselNext)
			r.Post("/carousel/previous", srv.handleCarouselPrevious)
			r.Post("/carousel/goto", srv.handleCarouselGoTo)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
