// Package server exposes enumeration results over HTTP.
//
// The API is read-only and deterministic: the table for a genus is computed
// on first request, cached, and served unchanged afterwards. Endpoints:
//
//	GET /healthz                          liveness probe
//	GET /version                          build information
//	GET /api/v1/enumerations/{genus}      record table (JSON, ?format=text for the plain table)
//	GET /api/v1/words/{word}/dt           DT code of one word
//	GET /api/v1/words/{word}/diagram      interlacement diagram (?format=svg|png|dot)
//	GET /api/v1/runs                      catalog summaries (requires a catalog store)
//	GET /api/v1/runs/{id}                 one stored run
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/braidkit/braidkit/pkg/cache"
	"github.com/braidkit/braidkit/pkg/catalog"
	"github.com/braidkit/braidkit/pkg/config"
)

// Options configures a Server.
type Options struct {
	// Config carries the listen address and the genus cap.
	Config config.ServerConfig

	// Cache stores computed tables and rendered diagrams. Nil disables
	// caching (a NullCache is used).
	Cache cache.Cache

	// Keyer derives cache keys. Nil uses the default keyer.
	Keyer cache.Keyer

	// Store serves the /runs endpoints. Nil disables them (404).
	Store catalog.Store

	// Logger receives request logs. Nil discards them.
	Logger *log.Logger
}

// Server is the braidkit HTTP API.
type Server struct {
	cfg    config.ServerConfig
	cache  cache.Cache
	keyer  cache.Keyer
	store  catalog.Store
	logger *log.Logger
	router chi.Router
}

// New assembles a server with its routes.
func New(opts Options) *Server {
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Config.MaxGenus <= 0 {
		opts.Config.MaxGenus = config.Default().Server.MaxGenus
	}

	s := &Server{
		cfg:    opts.Config,
		cache:  opts.Cache,
		keyer:  opts.Keyer,
		store:  opts.Store,
		logger: opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/enumerations/{genus}", s.handleEnumeration)
		r.Get("/words/{word}/dt", s.handleDT)
		r.Get("/words/{word}/diagram", s.handleDiagram)
		if s.store != nil {
			r.Get("/runs", s.handleListRuns)
			r.Get("/runs/{id}", s.handleGetRun)
		}
	})
	s.router = r
	return s
}

// Router returns the HTTP handler, for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
