// Package server implements the familytree HTTP service.
//
// Routes:
//
//	POST /api/family-tree       render a family document
//	GET  /api/family-tree/{id}  fetch a previously rendered diagram
//	GET  /health                liveness probe
//	GET  /metrics               Prometheus exposition (when enabled)
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/familytree/internal/config"
	"github.com/matzehuels/familytree/pkg/observability"
	"github.com/matzehuels/familytree/pkg/pipeline"
	"github.com/matzehuels/familytree/pkg/storage"
)

// HeaderDiagramID carries the id under which a render was stored.
const HeaderDiagramID = "X-Diagram-ID"

// HeaderCache reports whether the artifact came from the cache.
const HeaderCache = "X-Cache"

// Server wires the pipeline runner and diagram store to HTTP.
type Server struct {
	cfg      *config.Config
	runner   *pipeline.Runner
	store    storage.Store
	metrics  *observability.Metrics
	logger   *log.Logger
	validate *validator.Validate
}

// New creates a server. metrics may be nil to disable /metrics.
func New(cfg *config.Config, runner *pipeline.Runner, store storage.Store, metrics *observability.Metrics, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:      cfg,
		runner:   runner,
		store:    store,
		metrics:  metrics,
		logger:   logger,
		validate: validator.New(),
	}
}

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(observeRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{HeaderDiagramID, HeaderCache, "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)
	if s.metrics != nil && s.cfg.MetricsAddr == "" {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/api/family-tree", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(s.cfg.RequestTimeout))
		r.Post("/", s.createDiagram)
		r.Get("/{id}", s.getDiagram)
	})

	return r
}

// Run serves the API, and metrics on their own listener when configured,
// until ctx is cancelled. Listeners then get ShutdownTimeout to drain.
func (s *Server) Run(ctx context.Context) error {
	servers := []*http.Server{{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if s.metrics != nil && s.cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", s.metrics.Handler())
		servers = append(servers, &http.Server{
			Addr:              s.cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			s.logger.Info("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return stderrors.Join(errs...)
	})
	return g.Wait()
}

// Close releases the runner's cache and the store.
func (s *Server) Close(ctx context.Context) error {
	return stderrors.Join(s.runner.Close(), s.store.Close(ctx))
}
