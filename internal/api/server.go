// Package api exposes the layout pipeline and the plan store over HTTP.
//
// The server is a thin layer: requests decode into the same types the CLI
// uses, the pipeline Runner does the work, and domain error codes map onto
// HTTP statuses. All endpoints speak JSON except the floor plan artifact
// routes, which return the rendered bytes directly.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/roomplan/pkg/pipeline"
	"github.com/matzehuels/roomplan/pkg/store"
)

// DefaultTimeout bounds one request end to end, including solve and
// render work.
const DefaultTimeout = 60 * time.Second

// Server handles HTTP requests for solving, scoring, rendering, and plan
// storage.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a server. The store may be nil, which disables the plan
// routes (they respond 503). A nil logger falls back to the default.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(DefaultTimeout))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/score", s.handleScore)
		r.Get("/catalog", s.handleCatalog)
		r.Get("/patterns", s.handlePatterns)
		r.Get("/presets", s.handlePresets)

		r.Route("/plans", func(r chi.Router) {
			r.Post("/", s.handleSavePlan)
			r.Get("/", s.handleListPlans)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetPlan)
				r.Patch("/", s.handleRenamePlan)
				r.Delete("/", s.handleDeletePlan)
				r.Get("/floorplan.svg", s.handlePlanFloorplan)
			})
		})
	})

	return r
}

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("api listening", "addr", addr)
	return srv.ListenAndServe()
}
