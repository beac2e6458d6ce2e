// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shopsteward/hub/internal/domain/model"
	"github.com/shopsteward/hub/pkg/logger"
)

// defaultMaxBodyBytes bounds POST /api/jobs bodies when no option is given.
const defaultMaxBodyBytes = 1 << 20

// JobService stores and reads jobs.
type JobService interface {
	CreateJob(ctx context.Context, job model.Job) (bool, error)
	GetJob(ctx context.Context, jobNumber string) (model.Job, error)
	ListJobs(ctx context.Context) ([]model.Job, int, error)
}

// KickoffService produces kickoff checklists.
type KickoffService interface {
	KickoffChecklist(ctx context.Context, jobID string) (model.KickoffChecklist, error)
}

// ScenarioService resolves what-if scenarios by name.
type ScenarioService interface {
	Scenario(ctx context.Context, scenarioType string) (model.Scenario, error)
}

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	JobService
	KickoffService
	ScenarioService
}

// Server wires HTTP routes for the business API.
type Server struct {
	router chi.Router

	rootHandler     *RootHandler
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	jobsHandler     *JobsHandler
	kickoffHandler  *KickoffHandler
	scenarioHandler *ScenarioHandler

	allowedOrigins []string
	maxBodyBytes   int64
	log            logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigins sets the CORS origin allow-list. Defaults to "*".
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.allowedOrigins = origins
		}
	}
}

// WithMaxBodyBytes bounds the size of request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithLogger sets the logger used by handlers and middleware.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// NewServer creates a new API server with all handlers and routes.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		allowedOrigins: []string{"*"},
		maxBodyBytes:   defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get().Named("api")
	}

	s.rootHandler = NewRootHandler()
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.jobsHandler = NewJobsHandler(deps, s.log, s.maxBodyBytes)
	s.kickoffHandler = NewKickoffHandler(deps, s.log)
	s.scenarioHandler = NewScenarioHandler(deps, s.log)

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.log))
	r.Use(MetricsMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleMethodNotAllowed)

	r.Get("/", s.rootHandler.HandleRoot)
	r.Get("/healthz", s.healthHandler.HandleHealth)
	r.Get("/metrics", s.healthHandler.HandleMetrics)
	r.Get("/stats", s.statsHandler.HandleStats)

	r.Route("/api", func(r chi.Router) {
		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", s.jobsHandler.HandleCreateJob)
			r.Get("/", s.jobsHandler.HandleListJobs)
			r.Route("/{job_id}", func(r chi.Router) {
				r.Get("/", s.jobsHandler.HandleGetJob)
				r.Get("/kickoff", s.kickoffHandler.HandleGetKickoff)
			})
		})
		r.Get("/scenario/{scenario_type}", s.scenarioHandler.HandleGetScenario)
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router exposes the underlying router so other adapters, such as the API
// docs, can attach their routes.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Code: codeNotFound, Detail: "Not Found"})
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Code: codeMethodNotAllowed, Detail: "Method Not Allowed"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
