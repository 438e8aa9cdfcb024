// Package server exposes the classification engine over HTTP: upload a
// CSV or Excel file, review per-column classifications, select columns,
// and download the cleaned CSV.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sells-group/colsense/internal/classify"
	"github.com/sells-group/colsense/internal/config"
	"github.com/sells-group/colsense/internal/session"
	"github.com/sells-group/colsense/internal/store"
)

// Enhancer is the optional AI judgment pass over local results.
type Enhancer interface {
	EnhanceAll(ctx context.Context, results []classify.Result) []classify.Result
}

// Server holds the handler dependencies.
type Server struct {
	engine      *classify.Engine
	enhancer    Enhancer
	sessions    *session.Manager
	runs        store.Store
	limits      config.LimitsConfig
	concurrency int
}

// Option configures the server.
type Option func(*Server)

// WithEnhancer enables the AI judgment pass on uploads.
func WithEnhancer(e Enhancer) Option {
	return func(s *Server) { s.enhancer = e }
}

// WithStore persists each upload's classifications as a run.
func WithStore(st store.Store) Option {
	return func(s *Server) { s.runs = st }
}

// WithConcurrency bounds the per-upload classification worker pool.
func WithConcurrency(n int) Option {
	return func(s *Server) { s.concurrency = n }
}

// New creates a Server.
func New(engine *classify.Engine, sessions *session.Manager, limits config.LimitsConfig, opts ...Option) *Server {
	s := &Server{
		engine:      engine,
		sessions:    sessions,
		limits:      limits,
		concurrency: 4,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", s.handleHealth)
	r.Get("/health", s.handleHealth)
	r.Get("/limits", s.handleLimits)
	r.Post("/upload-file", s.handleUpload)
	r.Post("/process-columns", s.handleProcess)
	r.Get("/download/{sessionID}", s.handleDownload)

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
