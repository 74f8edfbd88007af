package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cardcheck/pkg/httpserver"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/requestid"
	"github.com/dmitrymomot/cardcheck/pkg/scanner"
)

// DefaultMaxBatch is the largest number of card numbers accepted by the
// batch endpoint.
const DefaultMaxBatch = 100

// Service exposes card validation and image scanning over HTTP.
type Service struct {
	scanner  *scanner.Scanner
	log      *slog.Logger
	maxBatch int
	checks   []httpserver.Check
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxBatch overrides DefaultMaxBatch.
func WithMaxBatch(n int) Option {
	if n <= 0 {
		panic("WithMaxBatch: n must be > 0")
	}
	return func(s *Service) { s.maxBatch = n }
}

// WithReadinessChecks registers dependencies probed by /health/ready.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(s *Service) { s.checks = append(s.checks, checks...) }
}

// NewService creates the API service. A nil scanner disables the scan
// endpoint.
func NewService(sc *scanner.Scanner, opts ...Option) *Service {
	s := &Service{
		scanner:  sc,
		log:      logger.Discard(),
		maxBatch: DefaultMaxBatch,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("api"))
	return s
}

// Handle returns the router with all endpoints mounted.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(s.log, s.checks...))

	r.Route("/v1/cards", func(r chi.Router) {
		r.Post("/validate", wrap(s.log, s.validate))
		r.Post("/validate/batch", wrap(s.log, s.validateBatch))
		if s.scanner != nil {
			r.Post("/scan", wrap(s.log, s.scan))
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not_found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method_not_allowed"})
	})

	return r
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
