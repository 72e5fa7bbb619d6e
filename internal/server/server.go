// Package server Wellness
//
// The Wellness service keeps the state of a wellness session (daily tasks, lessons, community posts)
// and serves read-only content catalog.
//
//     Schemes: http
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/wellness-hub/wellness/internal/health"
	"github.com/wellness-hub/wellness/internal/metrics"
	mm "github.com/wellness-hub/wellness/internal/middleware"
	"github.com/wellness-hub/wellness/internal/service"
)

const (
	maxBodySize    = 64 * 1024
	defaultTimeout = 5 * time.Second
)

var log = logrus.WithField("layer", "server").WithField("package", "server")

// Config ...
type Config struct {
	Timeout   time.Duration
	CacheTTL  time.Duration
	RateLimit float64
	RateBurst int
	// Metrics is optional, nil disables /metrics.
	Metrics *metrics.Metrics
	Pingers []health.Pinger
}

type server struct {
	s service.Service
	v *validator.Validate
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, c Config) {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}

	if c.Metrics != nil {
		r.Use(c.Metrics.Middleware)
	}

	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(c.Timeout),
		mm.BodyLimited(maxBodySize),
	)

	srv := server{
		s: s,
		v: validator.New(),
	}

	write := func(next http.Handler) http.Handler { return next }
	if c.RateLimit > 0 {
		write = mm.RateLimited(c.RateLimit, c.RateBurst)
	}

	r.Get("/health", health.Handler(c.Timeout, c.Pingers...))
	if c.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", c.Metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/tasks", srv.listTasks)
		r.Get("/tasks/{id}", srv.getTask)
		r.Get("/lessons", srv.listLessons)
		r.Get("/lessons/{id}", srv.getLesson)
		r.Get("/posts", srv.listPosts)
		r.Get("/posts/{id}", srv.getPost)
		r.Get("/categories", mm.Cached(c.CacheTTL, srv.listCategories))
		r.Get("/categories/{id}", srv.getCategory)
		r.Get("/articles", mm.Cached(c.CacheTTL, srv.listArticles))
		r.Get("/styles", mm.Cached(c.CacheTTL, srv.getStyles))
		r.Get("/home", srv.getHome)

		r.Group(func(r chi.Router) {
			r.Use(write)

			r.Post("/tasks", srv.addTask)
			r.Post("/tasks/{id}/toggle", srv.toggleTask)
			r.Post("/lessons/{id}/complete", srv.completeLesson)
			r.Post("/posts", srv.addPost)
			r.Post("/posts/{id}/like", srv.toggleLike)
			r.Post("/posts/{id}/comments", srv.addComment)
			r.Post("/actions", srv.applyActions)
			r.Post("/session/reset", srv.resetSession)
		})
	})
}
