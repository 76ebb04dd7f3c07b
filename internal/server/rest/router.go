// Package rest serves an auth backend over the HTTP JSON API the client's
// httpapi package speaks.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/codirector/internal/client/api"
	"github.com/dmitrijs2005/codirector/internal/logging"
)

// Backend is the auth backend being served.
type Backend interface {
	api.AuthAPI
	ValidateToken(token string) error
}

type Handler struct {
	backend Backend
	logger  logging.Logger
}

func NewHandler(b Backend, l logging.Logger) *Handler {
	return &Handler{backend: b, logger: l.With("module", "rest")}
}

// NewRouter mounts the API under /api.
func NewRouter(b Backend, l logging.Logger) chi.Router {
	h := NewHandler(b, l)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.Post("/register", h.register)

			r.Group(func(pr chi.Router) {
				pr.Use(h.requireBearer)
				pr.Get("/me", h.me)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, &api.Error{Code: api.CodeBadRequest, Message: "Not found.", StatusCode: http.StatusNotFound})
	})

	return r
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (h *Handler) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, api.Unauthenticated())
			return
		}
		if err := h.backend.ValidateToken(token); err != nil {
			h.logger.Warn(r.Context(), "rejected bearer token", "error", err)
			writeError(w, api.Unauthenticated())
			return
		}
		next.ServeHTTP(w, r)
	})
}
