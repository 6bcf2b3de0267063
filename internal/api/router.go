// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hawkinslab/hawkins/internal/middleware"
	"github.com/hawkinslab/hawkins/internal/models"
)

// Router wires handlers and middleware into the Chi routing table.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router over the given handler set and middleware
// factories.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
	}
}

// Setup configures all HTTP routes using Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(RequestIDWithLogging())      // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chiMiddleware(middleware.SanitizeQuery))

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting (1000/min) allows frequent monitoring
	// while preventing abuse
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Entity Endpoints
	// ========================
	h := router.handler
	router.entityRoutes(r, "/api/v1/characters", func(r chi.Router) {
		r.Get("/", handleList(h, h.store.Characters))
		r.Get("/random", handleRandom("character", h.store.Characters))
		r.Get("/{id}", handleGet("character", h.store.Characters))
		r.Get("/{id}/quotes", h.CharacterQuotes)
	})
	router.entityRoutes(r, "/api/v1/creatures", func(r chi.Router) {
		r.Get("/", handleList(h, h.store.Creatures))
		r.Get("/random", handleRandom("creature", h.store.Creatures))
		r.Get("/{id}", handleGet("creature", h.store.Creatures))
	})
	router.entityRoutes(r, "/api/v1/episodes", func(r chi.Router) {
		r.Get("/", handleList(h, h.store.Episodes))
		r.Get("/random", handleRandom("episode", h.store.Episodes))
		r.Get("/{id}", handleGet("episode", h.store.Episodes))
	})
	router.entityRoutes(r, "/api/v1/locations", func(r chi.Router) {
		r.Get("/", handleList(h, h.store.Locations))
		r.Get("/random", handleRandom("location", h.store.Locations))
		r.Get("/{id}", handleGet("location", h.store.Locations))
	})
	router.entityRoutes(r, "/api/v1/quotes", func(r chi.Router) {
		r.Get("/", handleList(h, h.store.Quotes))
		r.Get("/random", handleRandom("quote", h.store.Quotes))
		r.Get("/{id}", handleGet("quote", h.store.Quotes))
	})

	// ========================
	// Search Endpoint
	// ========================
	// Stricter rate limit (30/min): every search is a full scan over
	// all enabled collections
	r.Route("/api/v1/search", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitSearch())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", router.handler.Search)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	// Unmatched routes get the same error envelope as handler errors.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// entityRoutes mounts one entity collection's routes with the shared
// middleware stack: default API rate limit, security headers, and
// Prometheus instrumentation.
func (router *Router) entityRoutes(r chi.Router, pattern string, register func(chi.Router)) {
	r.Route(pattern, func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		register(r)
	})
}

// compile-time check that the entity types keep satisfying the record
// capability the generic handlers depend on.
var (
	_ models.Record = models.Character{}
	_ models.Record = models.Creature{}
	_ models.Record = models.Episode{}
	_ models.Record = models.Location{}
	_ models.Record = models.Quote{}
)
