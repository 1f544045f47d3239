/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the web client
  5. Metrics:    Prometheus request counters and latency histograms

ROUTE GROUPS:
  /api/entries/*      Work entry CRUD
  /api/config/*       Configuration get/put
  /api/calculate      Run both engines + comparison
  /api/holidays       Statutory holiday listing
  /api/scenarios/*    Demo scenarios
  /metrics            Prometheus scrape endpoint

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/warp/payroll-engine/metrics"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(promMetrics)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/entries", func(r chi.Router) {
			r.Get("/", h.ListEntries)
			r.Post("/", h.CreateEntry)
			r.Put("/{id}", h.UpdateEntry)
			r.Delete("/{id}", h.DeleteEntry)
		})

		r.Route("/config", func(r chi.Router) {
			r.Get("/internal", h.GetInternalConfig)
			r.Put("/internal", h.PutInternalConfig)
			r.Get("/legal", h.GetLegalConfig)
			r.Put("/legal", h.PutLegalConfig)
			r.Get("/payment", h.GetPaymentConfig)
			r.Put("/payment", h.PutPaymentConfig)
			r.Get("/payroll", h.GetPayrollConfig)
			r.Put("/payroll", h.PutPayrollConfig)
		})

		r.Post("/calculate", h.Calculate)
		r.Get("/holidays", h.ListHolidays)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// promMetrics records request counts and latency per route pattern.
func promMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = r.URL.Path
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
