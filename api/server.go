/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Request logging
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/shifts/*     Shift calculation and persistence
  /api/months/*     Monthly summaries
  /api/holidays/*   Holiday calendar
  /api/settings     Payroll configuration

SECURITY NOTE:
  No authentication middleware. This is a single-user tool; all
  endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
// allowedOrigins lists the frontend origins CORS should accept; empty
// means same-origin only.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Shift routes
		r.Route("/shifts", func(r chi.Router) {
			r.Post("/calculate", h.CalculateShifts)
			r.Post("/preview", h.PreviewShifts)
			r.Post("/", h.SaveShifts)
			r.Get("/", h.ListShifts)
			r.Delete("/{id}", h.DeleteShift)
		})

		// Month routes
		r.Route("/months", func(r chi.Router) {
			r.Post("/summary", h.SummarizeMonth)
		})

		// Holiday routes
		r.Route("/holidays", func(r chi.Router) {
			r.Get("/{year}", h.GetHolidays)
		})

		// Settings routes
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Put("/", h.PutSettings)
		})
	})

	return r
}
