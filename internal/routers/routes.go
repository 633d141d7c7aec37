package routers

import (
	"github.com/go-chi/chi/v5"

	"dsatrack/internal/handlers"
	"dsatrack/internal/metrics"
	"dsatrack/internal/middleware"
)

// Handlers bundles everything Routes mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Problems    *handlers.ProblemHandler
	Dashboard   *handlers.DashboardHandler
	Suggestions *handlers.SuggestionHandler
	AI          *handlers.AIHandler
	Analytics   *handlers.AnalyticsHandler
	Health      *handlers.HealthHandler
}

func Routes(r *chi.Mux, jwtSecret string, h Handlers) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", h.Auth.SignupHandler)
		r.Post("/auth/login", h.Auth.LoginHandler)

		// everything below requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(jwtSecret))

			r.Post("/problems", h.Problems.CreateProblemHandler)
			r.Get("/problems", h.Problems.GetProblemsHandler)

			r.Get("/dashboard/stats", h.Dashboard.GetStatsHandler)
			r.Get("/dashboard/recent-activity", h.Dashboard.GetRecentActivityHandler)

			r.Get("/suggestions", h.Suggestions.GetSuggestionsHandler)
			r.Post("/ai/explain", h.AI.ExplainHandler)

			r.Post("/analytics/ab-test", h.Analytics.RecordHandler)
			r.Get("/analytics/ab-test", h.Analytics.ResultsHandler)
		})
	})

	r.Get("/healthz", h.Health.HealthzHandler)
	r.Get("/readyz", h.Health.ReadyzHandler)
	r.Handle("/metrics", metrics.Handler())
}
