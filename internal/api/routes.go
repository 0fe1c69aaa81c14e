package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/doomsday-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health
//	GET  /api/v1/weekday/random
//	GET  /api/v1/weekday/{date}
//	GET  /api/v1/years/{year}/anchors
//	GET  /api/v1/calendar/{year}/{month}?target=D
//	POST /api/v1/guess
//
// Everything under /api/v1 requires X-API-Key when an API key is configured.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		middleware.RealIP,
		middleware.RequestID,
		RequestContextMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg, logger))

		r.Get("/weekday/random", handlers.GetRandomWeekday)
		r.Get("/weekday/{date}", handlers.GetWeekday)
		r.Get("/years/{year}/anchors", handlers.GetYearAnchors)
		r.Get("/calendar/{year}/{month}", handlers.GetMonthCalendar)
		r.Post("/guess", handlers.CheckGuess)
	})

	return r
}
