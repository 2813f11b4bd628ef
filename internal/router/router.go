package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/shadowmoulic/youtube-dashboard/internal/handler"
	"github.com/shadowmoulic/youtube-dashboard/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Analysis *handler.AnalysisHandler
	Resolve  *handler.ResolveHandler
	Report   *handler.ReportHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus scrape endpoint
	app.Get("/metrics", handler.MetricsHandler())

	// Per-route rate limits sized to upstream quota cost
	analyzeRL := middleware.NewAnalyzeRateLimiter()
	resolveRL := middleware.NewResolveRateLimiter()
	reportRL := middleware.NewReportRateLimiter()

	// API routes
	api := app.Group("/api")

	api.Get("/analyze", h.Analysis.Analyze, analyzeRL.Handler())
	api.Get("/resolve", h.Resolve.Resolve, resolveRL.Handler())
	api.Post("/reports", h.Report.Generate, reportRL.Handler())
}
