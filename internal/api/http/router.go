package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-board/internal/api/http/handlers"
	"github.com/spec-kit/employee-board/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Datasets    *handlers.DatasetHandler
	Employees   *handlers.EmployeesHandler
	StatusBoard *handlers.StatusBoardHandler
	Session     *session.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	datasets := app.Group("/datasets", cfg.Session.Handle)
	datasets.Post("", cfg.Datasets.Upload)
	datasets.Get("/current", cfg.Datasets.Current)
	datasets.Delete("/current", cfg.Datasets.Discard)
	datasets.Get("/history", cfg.Datasets.History)

	employees := app.Group("/employees", cfg.Session.Handle)
	employees.Get("/search", cfg.Employees.Search)

	board := app.Group("/status-board", cfg.Session.Handle)
	board.Get("", cfg.StatusBoard.Board)
	board.Get("/periods", cfg.StatusBoard.Periods)
	board.Get("/export", cfg.StatusBoard.Export)
}
