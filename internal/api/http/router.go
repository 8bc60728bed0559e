package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ijwiryacu/report-service/internal/api/http/handlers"
	"github.com/ijwiryacu/report-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Content        *handlers.ContentHandler
	Tickets        *handlers.TicketsHandler
	AdminAuth      *handlers.AdminAuthHandler
	AdminTickets   *handlers.AdminTicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Get("/content/landing", cfg.Content.Landing)
	api.Get("/content/categories", cfg.Content.Categories)

	api.Post("/tickets", cfg.Tickets.SubmitTicket)

	admin := api.Group("/admin")
	admin.Post("/login", cfg.AdminAuth.Login)

	protected := admin.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	protected.Post("/logout", cfg.AdminAuth.Logout)
	protected.Get("/session", cfg.AdminAuth.Session)
	protected.Put("/session/view", cfg.AdminAuth.UpdateView)

	protected.Get("/tickets", cfg.AdminTickets.ListTickets)
	protected.Get("/tickets/:id", cfg.AdminTickets.GetTicket)
	protected.Patch("/tickets/:id/status", cfg.AdminTickets.UpdateStatus)
	protected.Post("/tickets/:id/comments", cfg.AdminTickets.AddComment)
	protected.Get("/statistics", cfg.AdminTickets.Statistics)
}
