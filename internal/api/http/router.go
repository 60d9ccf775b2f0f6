package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Directory      *handlers.DirectoryHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("", cfg.Tickets.Create)
	tickets.Get("", cfg.Tickets.List)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Patch("/:id/status", auth.RequireRole(domain.RoleAdmin, domain.RoleSupport), cfg.Tickets.UpdateStatus)
	tickets.Patch("/:id", auth.RequireRole(domain.RoleAdmin, domain.RoleSupport), cfg.Tickets.Update)
	tickets.Post("/:id/comments", cfg.Tickets.AddComment)
	tickets.Get("/:id/comments", cfg.Tickets.ListComments)

	directory := app.Group("", cfg.AuthMiddleware.Handle)
	directory.Get("/sectors", cfg.Directory.ListSectors)
	directory.Post("/sectors", auth.RequireRole(domain.RoleAdmin), cfg.Directory.CreateSector)
	directory.Get("/employees", cfg.Directory.ListEmployees)
	directory.Post("/employees", auth.RequireRole(domain.RoleAdmin), cfg.Directory.CreateEmployee)
}
