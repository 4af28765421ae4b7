package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/http/handlers"
	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Complaints     *handlers.ComplaintsHandler
	Dashboard      *handlers.DashboardHandler
	Catalog        *handlers.CatalogHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Post("/logout", cfg.Users.Logout)
	authProtected.Get("/me", cfg.Users.Me)

	catalog := app.Group("/catalog", cfg.AuthMiddleware.Handle)
	catalog.Get("/categories", cfg.Catalog.ListCategories)
	catalog.Get("/zones", cfg.Catalog.ListZones)

	complaints := app.Group("/complaints", cfg.AuthMiddleware.Handle)
	complaints.Post("", auth.RequireRole(domain.RoleCitizen), cfg.Complaints.Create)
	complaints.Get("", cfg.Complaints.List)
	complaints.Get("/:id", cfg.Complaints.Get)
	complaints.Put("/:id/status", auth.RequireRole(domain.RoleOfficer, domain.RoleAdmin), cfg.Complaints.UpdateStatus)
	complaints.Put("/:id/priority", auth.RequireRole(domain.RoleOfficer, domain.RoleAdmin), cfg.Complaints.UpdatePriority)

	dashboard := app.Group("/dashboard", cfg.AuthMiddleware.Handle)
	dashboard.Get("/stats", cfg.Dashboard.Stats)

	internal := app.Group("/internal", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	internal.Get("/metrics", cfg.Health.Metrics)
}
