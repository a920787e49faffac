package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/health-facility-service/internal/api/http/handlers"
	"github.com/spec-kit/health-facility-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auths          *handlers.AuthsHandler
	Users          *handlers.UsersHandler
	Facilities     *handlers.FacilitiesHandler
	Org            *handlers.OrgHandler
	HealthData     *handlers.HealthDataHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	auths := api.Group("/auths")
	auths.Post("/login", cfg.Auths.Login)
	auths.Post("/refresh-token", cfg.Auths.Refresh)

	protected := api.Group("", cfg.AuthMiddleware.Handle)

	users := protected.Group("/users")
	users.Post("/", cfg.Users.Create)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Patch("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	states := protected.Group("/states")
	states.Post("/", cfg.Org.CreateState)
	states.Get("/", cfg.Org.ListStates)
	states.Get("/:id", cfg.Org.GetState)
	states.Patch("/:id", cfg.Org.UpdateState)
	states.Delete("/:id", cfg.Org.DeleteState)

	districts := protected.Group("/districts")
	districts.Post("/", cfg.Org.CreateDistrict)
	districts.Get("/", cfg.Org.ListDistricts)
	districts.Get("/:id", cfg.Org.GetDistrict)
	districts.Patch("/:id", cfg.Org.UpdateDistrict)
	districts.Delete("/:id", cfg.Org.DeleteDistrict)

	facilities := protected.Group("/facilities")
	facilities.Post("/", cfg.Facilities.Create)
	facilities.Get("/", cfg.Facilities.List)
	facilities.Get("/:id", cfg.Facilities.Get)
	facilities.Patch("/:id", cfg.Facilities.Update)
	facilities.Delete("/:id", cfg.Facilities.Delete)

	departments := protected.Group("/departments")
	departments.Post("/", cfg.Org.CreateDepartment)
	departments.Get("/", cfg.Org.ListDepartments)
	departments.Get("/:id", cfg.Org.GetDepartment)
	departments.Patch("/:id", cfg.Org.UpdateDepartment)
	departments.Delete("/:id", cfg.Org.DeleteDepartment)

	healthData := protected.Group("/health-data")
	healthData.Post("/", cfg.HealthData.Create)
	healthData.Get("/", cfg.HealthData.List)
	healthData.Get("/:id", cfg.HealthData.Get)
	healthData.Patch("/:id", cfg.HealthData.Update)
	healthData.Patch("/:id/status", cfg.HealthData.UpdateStatus)
	healthData.Delete("/:id", cfg.HealthData.Delete)
}
