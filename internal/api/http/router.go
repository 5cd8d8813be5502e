package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Pages         *handlers.PagesHandler
	Auth          *handlers.AuthHandler
	AdminUsers    *handlers.AdminUsersHandler
	Employees     *handlers.EmployeesHandler
	Applicants    *handlers.ApplicantsHandler
	Leave         *handlers.LeaveHandler
	Shifts        *handlers.ShiftsHandler
	Calendar      *handlers.CalendarHandler
	Documents     *handlers.DocumentsHandler
	Announcements *handlers.AnnouncementsHandler
	Dashboard     *handlers.DashboardHandler
	Guard         *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The edge guard is installed globally by
// RegisterMiddlewares; the per-route guards here add the finer role checks.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Pages.Home)
	app.Get("/login", cfg.Pages.Login)
	app.Get("/dashboard", cfg.Pages.Dashboard)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.Auth.Me)
	authGroup.Post("/password/change", cfg.Auth.ChangePassword)

	api := app.Group("/api")

	adminUsers := api.Group("/admin/users", cfg.Guard.RequireRole(domain.RoleAdmin))
	adminUsers.Get("/", cfg.AdminUsers.List)
	adminUsers.Post("/", cfg.AdminUsers.Create)
	adminUsers.Put("/:id", cfg.AdminUsers.Update)

	employees := api.Group("/employees")
	employees.Get("/", cfg.Employees.List)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Post("/", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Employees.Create)
	employees.Put("/:id", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Employees.Update)
	employees.Delete("/:id", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Employees.Delete)

	applicants := api.Group("/applicants")
	applicants.Get("/", cfg.Applicants.List)
	applicants.Get("/:id", cfg.Applicants.Get)
	applicants.Post("/", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR, domain.RoleRecruiter), cfg.Applicants.Create)
	applicants.Post("/:id/stage", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR, domain.RoleRecruiter), cfg.Applicants.MoveStage)
	applicants.Put("/:id/notes", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR, domain.RoleRecruiter), cfg.Applicants.UpdateNotes)

	leave := api.Group("/leave")
	leave.Get("/", cfg.Leave.ListMine)
	leave.Get("/pending", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR, domain.RoleManager), cfg.Leave.ListPending)
	leave.Post("/", cfg.Leave.Create)
	// Decision authorization includes the manager-ownership path, so it is
	// resolved in the service rather than by a role guard here.
	leave.Post("/:id/decision", cfg.Leave.Decide)

	shifts := api.Group("/shifts")
	shifts.Get("/", cfg.Shifts.List)
	shifts.Post("/", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR, domain.RoleManager), cfg.Shifts.Create)
	shifts.Put("/:id", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR, domain.RoleManager), cfg.Shifts.Update)
	shifts.Delete("/:id", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR, domain.RoleManager), cfg.Shifts.Delete)

	calendar := api.Group("/calendar/events")
	calendar.Get("/", cfg.Calendar.List)
	calendar.Post("/", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Calendar.Create)
	calendar.Put("/:id", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Calendar.Update)
	calendar.Delete("/:id", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Calendar.Delete)

	documents := api.Group("/documents")
	documents.Get("/", cfg.Documents.List)
	documents.Post("/", cfg.Documents.Create)
	documents.Delete("/:id", cfg.Documents.Delete)

	announcements := api.Group("/announcements")
	announcements.Get("/", cfg.Announcements.List)
	announcements.Post("/", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Announcements.Create)
	announcements.Post("/:id/publish", cfg.Guard.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Announcements.Publish)

	api.Get("/dashboard/kpis", cfg.Dashboard.KPIs)
}
