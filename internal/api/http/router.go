package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Accounts     *handlers.AccountsHandler
	Menu         *handlers.MenuHandler
	Reservations *handlers.ReservationsHandler
	Orders       *handlers.OrdersHandler
	Gate         *auth.Gate
}

// RegisterRoutes wires HTTP routes. Every protected group passes through the
// gate exactly once with the strictness its operations need.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	gate := cfg.Gate

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Public browsing.
	app.Get("/menu", cfg.Menu.Catalog)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authenticated := authGroup.Group("", gate.Require(auth.Hierarchical))
	authenticated.Post("/password/change", cfg.Auth.ChangePassword)
	authenticated.Get("/me", cfg.Auth.Me)

	// Customer surfaces: any authenticated account.
	reservations := app.Group("/reservations", gate.Require(auth.Hierarchical))
	reservations.Post("", cfg.Reservations.Create)
	reservations.Get("", cfg.Reservations.ListOwn)
	reservations.Post("/:id/cancel", cfg.Reservations.Cancel)

	orders := app.Group("/orders", gate.Require(auth.Hierarchical))
	orders.Post("", cfg.Orders.Place)
	orders.Get("", cfg.Orders.ListOwn)
	orders.Get("/:id", cfg.Orders.GetOwn)

	// Floor and kitchen surfaces.
	staff := app.Group("/staff", gate.Require(auth.Hierarchical, domain.RoleStaff))
	staff.Get("/reservations", cfg.Reservations.ListForDay)
	staff.Put("/reservations/:id/status", cfg.Reservations.UpdateStatus)
	staff.Get("/orders", cfg.Orders.Queue)
	staff.Put("/orders/:id/status", cfg.Orders.UpdateStatus)
	staff.Get("/orders/:id/history", cfg.Orders.History)

	// Back office.
	admin := app.Group("/admin", gate.Require(auth.Hierarchical, domain.RoleManager))
	admin.Post("/menu/categories", cfg.Menu.CreateCategory)
	admin.Post("/menu/items", cfg.Menu.CreateItem)
	admin.Put("/menu/items/:id", cfg.Menu.UpdateItem)
	admin.Delete("/menu/items/:id", cfg.Menu.DeleteItem)
	admin.Get("/accounts", cfg.Accounts.List)
	admin.Get("/analytics/orders", cfg.Orders.Summary)

	// Changing another account's role uses the stricter rule.
	app.Put("/admin/accounts/:id/role",
		gate.Require(auth.ExactOrAdmin, domain.RoleManager, domain.RoleAdmin),
		cfg.Accounts.ChangeRole)
}
