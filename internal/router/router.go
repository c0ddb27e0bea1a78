package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/takasapp/takas-admin-api/internal/config"
	"github.com/takasapp/takas-admin-api/internal/handler"
	"github.com/takasapp/takas-admin-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	DashboardHandler    *handler.DashboardHandler
	UserHandler         *handler.UserHandler
	ListingHandler      *handler.ListingHandler
	OfferHandler        *handler.OfferHandler
	ChatHandler         *handler.ChatHandler
	NotificationHandler *handler.NotificationHandler
	ReportHandler       *handler.ReportHandler
	BannerHandler       *handler.BannerHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	// Common v1 group for health & headers
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	admin := app.Group("/api/admin")

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(admin.Group("/dashboard"))
	}
	if deps.UserHandler != nil {
		deps.UserHandler.Register(admin.Group("/users"))
	}
	if deps.ListingHandler != nil {
		deps.ListingHandler.Register(admin.Group("/listings"))
	}
	if deps.OfferHandler != nil {
		deps.OfferHandler.Register(admin.Group("/offers"))
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.Register(admin.Group("/chats"))
	}
	if deps.NotificationHandler != nil {
		deps.NotificationHandler.Register(admin.Group("/notifications"))
	}
	if deps.ReportHandler != nil {
		deps.ReportHandler.Register(admin.Group("/reports"))
	}
	if deps.BannerHandler != nil {
		deps.BannerHandler.Register(admin.Group("/banners"))
	}
}
