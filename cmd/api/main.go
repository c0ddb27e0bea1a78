package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/takasapp/takas-admin-api/internal/config"
	"github.com/takasapp/takas-admin-api/internal/handler"
	"github.com/takasapp/takas-admin-api/internal/middleware"
	"github.com/takasapp/takas-admin-api/internal/router"
	"github.com/takasapp/takas-admin-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	mockStore, err := store.New(cfg.MockOptions(), logger)
	if err != nil {
		log.Fatalf("failed to build mock dataset: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	dashboardHandler := handler.NewDashboardHandler(mockStore, logger)
	userHandler := handler.NewUserHandler(mockStore, logger)
	listingHandler := handler.NewListingHandler(mockStore, validate, logger)
	offerHandler := handler.NewOfferHandler(mockStore, logger)
	chatHandler := handler.NewChatHandler(mockStore, logger)
	notificationHandler := handler.NewNotificationHandler(mockStore, logger)
	reportHandler := handler.NewReportHandler(mockStore, validate, logger)
	bannerHandler := handler.NewBannerHandler(mockStore, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		DashboardHandler:    dashboardHandler,
		UserHandler:         userHandler,
		ListingHandler:      listingHandler,
		OfferHandler:        offerHandler,
		ChatHandler:         chatHandler,
		NotificationHandler: notificationHandler,
		ReportHandler:       reportHandler,
		BannerHandler:       bannerHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
