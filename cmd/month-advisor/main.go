package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/dkruglov/month-advisor/internal/api/http"
	"github.com/dkruglov/month-advisor/internal/config"
	"github.com/dkruglov/month-advisor/internal/recommend"
	"github.com/dkruglov/month-advisor/internal/scheduler"
	"github.com/dkruglov/month-advisor/internal/store"
	"github.com/dkruglov/month-advisor/internal/weather"
	"github.com/dkruglov/month-advisor/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound geocoding/archive calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Observation cache with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxEntries, cfg.StoreMaxAge)

	// Open-Meteo geocoding needs no key; Google does.
	var geocoder weather.Geocoder = providers.NewOpenMeteoGeocoder(httpClient)
	if cfg.GeocoderAPIKey != "" {
		geocoder = providers.NewGoogleGeocoder(cfg.GeocoderAPIKey)
	}

	archive := providers.NewOpenMeteoArchive(httpClient)

	// Core service running the geocode -> fetch -> aggregate -> rank pipeline.
	service := recommend.NewService(geocoder, archive, memStore)

	// Scheduler that periodically prewarms the cache.
	sched := scheduler.New(cfg.PrewarmPlaces, cfg.DefaultYear, cfg.PrewarmInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "month-advisor",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "month-advisor",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, httpapi.Defaults{
		Year:  cfg.DefaultYear,
		Top:   cfg.DefaultTop,
		Prefs: cfg.Preferences,
	})

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
