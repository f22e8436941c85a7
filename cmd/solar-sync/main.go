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

	httpapi "github.com/solarsync/solar-sync/internal/api/http"
	"github.com/solarsync/solar-sync/internal/config"
	"github.com/solarsync/solar-sync/internal/forecast"
	"github.com/solarsync/solar-sync/internal/prefs"
	"github.com/solarsync/solar-sync/internal/scheduler"
	"github.com/solarsync/solar-sync/internal/solar"
	"github.com/solarsync/solar-sync/internal/store"
)

func main() {
	// Load configuration (.env handled inside).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Preferences decide which location to track on startup.
	prefStore, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		log.Fatalf("failed to open preferences: %v", err)
	}

	initial := cfg.DefaultLocation
	if p := prefStore.Current(); !p.PreciseLocation && p.SavedLocation != nil {
		initial = forecast.Location{
			ID:          p.SavedLocation.ID,
			Name:        p.SavedLocation.Name,
			Latitude:    p.SavedLocation.Latitude,
			Longitude:   p.SavedLocation.Longitude,
			CountryCode: p.SavedLocation.CountryCode,
		}
	}

	// Shared HTTP client for outbound API calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Upstream clients with resilience (backoff + circuit breaker).
	client := forecast.NewClient(httpClient, cfg.ForecastDays)
	geo := forecast.NewGeocodingClient(httpClient, cfg.GoogleAPIKey)

	// Core service tracking the active location's forecast bundle.
	service := forecast.NewService(memStore, client, geo, initial)

	// Warm the store so the first request has data; the engine runs on its
	// fixed fallbacks if this fails.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := service.Refresh(ctx); err != nil {
			log.Printf("initial forecast refresh failed: %v", err)
		}
	}()

	// Scheduler that keeps the bundle fresh.
	sched := scheduler.New(cfg.RefreshInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "solar-sync",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
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

	// API routes.
	httpapi.RegisterRoutes(app, &httpapi.Deps{
		Forecast:        service,
		Session:         &solar.Session{},
		Prefs:           prefStore,
		Geo:             geo,
		DefaultLocation: cfg.DefaultLocation,
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
