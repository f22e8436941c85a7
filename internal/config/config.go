package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/solarsync/solar-sync/internal/forecast"
)

type AppConfig struct {
	Port string

	// HTTPTimeout bounds every outbound request to the forecast and
	// geocoding APIs.
	HTTPTimeout time.Duration

	// RefreshInterval controls how often the forecast bundle is refetched.
	RefreshInterval time.Duration

	// ForecastDays is the fetch horizon.
	ForecastDays int

	// In-memory store retention.
	StoreMaxHistory int           // max number of bundles per location (0 = unlimited)
	StoreMaxAge     time.Duration // max age of bundles (0 = unlimited)

	// DefaultLocation is tracked until preferences pick something else.
	DefaultLocation forecast.Location

	// GoogleAPIKey enables reverse geocoding of raw coordinates. Optional.
	GoogleAPIKey string

	// PrefsPath is where user preferences persist.
	PrefsPath string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.PrefsPath = getenvDefault("PREFS_PATH", "./solar-sync-prefs.json")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Refresh interval: default 30 minutes.
	intervalStr := getenvDefault("REFRESH_INTERVAL", "30m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 7)

	// Store retention.
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 48) // roughly 24h at 30-minute intervals

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	cfg.DefaultLocation = forecast.Location{
		Name:      getenvDefault("DEFAULT_LOCATION_NAME", "London, UK"),
		Latitude:  getenvFloat("DEFAULT_LOCATION_LAT", 51.5074),
		Longitude: getenvFloat("DEFAULT_LOCATION_LON", -0.1278),
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
