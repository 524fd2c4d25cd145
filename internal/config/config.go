package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dkruglov/month-advisor/internal/recommend"
)

type AppConfig struct {
	// GeocoderAPIKey switches geocoding to Google when set; Open-Meteo's
	// free endpoint is used otherwise.
	GeocoderAPIKey string

	// DefaultYear is the historical year analyzed when a request does not
	// name one.
	DefaultYear int

	// DefaultTop is how many ranked months a request gets by default.
	DefaultTop int

	// Preferences are the comfort-envelope defaults applied when a request
	// omits the corresponding query parameters.
	Preferences recommend.Preferences

	// PrewarmPlaces are fetched into the cache periodically.
	PrewarmPlaces   []string
	PrewarmInterval time.Duration

	// Observation cache retention.
	StoreMaxEntries int           // max cached (location, year) pairs (0 = unlimited)
	StoreMaxAge     time.Duration // max entry age (0 = unlimited)

	// HTTPTimeout bounds outbound archive/geocoding calls.
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.DefaultYear = getenvInt("DEFAULT_YEAR", time.Now().Year()-1)
	cfg.DefaultTop = getenvInt("DEFAULT_TOP", 3)

	prefs := recommend.DefaultPreferences()
	prefs.TempMinC = getenvFloat("PREF_TEMP_MIN_C", prefs.TempMinC)
	prefs.TempMaxC = getenvFloat("PREF_TEMP_MAX_C", prefs.TempMaxC)
	prefs.DewMinC = getenvFloat("PREF_DEW_MIN_C", prefs.DewMinC)
	prefs.DewMaxC = getenvFloat("PREF_DEW_MAX_C", prefs.DewMaxC)
	prefs.MaxPrecipitationMM = getenvFloat("PREF_MAX_PRECIP_MM", prefs.MaxPrecipitationMM)
	prefs.TempWeight = getenvFloat("PREF_WEIGHT_TEMP", prefs.TempWeight)
	prefs.DewWeight = getenvFloat("PREF_WEIGHT_DEW", prefs.DewWeight)
	prefs.PrecipWeight = getenvFloat("PREF_WEIGHT_PRECIP", prefs.PrecipWeight)
	if prefs.TempMinC > prefs.TempMaxC || prefs.DewMinC > prefs.DewMaxC {
		return nil, fmt.Errorf("preference range bounds must satisfy min <= max")
	}
	if prefs.MaxPrecipitationMM < 0 {
		return nil, fmt.Errorf("PREF_MAX_PRECIP_MM must not be negative")
	}
	cfg.Preferences = prefs

	cfg.PrewarmPlaces = splitList(os.Getenv("PREWARM_PLACES"))

	prewarmStr := getenvDefault("PREWARM_INTERVAL", "6h")
	prewarm, err := time.ParseDuration(prewarmStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PREWARM_INTERVAL: %w", err)
	}
	cfg.PrewarmInterval = prewarm

	cfg.StoreMaxEntries = getenvInt("STORE_MAX_ENTRIES", 64)

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "168h") // historical data ages slowly
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

// splitList splits on ";" because place names may contain commas
// ("Austin, TX").
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
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
