package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DatabaseURL          string
	HTTPPort             string
	AdminAPIKey          string
	BaseCurrency         string
	RatesURL             string
	RatesRetryMax        int
	RatesRetryBaseDelay  time.Duration
	RateWorkerInterval   time.Duration
	ExportWorkerInterval time.Duration
	SheetsSpreadsheetID  string
	SheetsCredentials    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DatabaseURL:          envOrDefaultWarn("DATABASE_URL", ""),
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		AdminAPIKey:          envOrDefault("ADMIN_API_KEY", ""),
		BaseCurrency:         envOrDefault("BASE_CURRENCY", "EUR"),
		RatesURL:             envOrDefault("RATES_URL", "https://api.frankfurter.dev/v1"),
		RatesRetryMax:        envOrDefaultInt("RATES_RETRY_MAX", 5),
		RatesRetryBaseDelay:  envOrDefaultDuration("RATES_RETRY_BASE_DELAY", 2*time.Second),
		RateWorkerInterval:   envOrDefaultDuration("RATE_WORKER_INTERVAL", 6*time.Hour),
		ExportWorkerInterval: envOrDefaultDuration("EXPORT_WORKER_INTERVAL", 24*time.Hour),
		SheetsSpreadsheetID:  envOrDefault("SHEETS_SPREADSHEET_ID", ""),
		SheetsCredentials:    envOrDefault("SHEETS_CREDENTIALS_JSON", ""),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultWarn(key, defaultVal string) string {
	v := envOrDefault(key, defaultVal)
	if v == "" {
		slog.Warn("required env var not set", "key", key)
	}
	return v
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
