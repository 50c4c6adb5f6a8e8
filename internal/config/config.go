package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the dealboard pipeline and its source
// adapters. The normalization core itself takes no configuration.
type Config struct {
	DataDir        string
	RatesPath      string
	SelectorsPath  string
	FetchTimeout   time.Duration
	MaxRetries     int
	FetchRate      float64 // storefront requests per second
	AllowedDomains []string
}

// Load reads a .env file when present, then environment variables, applying
// defaults for anything unset.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using system environment")
	}

	return &Config{
		DataDir:        getEnv("DEALBOARD_DATA_DIR", "data"),
		RatesPath:      getEnv("DEALBOARD_RATES_PATH", ""),
		SelectorsPath:  getEnv("DEALBOARD_SELECTORS_PATH", ""),
		FetchTimeout:   getEnvDuration("DEALBOARD_FETCH_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("DEALBOARD_MAX_RETRIES", 3),
		FetchRate:      getEnvFloat("DEALBOARD_FETCH_RATE", 1),
		AllowedDomains: getEnvList("DEALBOARD_ALLOWED_DOMAINS", []string{"store.playstation.com"}),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", val, "default", fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
		slog.Warn("Invalid float in environment, using default", "key", key, "value", val, "default", fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err == nil {
			return d
		}
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", val, "default", fallback)
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
