// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values, built once at startup and passed
// into the pieces that need it.
type Config struct {
	// Assistant API
	OpenAIAPIKey string
	AssistantID  string
	APIBaseURL   string

	// File locations
	DataDir   string
	OutputDir string

	// Batch behavior
	PollInterval   time.Duration
	RunTimeout     time.Duration
	RetryAttempts  uint64
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present.
func Load() Config {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	return Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		AssistantID:  os.Getenv("ASSISTANT_ID"),
		APIBaseURL:   getEnv("OPENAI_BASE_URL", ""),

		DataDir:   getEnv("HEALTHBATCH_DATA_DIR", "data"),
		OutputDir: getEnv("HEALTHBATCH_OUTPUT_DIR", "outputs"),

		PollInterval:   getDuration("HEALTHBATCH_POLL_INTERVAL", 5*time.Second),
		RunTimeout:     getDuration("HEALTHBATCH_RUN_TIMEOUT", 5*time.Minute),
		RetryAttempts:  getUint("HEALTHBATCH_RETRY_ATTEMPTS", 5),
		RetryBaseDelay: getDuration("HEALTHBATCH_RETRY_BASE_DELAY", 2*time.Second),
		RetryMaxDelay:  getDuration("HEALTHBATCH_RETRY_MAX_DELAY", 60*time.Second),

		LogFile:  getEnv("HEALTHBATCH_LOG_FILE", "/tmp/healthbatch.log"),
		LogLevel: parseLogLevel(getEnv("HEALTHBATCH_LOG_LEVEL", "INFO")),
	}
}

// Validate checks the values required before any processing can start.
// Missing credentials are a fatal configuration error, never a
// per-question one.
func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	if c.AssistantID == "" {
		return errors.New("ASSISTANT_ID is not set")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getUint(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseUint(val, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
