package shared

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings shared by the booking console and the viewer.
type Config struct {
	LogLevel  string
	LogFormat string

	// Empty RedisAddr or NATSURL disables that integration.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	NATSURL       string

	ViewerPort     string
	ResyncInterval time.Duration
	ClearScreen    bool
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(defaultLogLevel string) *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	return &Config{
		LogLevel:  getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		NATSURL:       getEnv("NATS_URL", ""),

		ViewerPort:     getEnv("VIEWER_PORT", DefaultViewerPort),
		ResyncInterval: time.Duration(getEnvInt("VIEWER_RESYNC_SEC", int(DefaultResyncInterval/time.Second))) * time.Second,
		ClearScreen:    getEnv("CLEAR_SCREEN", "true") == "true",
	}
}

// getEnv returns the environment value or the default when unset
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer environment value or the default when unset or malformed
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
