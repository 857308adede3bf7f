package app

import (
	"os"
	"strconv"
	"time"

	"github.com/authsystem/authd/pkg/jwtx"
)

type Config struct {
	Issuer    string        // Issuer claim for tokens (default: authsystem)
	JWTSecret string        // Required: HS256 signing secret, never logged
	TokenTTL  time.Duration // Token lifetime (default: 24h)

	DatabaseFile string // Path to SQLite database file (default: ./auth.db)

	SMTPHost      string        // Optional: SMTP host; empty disables outbound mail
	SMTPPort      int           // SMTP port (default: 587)
	SMTPUsername  string        // Optional: SMTP auth username
	SMTPPassword  string        // Optional: SMTP auth password
	SMTPFrom      string        // Sender address for the welcome mail
	NotifyTimeout time.Duration // Per-notification delivery timeout (default: 30s)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:    getEnvOrDefault("AUTH_ISSUER", "authsystem"),
		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		TokenTTL:  getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultTokenTTL),

		DatabaseFile: getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:      getEnvOrDefault("SMTP_FROM", "no-reply@authsystem.local"),
		NotifyTimeout: getEnvDurationOrDefault("NOTIFY_TIMEOUT", 30*time.Second),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
