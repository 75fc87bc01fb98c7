// Package config loads environment-driven configuration for the backend.
// Every external dependency is optional: a missing DATABASE_URL disables
// persistence and missing email credentials disable notifications, so the
// binary always starts.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DatabaseURL is the PostgreSQL connection string. Empty means the
	// backend runs without a store.
	DatabaseURL string
	Email       EmailConfig
}

// EmailConfig holds the SMTP delivery settings. Empty Username or Password
// disables email entirely.
type EmailConfig struct {
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	FromName string
	// NotifyTo receives the internal alert for each submission.
	NotifyTo string
}

// Load reads configuration from the environment, consulting a .env file if
// one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Email: EmailConfig{
			SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort: getEnvAsInt("SMTP_PORT", 587),
			Username: os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASSWORD"),
			FromName: getEnv("EMAIL_FROM_NAME", "HS21 Digital"),
			NotifyTo: getEnv("NOTIFICATION_EMAIL", "hello@hs21digital.com"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
