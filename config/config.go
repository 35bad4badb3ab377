package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	DatabasePath  string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmails   []string
	AdminPassword string
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		DatabasePath:  getEnv("DATABASE_PATH", "engage.db"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:      getDuration("TOKEN_TTL_MINUTES", 60),
		AdminEmails:   splitList(getEnv("ADMIN_EMAILS", "admin@engage.local")),
		AdminPassword: getEnv("ADMIN_PASSWORD", "dev-admin-change-me"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getDuration(key string, fallbackMinutes int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallbackMinutes) * time.Minute
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return time.Duration(fallbackMinutes) * time.Minute
	}
	return time.Duration(parsed) * time.Minute
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
