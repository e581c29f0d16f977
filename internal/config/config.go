package config

import (
	"log"
	"os"
	"strings"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr           string
	Timezone       string
	SeedFile       string
	AllowedOrigins []string
	ServerLog      *log.Logger
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	cfg := Config{
		Addr:           envOrDefault("HTTP_ADDR", ":8080"),
		Timezone:       envOrDefault("TIMEZONE", "America/Los_Angeles"),
		SeedFile:       strings.TrimSpace(os.Getenv("SEED_FILE")),
		AllowedOrigins: parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		ServerLog:      log.New(os.Stdout, "[mypetvenues-api] ", log.LstdFlags|log.Lshortfile),
	}

	cfg.ServerLog.Printf("loaded config: addr=%q timezone=%q seedFile=%q", cfg.Addr, cfg.Timezone, cfg.SeedFile)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
