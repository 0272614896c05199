package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AssetExtensions []string
	CollisionLimit  int
	WorkerCount     int
	SortLocale      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	return &Config{
		AssetExtensions: getEnvList("LOCALE_EXTENSIONS", []string{".json", ".yaml", ".yml", ".po", ".ini", ".properties"}),
		CollisionLimit:  getEnvInt("COLLISION_LIMIT", 1000),
		WorkerCount:     getEnvInt("WORKER_COUNT", 8),
		SortLocale:      getEnv("SORT_LOCALE", "und"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvList parses a comma-separated extension list, normalizing each entry
// to a leading dot.
func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	var items []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		items = append(items, part)
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
