package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL    string
	Port     string
	NewsURL  string
	NewsKey  string
	MockSeed int64
}

// Load reads configuration from the environment, with .env support for local
// development. PG_URL is the only required variable; the news feed falls back
// to generated headlines when NEWS_URL is unset.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set by the deployment.
	_ = godotenv.Load()

	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		return nil, fmt.Errorf("PG_URL environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	seed := int64(20220103)
	if raw := os.Getenv("MOCK_SEED"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MOCK_SEED must be an integer: %w", err)
		}
		seed = parsed
	}

	return &Config{
		PGURL:    pgURL,
		Port:     port,
		NewsURL:  os.Getenv("NEWS_URL"),
		NewsKey:  os.Getenv("NEWS_KEY"),
		MockSeed: seed,
	}, nil
}
