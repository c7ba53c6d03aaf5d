package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string        // Empty disables auth (development)
	CacheTTL  time.Duration // 0 disables the issue-fetch cache
	RateLimit int           // Requests per minute per IP
}

// Load reads configuration from the environment with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/issues/issues.db"
	}

	cacheTTL := 5 * time.Minute
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cacheTTL = time.Duration(seconds) * time.Second
		}
	}

	rateLimit := 120
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			rateLimit = limit
		}
	}

	return &Config{
		Port:      port,
		DBPath:    dbPath,
		JWTSecret: os.Getenv("JWT_SECRET"),
		CacheTTL:  cacheTTL,
		RateLimit: rateLimit,
	}
}
