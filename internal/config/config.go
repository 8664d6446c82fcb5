package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/elouannasse/youshop-client/internal/persist"
)

type Config struct {
	APIBaseURL string
	APITimeout time.Duration

	// CartPath is the local JSON slot the cart persists to.
	CartPath string

	// RedisAddr and PostgresURL select the shared persisters when set;
	// empty means the file persister is used.
	RedisAddr   string
	PostgresURL string
}

func Load() Config {
	return Config{
		APIBaseURL:  getEnv("YOUSHOP_API_URL", "http://localhost:3001"),
		APITimeout:  getDuration("YOUSHOP_API_TIMEOUT", 15*time.Second),
		CartPath:    getEnv("YOUSHOP_CART_PATH", defaultCartPath()),
		RedisAddr:   getEnv("YOUSHOP_REDIS_ADDR", ""),
		PostgresURL: getEnv("YOUSHOP_POSTGRES_URL", ""),
	}
}

func defaultCartPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "youshop", persist.DefaultStorageName)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
