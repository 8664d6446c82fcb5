package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elouannasse/youshop-client/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "http://localhost:3001", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.NotEmpty(t, cfg.CartPath)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.PostgresURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("YOUSHOP_API_URL", "https://api.example.com")
	t.Setenv("YOUSHOP_API_TIMEOUT", "3s")
	t.Setenv("YOUSHOP_CART_PATH", "/tmp/cart.json")
	t.Setenv("YOUSHOP_REDIS_ADDR", "localhost:6379")

	cfg := config.Load()

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, "/tmp/cart.json", cfg.CartPath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("YOUSHOP_API_TIMEOUT", "soon")

	cfg := config.Load()

	assert.Equal(t, 15*time.Second, cfg.APITimeout)
}
