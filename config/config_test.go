package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "taskManagerDB", cfg.MongoDBName)
	assert.Equal(t, time.Minute, cfg.LoginWindow)
	assert.Equal(t, 5, cfg.LoginMaxTries)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:4200")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB_NAME", "other")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("LOGIN_WINDOW_SECONDS", "30")
	t.Setenv("LOGIN_MAX_TRIES", "2")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "other", cfg.MongoDBName)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.LoginWindow)
	assert.Equal(t, 2, cfg.LoginMaxTries)
}

func TestLoadIgnoresBadLimiterValues(t *testing.T) {
	t.Setenv("LOGIN_WINDOW_SECONDS", "not-a-number")
	t.Setenv("LOGIN_MAX_TRIES", "-1")

	cfg := Load()

	assert.Equal(t, time.Minute, cfg.LoginWindow)
	assert.Equal(t, 5, cfg.LoginMaxTries)
}
