package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment. It is
// built once at startup and passed down explicitly.
type Config struct {
	ServerPort     string
	MongoURI       string
	MongoDBName    string
	JWTSecret      string
	AllowedOrigins []string
	LoginWindow    time.Duration
	LoginMaxTries  int
}

var defaultOrigins = []string{
	"http://localhost:5000",
	"http://localhost:4200",
	"https://codingninja-task.onrender.com",
	"https://coding-ninja-task-delta.vercel.app",
}

// Load reads .env if present and falls back to defaults for anything unset.
// A missing .env file is not an error; the environment may be set directly.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:    getEnv("MONGO_DB_NAME", "taskManagerDB"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: defaultOrigins,
		LoginWindow:    time.Minute,
		LoginMaxTries:  5,
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	if v := os.Getenv("LOGIN_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LoginWindow = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("LOGIN_MAX_TRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LoginMaxTries = n
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
