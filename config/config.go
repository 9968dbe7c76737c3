package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Env                string
	BackendURL         string
	BackendTimeout     time.Duration
	DBPath             string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	CORSOrigins        string
	SiteConfigTTL      time.Duration
}

// Load reads .env (if present) and the environment. The caller registers the
// returned config in the service container; there is no package global.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:               GetEnv("PORT", "3000"),
		Env:                GetEnv("ENV", "development"),
		BackendURL:         GetEnv("BACKEND_URL", ""),
		BackendTimeout:     GetDuration("BACKEND_TIMEOUT", 15*time.Second),
		DBPath:             GetEnv("DB_PATH", "./data/quill.db"),
		GoogleClientID:     GetEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: GetEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  GetEnv("GOOGLE_REDIRECT_URL", "postmessage"),
		CORSOrigins:        GetEnv("CORS_ORIGINS", "*"),
		SiteConfigTTL:      GetDuration("SITE_CONFIG_TTL", 5*time.Minute),
	}

	if cfg.BackendURL == "" {
		log.Fatal("BACKEND_URL is required")
	}
	if cfg.GoogleClientID == "" {
		log.Fatal("GOOGLE_CLIENT_ID is required")
	}

	return cfg
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
