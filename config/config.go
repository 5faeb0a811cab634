package config

import (
	"errors"
	"os"
	"strings"

	"blog-backend/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	DBURL       string
	Port        string
	GinMode     string
	LogLevel    string
	LogFile     string
	CORSOrigins []string
}

var ErrMissingDBURL = errors.New("DB_URL is not set")

// Load lit le fichier .env s'il existe puis l'environnement.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		utils.LogInfo("No .env file loaded, using the system environment")
	}

	cfg := &Config{
		DBURL:       os.Getenv("DB_URL"),
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "release"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     os.Getenv("LOG_FILE"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	if cfg.DBURL == "" {
		return nil, ErrMissingDBURL
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
