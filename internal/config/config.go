package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr   string
	DBPath     string
	JWTSecret  string
	GelfAddr   string
	CORSOrigin string
}

func Load() *Config {
	// Optional .env for local development; deployments set real env vars.
	godotenv.Load()

	return &Config{
		HTTPAddr:   getEnv("NOTABASE_ADDR", ":8080"),
		DBPath:     getEnv("NOTABASE_DB", "notabase.db"),
		JWTSecret:  getEnv("NOTABASE_JWT_SECRET", "notabase-dev-secret-change-me"),
		GelfAddr:   getEnv("NOTABASE_GELF_ADDR", ""),
		CORSOrigin: getEnv("NOTABASE_CORS_ORIGIN", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
