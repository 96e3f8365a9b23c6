package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string        // dev, prod
	HTTPPort    string        // default 8080
	DatabaseURL string        // sqlite path or postgres DSN
	JWTSecret   string        // required
	SubmitDelay time.Duration // simulated upstream latency on booking submit
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:         getEnv("APP_ENV", "dev"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "healthportal.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SubmitDelay: getDuration("SUBMIT_DELAY", 2*time.Second),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
