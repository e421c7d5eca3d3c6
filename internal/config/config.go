// Package config loads server configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DevelopmentJWTSecret is used when JWT_SECRET is unset outside production.
const DevelopmentJWTSecret = "saladbowl-dev-secret-change-me"

// Config holds all configuration for the application.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string
	StaticPath     string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// StoreConfig holds database settings.
type StoreConfig struct {
	Path string
}

// AuthConfig holds token and rate limit settings.
type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
	RateLimit  float64
	RateBurst  int
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// LoadConfig reads configuration with precedence: process environment,
// then the .env file named by ENV_FILE (default .env), then defaults.
// A missing .env file is not an error.
func LoadConfig() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{
		App: AppConfig{
			Environment: strings.ToLower(getEnv("APP_ENV", "development")),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "4000"),
			StaticPath:     os.Getenv("STATIC_PATH"),
			AllowedOrigins: splitList(getEnv("CLIENT_ORIGIN", "http://localhost:5173")),
		},
		Store: StoreConfig{
			Path: getEnv("DB_PATH", "./data/salad.db"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
	}

	var err error
	if cfg.Auth.SessionTTL, err = getDuration("SESSION_TTL", 720*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Server.ReadTimeout, err = getDuration("READ_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = getDuration("WRITE_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.Server.IdleTimeout, err = getDuration("IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}

	rateStr := getEnv("AUTH_RATE_LIMIT", "1")
	if cfg.Auth.RateLimit, err = strconv.ParseFloat(rateStr, 64); err != nil {
		return nil, fmt.Errorf("invalid auth rate limit %q: %w", rateStr, err)
	}
	burstStr := getEnv("AUTH_RATE_BURST", "5")
	if cfg.Auth.RateBurst, err = strconv.Atoi(burstStr); err != nil {
		return nil, fmt.Errorf("invalid auth rate burst %q: %w", burstStr, err)
	}

	if cfg.Auth.JWTSecret == "" && !cfg.IsProduction() {
		cfg.Auth.JWTSecret = DevelopmentJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"test":        true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, test, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if _, err := strconv.ParseUint(c.Server.Port, 10, 16); err != nil {
		return fmt.Errorf("invalid port: %s", c.Server.Port)
	}
	if c.Store.Path == "" {
		return errors.New("DB_PATH cannot be empty")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required in production")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Auth.RateLimit <= 0 || c.Auth.RateBurst < 1 {
		return errors.New("AUTH_RATE_LIMIT and AUTH_RATE_BURST must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", strings.ToLower(key), raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
