// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server process needs to start.
type Config struct {
	// HTTP server
	Port        string
	Environment string // development | production

	// Database
	DatabaseURL string
	AutoMigrate bool

	// Auth
	JWTSecret          string
	AccessTokenTTL     time.Duration
	RefreshTokenExpiry time.Duration
	MaxLoginAttempts   int
	LockDuration       time.Duration

	// Display timezone for agenda day and week boundaries.
	Timezone string

	// Logging
	LogLevel string

	// Audit
	AuditCompressThreshold int
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("APP_PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", true),

		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTokenTTL:     getEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenExpiry: getEnvDuration("REFRESH_TOKEN_EXPIRY", 7*24*time.Hour),
		MaxLoginAttempts:   getEnvInt("MAX_LOGIN_ATTEMPTS", 5),
		LockDuration:       getEnvDuration("LOCK_DURATION", 15*time.Minute),

		Timezone: getEnv("APP_TIMEZONE", "America/Sao_Paulo"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		AuditCompressThreshold: getEnvInt("AUDIT_COMPRESS_THRESHOLD", 4096),
	}
}

// Validate checks the configuration for fatal problems.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is required")
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	} else if len(c.JWTSecret) < 32 && c.Environment == "production" {
		problems = append(problems, "JWT_SECRET must be at least 32 bytes in production")
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone %q", c.Timezone))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Location resolves the configured display timezone. Validate has already
// confirmed it parses.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
