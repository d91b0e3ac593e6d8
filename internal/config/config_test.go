package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:        "8080",
		Environment: "development",
		DatabaseURL: "postgres://localhost/festa",
		JWTSecret:   "dev-secret",
		Timezone:    "America/Sao_Paulo",
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "not-a-port"
	assert.Error(t, cfg.Validate())

	cfg.Port = "70000"
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresDatabaseAndSecret(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateShortSecretOnlyFatalInProduction(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = "short"
	assert.NoError(t, cfg.Validate())

	cfg.Environment = "production"
	assert.Error(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.True(t, cfg.AutoMigrate)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := validConfig()
	cfg.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}
