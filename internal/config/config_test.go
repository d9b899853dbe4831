package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("APP_BASE_URL", "https://fotosexpresspr.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMongo, cfg.Store.Driver)
	assert.Equal(t, "https://fotosexpresspr.com", cfg.App.BaseURL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.ActivationTTL())
	assert.Equal(t, 8, cfg.Auth.PasswordMinLength)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestSeedAllowed(t *testing.T) {
	tests := []struct {
		name    string
		app     AppConfig
		allowed bool
	}{
		{name: "disabled", app: AppConfig{Env: "development"}, allowed: false},
		{name: "enabled in development", app: AppConfig{Env: "development", SeedEnabled: true}, allowed: true},
		{name: "never in production", app: AppConfig{Env: "Production", SeedEnabled: true}, allowed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.app.SeedAllowed())
		})
	}
}
