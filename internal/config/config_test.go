package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "projectpad", cfg.App.Name)
	require.Equal(t, 5000, cfg.App.Port)
	require.Equal(t, 60, cfg.Auth.JWTExpireMinute)
	require.False(t, cfg.Auth.EnforceProjectAuth)
	require.Equal(t, "projectpad.activity.persist", cfg.RabbitMQ.ActivityQueue)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "8090")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AUTH_ENFORCE_PROJECT_AUTH", "true")
	t.Setenv("MYSQL_DB", "projectpad_test")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8090, cfg.App.Port)
	require.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	require.True(t, cfg.Auth.EnforceProjectAuth)
	require.Equal(t, "projectpad_test", cfg.MySQL.DB)
}

func TestLoadBadEnvValuesFallBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "not-a-number")
	t.Setenv("AUTH_ENFORCE_PROJECT_AUTH", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.App.Port)
	require.False(t, cfg.Auth.EnforceProjectAuth)
}

func TestHTTPAddrAndDSN(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:5000", cfg.HTTPAddr())
	require.Contains(t, cfg.MySQLDSN(), "@tcp(127.0.0.1:3306)/projectpad?")
}
