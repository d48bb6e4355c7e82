package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_PATH", "drills/")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT_SEC", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.0/8")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "/drills", cfg.BasePath)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 3, cfg.ShutdownTimeoutSec)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.0/8"}, cfg.TrustedProxies)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "BASE_PATH", "APP_NAME", "LOG_FORMAT", "TRACING_ENABLED", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "", cfg.BasePath)
	assert.Equal(t, "querydrills", cfg.AppName)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.TracingEnabled)
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestNormalizeBasePath(t *testing.T) {
	assert.Equal(t, "", normalizeBasePath(""))
	assert.Equal(t, "", normalizeBasePath("/"))
	assert.Equal(t, "/api", normalizeBasePath("api"))
	assert.Equal(t, "/api", normalizeBasePath(" /api/ "))
	assert.Equal(t, "/api/v1", normalizeBasePath("/api/v1"))
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
