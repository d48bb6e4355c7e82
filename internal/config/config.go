package config

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig holds settings for the application logger.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables and kept out of the route handlers,
// so handlers can be exercised without binding a socket.
type AppConfig struct {
	AppName            string
	Port               string
	BasePath           string
	TrustedProxies     []string
	ShutdownTimeoutSec int
	MetricsEnabled     bool
	TracingEnabled     bool
	Log                LogConfig
}

// Addr returns the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return ":" + c.Port
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		AppName:            getEnv("APP_NAME", "querydrills"),
		Port:               getEnv("PORT", "8000"),
		BasePath:           normalizeBasePath(getEnv("BASE_PATH", "")),
		TrustedProxies:     getEnvList("TRUSTED_PROXIES"),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		TracingEnabled:     getEnvBool("TRACING_ENABLED", false),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// normalizeBasePath makes the mount prefix either empty or "/segment" without a trailing slash.
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvList splits a comma separated variable, dropping empty items.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
