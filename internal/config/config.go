package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Gateway GatewayConfig
	Export  ExportConfig
	Refresh RefreshConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// GatewayConfig points at the records service holding employees, attendance and leaves
type GatewayConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables limiting
	Burst     int
}

// ExportConfig is where downloaded and exported files are saved
type ExportConfig struct {
	BasePath       string
	BaseURL        string
	AttendanceFile string
}

// RefreshConfig controls the periodic reload of all collections
type RefreshConfig struct {
	Interval time.Duration // 0 disables the job
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using environment only", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8081"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	// Gateway configuration
	timeout, err := time.ParseDuration(getEnv("GATEWAY_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GATEWAY_TIMEOUT: %w", err)
	}

	rateLimit, err := strconv.ParseFloat(getEnv("GATEWAY_RATE_LIMIT", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GATEWAY_RATE_LIMIT: %w", err)
	}

	burst, err := strconv.Atoi(getEnv("GATEWAY_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid GATEWAY_BURST: %w", err)
	}

	config.Gateway = GatewayConfig{
		BaseURL:   strings.TrimRight(getEnv("GATEWAY_BASE_URL", ""), "/"),
		Timeout:   timeout,
		RateLimit: rateLimit,
		Burst:     burst,
	}

	// Export configuration
	config.Export = ExportConfig{
		BasePath:       getEnv("EXPORT_BASE_PATH", "./exports"),
		BaseURL:        strings.TrimRight(getEnv("EXPORT_BASE_URL", fmt.Sprintf("http://localhost:%d/exports", appPort)), "/"),
		AttendanceFile: getEnv("EXPORT_ATTENDANCE_FILE", "attendance_records.pdf"),
	}

	// Refresh configuration
	refreshInterval, err := time.ParseDuration(getEnv("REFRESH_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	config.Refresh = RefreshConfig{Interval: refreshInterval}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Gateway.BaseURL == "" {
		return fmt.Errorf("GATEWAY_BASE_URL is required")
	}
	u, err := url.Parse(c.Gateway.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("GATEWAY_BASE_URL must be an absolute http(s) URL")
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("GATEWAY_TIMEOUT must be positive")
	}
	if c.Gateway.RateLimit < 0 {
		return fmt.Errorf("GATEWAY_RATE_LIMIT must not be negative")
	}
	if c.Gateway.RateLimit > 0 && c.Gateway.Burst < 1 {
		return fmt.Errorf("GATEWAY_BURST must be at least 1 when rate limiting is enabled")
	}
	if c.Refresh.Interval < 0 {
		return fmt.Errorf("REFRESH_INTERVAL must not be negative")
	}
	if strings.TrimSpace(c.Export.AttendanceFile) == "" {
		return fmt.Errorf("EXPORT_ATTENDANCE_FILE is required")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c AppConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
