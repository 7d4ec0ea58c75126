package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents application configuration
type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
	Report    ReportConfig    `json:"report"`
	CORS      CORSConfig      `json:"cors"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port            string        `json:"port"`
	Host            string        `json:"host"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	IdleTimeout     time.Duration `json:"idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	Environment     string        `json:"environment"`
}

// DatabaseConfig represents the record source connection
type DatabaseConfig struct {
	URL            string        `json:"url"`
	MaxConnections int           `json:"max_connections"`
	MaxIdleTime    time.Duration `json:"max_idle_time"`
	QueryTimeout   time.Duration `json:"query_timeout"`
}

// RateLimitConfig throttles document generation per client
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	RedisURL string        `json:"redis_url"`
	Requests int           `json:"requests"`
	Window   time.Duration `json:"window"`
}

// LoggingConfig represents logger configuration
type LoggingConfig struct {
	Level               string `json:"level"`
	Format              string `json:"format"`
	CorrelationIDHeader string `json:"correlation_id_header"`
	ServiceName         string `json:"service_name"`
}

// ReportConfig controls report composition
type ReportConfig struct {
	Timezone       string `json:"timezone"`
	DetailRowLimit int    `json:"detail_row_limit"`
	Title          string `json:"title"`
	Organization   string `json:"organization"`
	ProfilePath    string `json:"profile_path"`
}

// CORSConfig represents CORS configuration
type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// Load loads configuration from the environment, after reading .env if present.
// A report profile named by REPORT_PROFILE overrides the report settings.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			Environment:     getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MaxConnections: getEnvInt("DB_MAX_CONNECTIONS", 10),
			MaxIdleTime:    getEnvDuration("DB_MAX_IDLE_TIME", 30*time.Minute),
			QueryTimeout:   getEnvDuration("DB_QUERY_TIMEOUT", 30*time.Second),
		},
		RateLimit: RateLimitConfig{
			Enabled:  getEnvBool("RATE_LIMIT_ENABLED", false),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Requests: getEnvInt("RATE_LIMIT_REPORTS", 10),
			Window:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Logging: LoggingConfig{
			Level:               getEnv("LOG_LEVEL", "info"),
			Format:              getEnv("LOG_FORMAT", "json"),
			CorrelationIDHeader: getEnv("LOG_CORRELATION_ID_HEADER", "X-Correlation-ID"),
			ServiceName:         getEnv("SERVICE_NAME", "complaint-report"),
		},
		Report: ReportConfig{
			Timezone:       getEnv("REPORT_TIMEZONE", "Asia/Jakarta"),
			DetailRowLimit: getEnvInt("REPORT_DETAIL_ROW_LIMIT", 100),
			Title:          getEnv("REPORT_TITLE", "Laporan Pengaduan Pasien"),
			Organization:   getEnv("REPORT_ORGANIZATION", ""),
			ProfilePath:    getEnv("REPORT_PROFILE", ""),
		},
		CORS: CORSConfig{
			Enabled:          getEnvBool("CORS_ENABLED", true),
			AllowedOrigins:   getEnvSlice("CORS_ALLOWED_ORIGINS", []string{}),
			AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		},
	}

	if config.Report.ProfilePath != "" {
		profile, err := LoadReportProfile(config.Report.ProfilePath)
		if err != nil {
			return nil, err
		}
		profile.Apply(&config.Report)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if c.Report.DetailRowLimit < 1 {
		return fmt.Errorf("report detail row limit must be positive, got %d", c.Report.DetailRowLimit)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when rate limiting is enabled")
		}
		if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate limit requires positive requests and window")
		}
	}

	return nil
}

// Location resolves the report timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown report timezone %q: %w", c.Report.Timezone, err)
	}
	return loc, nil
}

// Address returns the listen address
func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Helper functions for environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration accepts plain seconds or a Go duration string
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return time.Duration(n) * time.Second
		}
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
