package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REPORT_PROFILE", "")
	t.Setenv("REPORT_TIMEZONE", "")
	t.Setenv("REPORT_DETAIL_ROW_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "Asia/Jakarta", cfg.Report.Timezone)
	assert.Equal(t, 100, cfg.Report.DetailRowLimit)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_REPORTS", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "90")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("REPORT_PROFILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 3, cfg.RateLimit.Requests)
	assert.Equal(t, 90*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ReportProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Laporan Mutu\norganization: RSUD Contoh\ndetail_row_limit: 25\n"), 0o600))
	t.Setenv("REPORT_PROFILE", path)
	t.Setenv("REPORT_TIMEZONE", "Asia/Makassar")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Laporan Mutu", cfg.Report.Title)
	assert.Equal(t, "RSUD Contoh", cfg.Report.Organization)
	assert.Equal(t, 25, cfg.Report.DetailRowLimit)
	assert.Equal(t, "Asia/Makassar", cfg.Report.Timezone, "empty profile fields keep env values")
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Setenv("REPORT_PROFILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"zero row limit", func(c *Config) { c.Report.DetailRowLimit = 0 }, true},
		{"unknown timezone", func(c *Config) { c.Report.Timezone = "Mars/Olympus" }, true},
		{"rate limit without window", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.Window = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server:    ServerConfig{Port: "8080"},
				RateLimit: RateLimitConfig{RedisURL: "redis://localhost:6379/0", Requests: 5, Window: time.Minute},
				Report:    ReportConfig{Timezone: "UTC", DetailRowLimit: 100},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
