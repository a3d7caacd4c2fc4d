package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shag-platform/shag-api/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8082",
			AppEnv:         "development",
			BaseURL:        "https://shag.platform",
			AllowedOrigins: []string{"https://shag.platform"},
		},
		Match: config.MatchConfig{
			GeminiAPIKey:   "test-key",
			GeminiModel:    "gemini-2.5-flash",
			TimeoutSeconds: 20,
		},
		Session: config.SessionConfig{TTLMinutes: 30},
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8082", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "gemini-2.5-flash", cfg.Match.GeminiModel)
	assert.Equal(t, 20, cfg.Match.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Sheets.TimeoutSeconds)
	assert.Equal(t, 30, cfg.Session.TTLMinutes)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
}

func TestLoadRequiresGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("APP_ENV", "development")
	t.Setenv("MATCH_DISABLED", "false")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadAllowsDisabledMatch(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("APP_ENV", "development")
	t.Setenv("MATCH_DISABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Match.Disabled)
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Server.AllowedOrigins = nil
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Session.TTLMinutes = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Server.AppEnv = "production"
	cfg.Sheets.WebhookURL = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Profiling.Enabled = true
	assert.Error(t, cfg.Validate())
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected bool
	}{
		{
			name: "development environment",
			cfg: &config.Config{
				Server: config.ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "debug gin mode",
			cfg: &config.Config{
				Server: config.ServerConfig{GinMode: "debug"},
			},
			expected: true,
		},
		{
			name: "production environment",
			cfg: &config.Config{
				Server: config.ServerConfig{AppEnv: "production", GinMode: "release"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.IsDevelopment())
		})
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{AppEnv: "production"}}
	assert.True(t, cfg.IsProduction())

	cfg = &config.Config{Server: config.ServerConfig{AppEnv: "staging"}}
	assert.False(t, cfg.IsProduction())
}
