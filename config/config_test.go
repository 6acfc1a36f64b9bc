package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-minutes/config"
)

func TestFromViperDefaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.HTTPServer.Port)
	assert.Equal(t, "whisper-1", cfg.OpenAI.TranscriptionModel)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.ChatModel)
	assert.Equal(t, 4000, cfg.OpenAI.MaxTokens)
	assert.InDelta(t, 0.3, cfg.OpenAI.Temperature, 1e-9)
	assert.Equal(t, int64(50), cfg.Upload.MaxSizeMB)
	assert.Equal(t, 10*time.Minute, cfg.Confluence.CacheTTL)
	assert.Equal(t, "http://localhost:5173", cfg.CORS.AllowedOrigin)
	assert.Empty(t, cfg.HTTPServer.TrustedProxies)
	assert.Equal(t, 30*time.Second, cfg.Confluence.Timeout)
}

func TestFromViperEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("FRONTEND_URL", "https://app.example.com")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CONFLUENCE_BASE_URL", "https://acme.atlassian.net/")
	t.Setenv("CONFLUENCE_EMAIL", "me@acme.io")
	t.Setenv("CONFLUENCE_API_TOKEN", "tok")
	t.Setenv("CONFLUENCE_SPACE_KEY", "DEV")

	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.HTTPServer.Port)
	assert.Equal(t, "https://app.example.com", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "https://acme.atlassian.net", cfg.Confluence.BaseURL)
	assert.Equal(t, "DEV", cfg.Confluence.SpaceKey)
	assert.True(t, cfg.Confluence.IsConfigured())
	assert.Empty(t, cfg.Confluence.MissingVariables())
}

func TestFromViperYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
confluence:
  base_url: https://wiki.internal
  space_key: OPS
  timeout: 5s
http_server:
  trusted_proxies:
    - 10.0.0.0/8
    - 127.0.0.1
upload:
  max_size_mb: 10
`)))

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://wiki.internal", cfg.Confluence.BaseURL)
	assert.Equal(t, int64(10), cfg.Upload.MaxSizeMB)
	assert.Equal(t, 5*time.Second, cfg.Confluence.Timeout)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.HTTPServer.TrustedProxies)
	assert.Equal(t,
		[]string{config.EnvConfluenceEmail, config.EnvConfluenceAPIToken},
		cfg.Confluence.MissingVariables(),
	)
}

func TestMissingVariables(t *testing.T) {
	t.Run("All Missing", func(t *testing.T) {
		got := config.ConfluenceConfig{}.MissingVariables()
		assert.Equal(t, []string{
			"CONFLUENCE_BASE_URL",
			"CONFLUENCE_EMAIL",
			"CONFLUENCE_API_TOKEN",
			"CONFLUENCE_SPACE_KEY",
		}, got)
	})

	t.Run("Only Token Missing", func(t *testing.T) {
		got := config.ConfluenceConfig{BaseURL: "x", Email: "y", SpaceKey: "z", APIToken: "  "}.MissingVariables()
		assert.Equal(t, []string{"CONFLUENCE_API_TOKEN"}, got)
	})
}

func TestFromViperValidation(t *testing.T) {
	v := viper.New()
	v.Set("upload.max_size_mb", -1)
	_, err := config.FromViper(v)
	assert.Error(t, err)
}
