package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Meeting minutes specifics
	OpenAI     OpenAIConfig
	Confluence ConfluenceConfig
	Upload     UploadConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port int
	Mode string

	// TrustedProxies lists the proxy CIDRs/IPs allowed to set X-Forwarded-For.
	// Empty means the peer address is always the client IP.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigin string
}

type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	TranscriptionModel string
	ChatModel          string
	Language           string
	MaxTokens          int
	Temperature        float64
	Timeout            time.Duration
}

type ConfluenceConfig struct {
	BaseURL    string
	Email      string
	APIToken   string
	SpaceKey   string
	SortLocale string
	MaxItems   int
	CacheTTL   time.Duration
	Timeout    time.Duration
}

type UploadConfig struct {
	Dir             string
	MaxSizeMB       int64
	RateLimitPerMin int
}

// Environment variable names of the Confluence integration, in reporting order.
const (
	EnvConfluenceBaseURL  = "CONFLUENCE_BASE_URL"
	EnvConfluenceEmail    = "CONFLUENCE_EMAIL"
	EnvConfluenceAPIToken = "CONFLUENCE_API_TOKEN"
	EnvConfluenceSpaceKey = "CONFLUENCE_SPACE_KEY"
)

// MissingVariables lists the environment variable names whose values are unset.
func (c ConfluenceConfig) MissingVariables() []string {
	fields := []struct {
		name  string
		value string
	}{
		{EnvConfluenceBaseURL, c.BaseURL},
		{EnvConfluenceEmail, c.Email},
		{EnvConfluenceAPIToken, c.APIToken},
		{EnvConfluenceSpaceKey, c.SpaceKey},
	}

	missing := []string{}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// IsConfigured reports whether every Confluence setting is present.
func (c ConfluenceConfig) IsConfigured() bool {
	return len(c.MissingVariables()) == 0
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
// Defaults and environment bindings are applied here.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Environment.Timezone = v.GetString("environment.timezone")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigin = v.GetString("cors.allowed_origin")
	if frontendURL := v.GetString("frontend_url"); frontendURL != "" {
		cfg.CORS.AllowedOrigin = frontendURL
	}

	// OpenAI
	cfg.OpenAI.APIKey = v.GetString("openai.api_key")
	if key := v.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	cfg.OpenAI.BaseURL = v.GetString("openai.base_url")
	cfg.OpenAI.TranscriptionModel = v.GetString("openai.transcription_model")
	cfg.OpenAI.ChatModel = v.GetString("openai.chat_model")
	cfg.OpenAI.Language = v.GetString("openai.language")
	cfg.OpenAI.MaxTokens = v.GetInt("openai.max_tokens")
	cfg.OpenAI.Temperature = v.GetFloat64("openai.temperature")
	cfg.OpenAI.Timeout = v.GetDuration("openai.timeout")

	// Confluence
	cfg.Confluence.BaseURL = v.GetString("confluence.base_url")
	cfg.Confluence.Email = v.GetString("confluence.email")
	cfg.Confluence.APIToken = v.GetString("confluence.api_token")
	cfg.Confluence.SpaceKey = v.GetString("confluence.space_key")
	if val := v.GetString(strings.ToLower(EnvConfluenceBaseURL)); val != "" {
		cfg.Confluence.BaseURL = val
	}
	if val := v.GetString(strings.ToLower(EnvConfluenceEmail)); val != "" {
		cfg.Confluence.Email = val
	}
	if val := v.GetString(strings.ToLower(EnvConfluenceAPIToken)); val != "" {
		cfg.Confluence.APIToken = val
	}
	if val := v.GetString(strings.ToLower(EnvConfluenceSpaceKey)); val != "" {
		cfg.Confluence.SpaceKey = val
	}
	cfg.Confluence.BaseURL = strings.TrimRight(cfg.Confluence.BaseURL, "/")
	cfg.Confluence.SortLocale = v.GetString("confluence.sort_locale")
	cfg.Confluence.MaxItems = v.GetInt("confluence.max_items")
	cfg.Confluence.CacheTTL = v.GetDuration("confluence.cache_ttl")
	cfg.Confluence.Timeout = v.GetDuration("confluence.timeout")

	// Upload
	cfg.Upload.Dir = v.GetString("upload.dir")
	cfg.Upload.MaxSizeMB = v.GetInt64("upload.max_size_mb")
	cfg.Upload.RateLimitPerMin = v.GetInt("upload.rate_limit_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("environment.timezone", "Asia/Seoul")
	v.SetDefault("http_server.port", 3001)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origin", "http://localhost:5173")

	// OpenAI defaults
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.transcription_model", "whisper-1")
	v.SetDefault("openai.chat_model", "gpt-4o-mini")
	v.SetDefault("openai.language", "ko")
	v.SetDefault("openai.max_tokens", 4000)
	v.SetDefault("openai.temperature", 0.3)
	v.SetDefault("openai.timeout", "0s") // 0 = rely on request context only

	// Confluence defaults
	v.SetDefault("confluence.sort_locale", "ko")
	v.SetDefault("confluence.max_items", 5000)
	v.SetDefault("confluence.cache_ttl", "10m")
	v.SetDefault("confluence.timeout", "30s")

	// Upload defaults
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_size_mb", 50)
	v.SetDefault("upload.rate_limit_per_min", 30)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload.max_size_mb must be positive")
	}
	if cfg.Confluence.MaxItems <= 0 {
		return fmt.Errorf("confluence.max_items must be positive")
	}
	return nil
}
