package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-minutes/config"
	pkgConfluence "meeting-minutes/pkg/confluence"
	"meeting-minutes/pkg/log"
	"meeting-minutes/pkg/openai"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	location    *time.Location

	// Settings consumed by the domains
	cors       config.CORSConfig
	upload     config.UploadConfig
	openAICfg  config.OpenAIConfig
	confluence config.ConfluenceConfig

	// Outbound clients
	openAI        openai.IOpenAI
	confluenceAPI *pkgConfluence.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Timezone    string

	// TrustedProxies may set X-Forwarded-For; nil trusts no proxy.
	TrustedProxies []string

	CORS       config.CORSConfig
	Upload     config.UploadConfig
	OpenAI     config.OpenAIConfig
	Confluence config.ConfluenceConfig

	// OpenAIClient may be nil when no API key is configured; uploads then fail with 503.
	OpenAIClient openai.IOpenAI
	// ConfluenceClient is always constructed; requests fail when credentials are missing.
	ConfluenceClient *pkgConfluence.Client
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil || cfg.Timezone == "" {
		loc = time.UTC
	}

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		location:      loc,
		cors:          cfg.CORS,
		upload:        cfg.Upload,
		openAICfg:     cfg.OpenAI,
		confluence:    cfg.Confluence,
		openAI:        cfg.OpenAIClient,
		confluenceAPI: cfg.ConfluenceClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.confluenceAPI == nil {
		return errors.New("confluence client is required")
	}
	return nil
}
