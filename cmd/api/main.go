package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"meeting-minutes/config"
	_ "meeting-minutes/docs" // Swagger docs
	"meeting-minutes/internal/httpserver"
	pkgConfluence "meeting-minutes/pkg/confluence"
	"meeting-minutes/pkg/log"
	"meeting-minutes/pkg/openai"
)

// @title       Meeting Minutes API
// @description Meeting audio transcription with OpenAI and publishing to Confluence.
// @version     1
// @host        localhost:3001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Minutes backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. OpenAI client (optional; uploads answer 503 without it)
	var aiClient openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		c, aiErr := openai.New(openai.Config{APIKey: cfg.OpenAI.APIKey, BaseURL: cfg.OpenAI.BaseURL})
		if aiErr != nil {
			logger.Errorf(ctx, "Failed to initialize OpenAI client: %v", aiErr)
			return
		}
		if cfg.OpenAI.Timeout > 0 {
			c = c.WithTimeout(cfg.OpenAI.Timeout)
		}
		aiClient = c
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY is not set")
	}

	// 4. Confluence client
	confluenceClient := pkgConfluence.NewClient(pkgConfluence.Config{
		BaseURL:  cfg.Confluence.BaseURL,
		Email:    cfg.Confluence.Email,
		APIToken: cfg.Confluence.APIToken,
	})
	if cfg.Confluence.Timeout > 0 {
		confluenceClient.WithHTTPClient(&http.Client{Timeout: cfg.Confluence.Timeout})
	}
	logger.Infof(ctx, "Confluence URL: %s", cfg.Confluence.BaseURL)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Timezone:         cfg.Environment.Timezone,
		TrustedProxies:   cfg.HTTPServer.TrustedProxies,
		CORS:             cfg.CORS,
		Upload:           cfg.Upload,
		OpenAI:           cfg.OpenAI,
		Confluence:       cfg.Confluence,
		OpenAIClient:     aiClient,
		ConfluenceClient: confluenceClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
