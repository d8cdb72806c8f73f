package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"movi-ops-console/config"
	_ "movi-ops-console/docs" // Swagger docs
	"movi-ops-console/internal/httpserver"
	"movi-ops-console/pkg/log"
	"movi-ops-console/pkg/speech"
	"movi-ops-console/pkg/transit"
)

// @title       Movi Ops Console API
// @description Conversational front-end for transport operations: intent resolution, confirmation workflow and dashboard reads.
// @version     1
// @host        localhost:8080
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

	logger.Info(ctx, "Starting Movi Ops Console...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Transit backend: %s", cfg.Transit.URL)

	// 3. Transit backend client
	transitClient := transit.NewClient(cfg.Transit.URL, cfg.Transit.Timeout)

	// 4. Speech client (optional)
	var speechClient speech.ISpeech
	if cfg.Speech.Enabled && cfg.Speech.CredentialsPath != "" {
		client, spErr := speech.NewClientFromCredentialsFile(ctx, cfg.Speech.CredentialsPath, cfg.Speech.Language, cfg.Speech.Voice)
		if spErr != nil {
			logger.Warnf(ctx, "Speech synthesis not available (optional): %v", spErr)
		} else {
			logger.Info(ctx, "Speech synthesis initialized")
			speechClient = client
		}
	} else {
		logger.Info(ctx, "Speech synthesis disabled, assistant runs silent")
	}

	// 5. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Transit:     transitClient,
		Speech:      speechClient,
		Assistant:   cfg.Assistant,
		Ops:         cfg.Ops,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}

	logger.Info(context.Background(), "Shutdown complete")
}
