package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"emoch-backend/config"
	_ "emoch-backend/docs" // Swagger docs
	"emoch-backend/internal/chat/repository/memory"
	chatUC "emoch-backend/internal/chat/usecase"
	"emoch-backend/internal/httpserver"
	"emoch-backend/pkg/gemini"
	"emoch-backend/pkg/log"
)

// @title       Emo-ch AI Backend
// @description Emotional support chatbot API powered by Google Gemini.
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

	logger.Info(ctx, "Starting Emo-ch AI Backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini client
	llm, err := gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini model: %s", llm.Model())

	// 4. Chat domain
	sessionStore := memory.New(logger, memory.Config{
		MaxHistory:  cfg.Chat.MaxHistory,
		MaxSessions: cfg.Chat.MaxSessions,
		SessionTTL:  cfg.Chat.SessionTTL,
	})
	if cfg.Chat.SessionTTL > 0 {
		logger.Infof(ctx, "Idle sessions expire after %s", cfg.Chat.SessionTTL)
	}

	uc := chatUC.New(logger, llm, sessionStore, chatUC.Config{
		ContextWindow: cfg.Chat.ContextWindow,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		ChatUseCase:    uc,
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
