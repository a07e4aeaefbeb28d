package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lexhaven/lexai/internal/api"
	"github.com/lexhaven/lexai/internal/auth"
	"github.com/lexhaven/lexai/internal/composer"
	"github.com/lexhaven/lexai/internal/config"
	"github.com/lexhaven/lexai/internal/generation"
	"github.com/lexhaven/lexai/internal/logger"
	"github.com/lexhaven/lexai/internal/repository"
	"github.com/lexhaven/lexai/internal/retrieval"
	"github.com/lexhaven/lexai/internal/search"
	"github.com/lexhaven/lexai/internal/service"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zlog := logger.New(cfg.Log.Path, cfg.Log.Prod)
	defer zlog.Sync()

	// Initialize database
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	ids := repository.UUIDGenerator{}

	// Accounts
	userRepo := repository.NewUserRepository(db, ids)
	authService := auth.NewService(
		userRepo,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenExpiry)*time.Hour,
	)

	// Generation and prompt assembly
	generator := generation.New(
		cfg.Generation.BaseURL,
		cfg.Generation.APIKey,
		cfg.Generation.Model,
		time.Duration(cfg.Generation.TimeoutSeconds)*time.Second,
	)
	comp := composer.New(retrieval.New())

	// Per-owner workspaces and services
	workspaces := service.NewWorkspaceManager(db, ids, comp, generator, zlog)
	caseService := service.NewCaseService(workspaces, generator)
	chatService := service.NewChatService(workspaces)
	requestService := service.NewRequestService(workspaces)

	// Legal research
	ecourts := search.NewECourtsClient(
		cfg.Lookup.BaseURL,
		time.Duration(cfg.Lookup.TimeoutSeconds)*time.Second,
	)
	searchService := search.NewService(ecourts, search.NewLookupCache(), zlog)

	// Setup router
	router := api.SetupRouter(
		authService,
		caseService,
		chatService,
		requestService,
		searchService,
		api.RouterConfig{AllowOrigins: []string{"*"}},
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		zlog.Info("Starting LexAI server",
			zap.String("address", cfg.Address()),
			zap.String("base_url", cfg.Server.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exited")
}
