package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"market-pulse/config"
	"market-pulse/database"
	"market-pulse/feeds"
	"market-pulse/handlers"
	"market-pulse/logger"
)

func main() {
	configPath := os.Getenv("MP_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := database.InitDB(cfg.DB.DSN, zl); err != nil {
		zl.Fatal("init database", zap.Error(err))
	}
	defer func() { _ = database.Close(database.GetDB()) }()

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	fetcher := feeds.NewFetcher(cfg.Feeds.RelayURL, cfg.Feeds.Timeout, zl)
	router := handlers.NewRouter(handlers.RouterDeps{
		DB:          database.GetDB(),
		Feeds:       feeds.NewService(fetcher, zl),
		NewsPerPage: cfg.Feeds.NewsPerPage,
		ImpactLimit: cfg.Feeds.ImpactLimit,
		Limiter:     rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
		Logger:      zl,
	})

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("🚀 Starting Market Pulse server", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("shutdown failed", zap.Error(err))
	}
	zl.Info("server stopped")
}
