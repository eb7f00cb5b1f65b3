package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/config"
	"github.com/Maca31/IFPhub/internal/api/handler"
	"github.com/Maca31/IFPhub/internal/api/router"
	"github.com/Maca31/IFPhub/internal/repository"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/database"
	"github.com/Maca31/IFPhub/pkg/events"
	"github.com/Maca31/IFPhub/pkg/hashid"
	"github.com/Maca31/IFPhub/pkg/jwt"
	applogger "github.com/Maca31/IFPhub/pkg/logger"
	"github.com/Maca31/IFPhub/pkg/redis"
	"github.com/Maca31/IFPhub/pkg/storage"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	logger.Info("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("acquiring sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("running migrations", zap.Error(err))
	}

	// 4. Redis (optional; the portal degrades without it)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, token blacklist and live view counters disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Shared infrastructure
	jwtMgr := jwt.NewManager(&cfg.Auth)
	codec := hashid.New(cfg.Hashid.Secret, cfg.Hashid.MinLength)
	store := storage.NewClient(&cfg.Storage, logger)
	producer := events.NewProducer(&cfg.Events, logger)

	// 6. Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, store, producer, codec, logger)
	h := handler.NewHandler(svc)

	// 7. Router
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutting down server", zap.Error(err))
	}

	if err := producer.Close(); err != nil {
		logger.Error("closing event producer", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
