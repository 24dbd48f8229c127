package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"batepapo-uol-api/cmd/api/router"
	"batepapo-uol-api/internal/config"
	"batepapo-uol-api/internal/infrastructure/database"
	"batepapo-uol-api/internal/middleware"
	"batepapo-uol-api/internal/pkg/room/application/usecase"
	"batepapo-uol-api/internal/pkg/room/application/worker"
	"batepapo-uol-api/internal/pkg/room/persistence/repository/adapter"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found or could not be loaded", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo repository.RoomRepository
	if cfg.MongoURL == "memory" {
		// Storeless mode for local runs; state is lost on restart.
		logger.Warn("running with the in-memory store")
		repo = adapter.NewMemoryRoomRepository()
	} else {
		// Connect to the database on startup
		connectCtx, cancel := context.WithTimeout(rootCtx, 5*time.Second)
		defer cancel()

		client, err := database.Connect(connectCtx, cfg.MongoURL)
		if err != nil {
			logger.Error("failed to connect to database", "err", err)
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}()

		mongoRepo := adapter.NewMongoRoomRepository(client.Database(cfg.MongoDatabase))
		if err := mongoRepo.EnsureIndexes(connectCtx); err != nil {
			logger.Error("failed to ensure indexes", "err", err)
			os.Exit(1)
		}
		repo = mongoRepo
	}

	// Background eviction of idle participants, independent of request handling.
	sweeper := worker.NewPresenceSweeper(
		usecase.NewExpireParticipantsUseCase(repo),
		cfg.SweepInterval,
		cfg.IdleTimeout,
		logger,
	)
	go func() {
		_ = sweeper.Run(rootCtx)
	}()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	middleware.Setup(r, logger)
	router.RegisterRoutes(r, repo)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server running", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
