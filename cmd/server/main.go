package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/maydeploy/event-feedback-app/internal/di"
	"github.com/maydeploy/event-feedback-app/internal/repository"
	"github.com/maydeploy/event-feedback-app/internal/router"
	"github.com/maydeploy/event-feedback-app/internal/session"
	"github.com/maydeploy/event-feedback-app/pkg/config"
	"github.com/maydeploy/event-feedback-app/pkg/database"
	"github.com/maydeploy/event-feedback-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.App.Environment == "development",
	}); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	dbCfg := database.DefaultPostgresConfig()
	dbCfg.Host = cfg.Database.Host
	dbCfg.Port = cfg.Database.Port
	dbCfg.User = cfg.Database.User
	dbCfg.Password = cfg.Database.Password
	dbCfg.Database = cfg.Database.DBName
	dbCfg.SSLMode = cfg.Database.SSLMode
	if cfg.Database.MaxConns > 0 {
		dbCfg.MaxConns = int32(cfg.Database.MaxConns)
	}
	if cfg.Database.MinConns > 0 {
		dbCfg.MinConns = int32(cfg.Database.MinConns)
	}

	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.Migrate(ctx, db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Admin sessions live in Redis when available so restarts don't log
	// the admin out; otherwise they live in process memory.
	var sessions session.Store
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, cfg.Admin.SessionTTL)
	} else {
		store := session.NewMemoryStore(cfg.Admin.SessionTTL)
		defer store.Stop()
		sessions = store
	}

	pool := db.Pool()
	container := di.NewContainer(&di.ContainerConfig{
		DB:                db,
		Sessions:          sessions,
		SubmissionRepo:    repository.NewPostgresSubmissionRepository(pool),
		CollaborationRepo: repository.NewPostgresCollaborationRepository(pool),
		EventRepo:         repository.NewPostgresEventRepository(pool),
		RateLimitRepo:     repository.NewPostgresRateLimitRepository(pool),
		Logger:            logger.Get(),
		AdminPasswordHash: cfg.Admin.PasswordHash,
		SessionSecret:     cfg.Admin.SessionSecret,
		CookieSecure:      cfg.Admin.CookieSecure,
	})

	engine := router.New(container, &router.Config{
		CORSOrigin: cfg.CORS.Origin,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
