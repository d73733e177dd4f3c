package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heritage-web/internal/adapters/primary/http/handlers"
	"heritage-web/internal/adapters/primary/http/middleware"
	"heritage-web/internal/adapters/primary/http/views"
	"heritage-web/internal/adapters/secondary/collectionapi"
	"heritage-web/internal/adapters/secondary/postgres"
	"heritage-web/internal/config"
	ports "heritage-web/internal/core/ports/output"
	"heritage-web/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Secondary Adapters
	collection := collectionapi.NewCollectionClient(&cfg.Upstream)
	checks := []handlers.ReadinessCheck{{Name: "collection", Check: collection.Ping}}

	// Snapshot store (Optional - based on config)
	var snapshotRepo ports.SnapshotRepository
	if cfg.Database.Enabled {
		pool, err := newPool(cfg)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()

		snapshotRepo = postgres.NewSnapshotRepository(pool)
		checks = append(checks, handlers.ReadinessCheck{Name: "database", Check: snapshotRepo.Ping})
		log.WithField("fallback", cfg.Snapshot.Fallback).Info("snapshot store initialized")
	} else {
		log.Info("snapshot store disabled")
	}

	// Core Services
	snapshots := services.NewSnapshotter(snapshotRepo, cfg.Snapshot.Fallback)
	catalogSvc := services.NewCatalogService(collection, cfg.Upstream.SecondaryTimeout)
	artworkSvc := services.NewArtworkPageService(collection, snapshots, cfg.Upstream.SecondaryTimeout)
	artistSvc := services.NewArtistPageService(collection, snapshots, cfg.Upstream.SecondaryTimeout)
	provenanceSvc := services.NewProvenancePageService(collection, snapshots, cfg.Upstream.SecondaryTimeout)

	// Primary Adapter
	h := handlers.New(catalogSvc, artworkSvc, artistSvc, provenanceSvc, checks...)

	tmpl, err := views.Load()
	if err != nil {
		log.Fatalf("load views: %v", err)
	}

	if cfg.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(views.Static()))
	router.NoRoute(h.NotFound)
	h.RegisterRoutes(router, middleware.RateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithField("upstream", cfg.Upstream.URL).Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("server forced shutdown: %v", err)
		return
	}

	log.Info("server stopped")
}

func newPool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info("database connection established")
	return pool, nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if cfg.Logger.File != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.Logger.File,
			MaxSize:    cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAge:     cfg.Logger.MaxAgeDays,
			Compress:   true,
		}))
	}
}
