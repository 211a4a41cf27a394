// @title Star Sailors API
// @version 1.0
// @description Annotation, classification and progression backend for Star Sailors.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	_ "github.com/osse101/StarSailors_Go/docs"
	"github.com/osse101/StarSailors_Go/internal/annotation"
	"github.com/osse101/StarSailors_Go/internal/bootstrap"
	"github.com/osse101/StarSailors_Go/internal/classification"
	"github.com/osse101/StarSailors_Go/internal/config"
	"github.com/osse101/StarSailors_Go/internal/database"
	"github.com/osse101/StarSailors_Go/internal/deployment"
	"github.com/osse101/StarSailors_Go/internal/progression"
	"github.com/osse101/StarSailors_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "detail", w)
	}

	err = run(cfg)
	if err != nil {
		slog.Error("Server exited with error", "error", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connString := cfg.GetDBConnString()
	if err := database.RunMigrations(ctx, connString); err != nil {
		return err
	}
	dbPool, err := database.NewPool(ctx, connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	data, err := bootstrap.LoadGameData()
	if err != nil {
		dbPool.Close()
		return err
	}
	store, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	bus := bootstrap.InitializeEventSystem()

	progressionService := progression.NewService(repos.Progression, repos.Anomaly, data.Catalog, bus, progression.Config{
		CacheSize:     cfg.MissionCacheSize,
		CacheTTL:      cfg.MissionCacheTTL,
		UnlockRetries: cfg.UnlockMaxRetries,
	})
	classificationService := classification.NewService(repos.Classification, data.Forms, data.Catalog, bus)
	annotationService := annotation.NewService(
		repos.Anomaly,
		repos.Mineral,
		store.Store.URLs(),
		store.Fetcher,
		store.Store,
		classificationService,
		bus,
		annotation.WithCanvasBounds(cfg.CanvasMaxWidth, cfg.CanvasMaxHeight),
	)
	deploymentService := deployment.NewService(repos.Deployment, bus)

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:           bus,
		ProgressionService: progressionService,
		Config:             cfg,
	}); err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		Version:         cfg.Version,
		JWTSecret:       cfg.JWTSecret,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}, server.Dependencies{
		DB:              dbPool,
		Anomalies:       repos.Anomaly,
		URLs:            store.Store.URLs(),
		Progression:     progressionService,
		Classifications: classificationService,
		Annotations:     annotationService,
		Deployments:     deploymentService,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, DB: dbPool})

	return err
}
