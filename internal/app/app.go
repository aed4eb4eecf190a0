package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"inrwatch/internal/platform/db"
	httpserver "inrwatch/internal/platform/http"

	"inrwatch/internal/adapters/cache"
	"inrwatch/internal/adapters/httpclient"
	"inrwatch/internal/adapters/journal"
	"inrwatch/internal/adapters/postgres"
	"inrwatch/internal/api"
	"inrwatch/internal/config"
	"inrwatch/internal/rate"
	"inrwatch/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (migrations, DB connect, bootstrap)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Schema, then pool
	if err = db.Migrate(startupCtx, appCfg.DbServer); err != nil {
		logrus.WithError(err).Error("Error applying migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Ingestion journal, also served by GET /api/cron-status
	ingestionJournal := journal.NewFileJournal(appCfg.Journal.Path)

	// Latest-observation cache
	latestCache, err := cache.NewLatestCache(8)
	if err != nil {
		logrus.WithError(err).Error("Failed to create latest observation cache")
		return err
	}
	defer latestCache.Close()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External rate client
	rateAPIBaseURL := strings.TrimSuffix(appCfg.RateAPI.BaseURL, "/")
	rateClient := httpclient.NewExchangeRateClient(baseHTTPClient, rateAPIBaseURL)

	// Repository and service
	observationRepo := postgres.NewObservationRepository(pool)
	rateService := rate.NewService(observationRepo, latestCache)

	// Bootstrap: seed one observation when the store starts out empty
	if err = rate.BootstrapIfEmpty(startupCtx, observationRepo, rateClient, ingestionJournal, latestCache); err != nil {
		logrus.WithError(err).Error("Bootstrap check failed")
		return err
	}

	// Scheduler
	scheduler := rate.NewScheduler(observationRepo, rateClient, ingestionJournal, latestCache)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateService, ingestionJournal)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
