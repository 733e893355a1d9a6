package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kursbot/internal/adapters/cache"
	"kursbot/internal/adapters/httpclient"
	"kursbot/internal/api"
	"kursbot/internal/bot"
	"kursbot/internal/bot/handler"
	"kursbot/internal/config"
	httpserver "kursbot/internal/platform/http"
	"kursbot/internal/rates"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and starts the HTTP server.
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

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Rate source and cache
	rateClient := httpclient.NewCBRClient(baseHTTPClient, appCfg.Rates.SourceURL)

	cacheTTL := time.Duration(appCfg.Rates.CacheTimeoutSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 300 * time.Second
	}
	tableCache, err := cache.NewRateTableCache(appCfg.Rates.CacheMaxItems, cacheTTL)
	if err != nil {
		logrus.WithError(err).Error("Failed to create rate table cache")
		return err
	}
	defer tableCache.Close()
	logrus.Info("✅ Rate cache initialized")

	// Provider and warm-refresh scheduler
	provider := rates.NewProvider(rateClient, tableCache)
	scheduler := rates.NewScheduler(provider, cacheTTL)
	// Ensure scheduler stops before the cache closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Dispatcher, handlers and router
	dispatcher := bot.NewDispatcher(provider)
	botHandler := handler.NewBotHandler(dispatcher, provider)
	router := api.NewRouter(botHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
