package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/fulfilmenthub/notify-adapter/internal/api"
	"github.com/fulfilmenthub/notify-adapter/internal/api/handler"
	"github.com/fulfilmenthub/notify-adapter/internal/config"
	"github.com/fulfilmenthub/notify-adapter/internal/fulfilment"
	"github.com/fulfilmenthub/notify-adapter/internal/metrics"
	"github.com/fulfilmenthub/notify-adapter/internal/notify"
	"github.com/fulfilmenthub/notify-adapter/internal/ratelimiter"
	"github.com/fulfilmenthub/notify-adapter/internal/template"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	// A malformed composite API key is a deployment defect; the service
	// must refuse to start rather than fail every dispatch at runtime.
	onSuccess, onFailure := m.DispatchHooks()
	client, err := notify.NewClient(cfg.NotifyBaseURL, cfg.NotifyAPIKey, cfg.NotifyTimeout, logger, notify.Hooks{
		OnSuccess: onSuccess,
		OnFailure: onFailure,
	})
	if err != nil {
		logger.Fatal("invalid notify API key", zap.Error(err))
	}

	resolver := template.NewResolver(template.DefaultMapping(), cfg.FallbackTemplateID)
	validator := fulfilment.NewValidator(resolver)
	limiter := ratelimiter.New(cfg.RateLimit)
	fh := handler.NewFulfilmentHandler(validator, client, logger)

	// ---- HTTP server ----
	router := api.NewRouter(fh, limiter, reg, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
