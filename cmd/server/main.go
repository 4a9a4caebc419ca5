// Package main - entry point for the quoting server
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"roofquote/api"
	"roofquote/core/catalog"
	"roofquote/core/quote"
	"roofquote/internal/config"
	"roofquote/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logging.Sugar.Fatalw("failed to load config", "path", *cfgPath, "error", err)
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Sugar.Fatalw("failed to initialize logging", "error", err)
	}
	defer logging.Sync()
	logger := logging.Logger

	store, err := catalog.NewStore(func() (*catalog.Catalog, error) {
		return catalog.Load(cfg.Catalog.Dir)
	}, logger)
	if err != nil {
		logger.Fatal("failed to load pricing catalog", zap.Error(err))
	}
	logger.Info("pricing catalog loaded",
		zap.String("dir", cfg.Catalog.Dir),
		zap.String("content_hash", store.Current().ContentHash))

	engine := quote.NewEngine(store, logger)
	handler := api.NewHandler(engine, store, version, logger)
	router := api.NewRouter(handler, cfg.Server, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Catalog.Watch && cfg.Catalog.Dir != "" {
		go func() {
			if err := store.Watch(ctx, cfg.Catalog.Dir); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("catalog watcher stopped", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		_ = srv.Shutdown(context.Background())
	}()

	logger.Info("server listening", zap.String("addr", cfg.Server.Addr), zap.String("version", version))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
