package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roofquote/api"
	"roofquote/core/catalog"
	"roofquote/core/quote"
	"roofquote/internal/config"
	"roofquote/internal/logging"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quoting HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	logger := logging.Logger

	store, err := catalog.NewStore(func() (*catalog.Catalog, error) {
		return catalog.Load(cfg.Catalog.Dir)
	}, logger)
	if err != nil {
		return err
	}

	engine := quote.NewEngine(store, logger)
	handler := api.NewHandler(engine, store, "1.0.0", logger)
	router := api.NewRouter(handler, cfg.Server, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
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
		_ = srv.Shutdown(context.Background())
	}()

	logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
