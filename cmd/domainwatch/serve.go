package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bensethbell/domainwatch/internal/config"
	"github.com/bensethbell/domainwatch/internal/httpapi"
	"github.com/bensethbell/domainwatch/internal/logging"
	"github.com/bensethbell/domainwatch/internal/metrics"
	"github.com/bensethbell/domainwatch/internal/monitor"
	"github.com/bensethbell/domainwatch/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the monitor loop with a read-only status API",
	Long: `Run cycles on an internal ticker (CHECK_INTERVAL_MS) instead of an
external scheduler, and serve the current status set over HTTP:

  GET /healthz
  GET /api/status
  GET /api/status/{domain}
  GET /metrics`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()

	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	domains, mode, err := cfg.ResolveDomains()
	if err != nil {
		logger.Error("config_error", zap.Error(err))
		return err
	}

	interval := cfg.CheckInterval
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	reg := prometheus.NewRegistry()
	fileStore := store.NewFileStore(cfg.StatusFile)

	mon := monitor.New(
		logger,
		fileStore,
		buildProber(mode, cfg),
		buildNotifier(cfg),
		domains,
		cfg.Concurrency,
	)
	mon.Metrics = metrics.New(reg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go mon.Run(ctx, interval)

	api := httpapi.NewServer(logger, fileStore, reg)
	srv := &http.Server{Addr: cfg.Addr, Handler: api.Router()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("api_listen", zap.String("addr", cfg.Addr), zap.Duration("interval", interval))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("shutdown_complete")
	return nil
}
