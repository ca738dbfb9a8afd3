// Command stayflowd runs the front-desk management server: a JSON API over
// rooms, reservations, and housekeeping tasks backed by a pluggable
// persistent store.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"stayflow/internal/api"
	"stayflow/internal/config"
	"stayflow/internal/core"
)

func main() {
	cfg := config.Load()

	log, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	engine := core.NewDefaultRulesEngine()
	store, err := core.OpenPersistentStore(engine)
	if err != nil {
		log.Fatal("failed to open store", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := core.SeedDemoData(ctx, store, log); err != nil {
		log.Fatal("failed to seed store", zap.Error(err))
	}

	metrics, err := core.NewPrometheusMetricsRecorder(nil)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}
	svc := core.NewService(store, core.WithLogger(log), core.WithMetrics(metrics))

	server := api.NewServer(svc, cfg, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server", zap.Error(err))
	}

	if closer, ok := store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error("error closing store", zap.Error(err))
		}
	}
	log.Info("server stopped")
}
