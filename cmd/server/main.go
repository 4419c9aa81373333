package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lumenward/beacon/internal/infrastructure/config"
	"github.com/lumenward/beacon/internal/infrastructure/logging"
	"github.com/lumenward/beacon/internal/infrastructure/server"
	"github.com/lumenward/beacon/internal/infrastructure/tracing"
)

func main() {
	cfg := config.LoadOrDefault()

	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	guard, err := tracing.Init(context.Background(), tracing.Config{
		ServiceName:     cfg.Tracing.ServiceName,
		ServiceVersion:  cfg.Tracing.ServiceVersion,
		Endpoint:        cfg.Tracing.Endpoint,
		Protocol:        cfg.Tracing.Protocol,
		Insecure:        cfg.Tracing.Insecure,
		ExportTimeout:   cfg.Tracing.ExportTimeout,
		BatchInterval:   cfg.Tracing.BatchInterval,
		BatchSize:       cfg.Tracing.BatchSize,
		ShutdownTimeout: cfg.Tracing.ShutdownTimeout,
	}, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize tracing", zap.Error(err))
		os.Exit(1)
	}

	srv := server.New(cfg, logger)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			logger.Error("Error during shutdown", zap.Error(err))
		}
	case err := <-errChan:
		logger.Error("Server error", zap.Error(err))
	}

	// Flush buffered spans before the process exits, on every path.
	guard.Shutdown(context.Background())
}
