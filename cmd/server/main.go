package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anekzad/portfolio/internal/app"
	"github.com/anekzad/portfolio/internal/config"
	"github.com/anekzad/portfolio/internal/logger"
	"github.com/anekzad/portfolio/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	err := run(cfg)
	if err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := application.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(application),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", cfg.AppURL)
		errCh <- srv.ListenAndServe()
	}()

	// Wait for the listener to fail or a shutdown signal, whichever first.
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		return err
	}
	return nil
}
