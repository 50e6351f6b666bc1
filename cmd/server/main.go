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

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"itemsvc/internal/config"
	"itemsvc/internal/middleware"
	"itemsvc/internal/server"
	"itemsvc/internal/storage/mongodb"
	"itemsvc/pkg/logging"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB before serving anything; a failure here is fatal.
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	store, err := mongodb.New(connectCtx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err, "uri", cfg.MongoURI)
		os.Exit(1)
	}
	slog.Info("Storage initialized", "database", cfg.DBName)

	api := server.New(store)
	mux := api.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.RequestID(
		middleware.Logging(
			middleware.CORS(
				middleware.Metrics(mux),
			),
		),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("Server listening", "address", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		slog.Error("Storage close failed", "error", err)
	}
}
