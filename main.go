package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/fee-referendum/cliparse"
	"github.com/danielhkuo/fee-referendum/middleware"
	"github.com/danielhkuo/fee-referendum/pledge"
	"github.com/danielhkuo/fee-referendum/privacy"
	"github.com/danielhkuo/fee-referendum/router"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Per-process salt for client hashes in logs
	logSalt, err := privacy.NewSalt(16)
	if err != nil {
		slog.Error("salt generation failed", "error", err)
		os.Exit(1)
	}

	client := pledge.NewClient(cfg.BackendURL, pledge.WithTimeout(cfg.RequestTimeout))
	slog.Info("Pledge service configured", "endpoint", client.Endpoint(), "timeout", cfg.RequestTimeout)

	mux := router.NewRouter(client, logSalt)

	server := &http.Server{
		Handler:           middleware.CORS(cfg.AllowedOrigin)(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		// Wait for Ctrl-C signal or a failed listener
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
