package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"weatherclient.app/internal/config"
	"weatherclient.app/internal/mockserver"
	"weatherclient.app/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadMockServerConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	level, _ := logger.ParseLevel(cfg.Log.Level)
	slog.SetDefault(logger.NewWithLevel(level).Logger)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Handler:      mockserver.New(mockserver.Options{APIKey: cfg.APIKey}),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		slog.Error("Failed to listen", "addr", cfg.Addr(), "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting mock weather server", "addr", ln.Addr().String())
	if err := serve(ctx, srv, ln, shutdownTimeout); err != nil {
		slog.Error("HTTP server error", "error", err)
		return 1
	}
	slog.Info("Mock weather server stopped")
	return 0
}

// serve runs srv on ln until ctx is done. It returns only after Shutdown has
// drained in-flight requests or the timeout expired.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Received shutdown signal...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
