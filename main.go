package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"htmx-tictactoe/config"
	"htmx-tictactoe/events"
	"htmx-tictactoe/game"
	"htmx-tictactoe/handlers"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Setup(".env")
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger := NewLogger(cfg.LogLevel)
	defer logger.Sync()

	h := handlers.New(game.NewStore(), events.NewBroker(cfg.SSEBuffer), logger)
	router := handlers.NewRouter(cfg, h, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.ServerAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.ServerAddr), zap.Error(err))
	}

	logger.Info("server is running", zap.String("addr", ln.Addr().String()))
	if err := serve(ctx, ln, router, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

// serve runs the HTTP server on ln until ctx is done. Request contexts derive
// from a context cancelled at shutdown, so open event streams end instead of
// holding Shutdown for the whole timeout.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, timeout time.Duration, logger *zap.Logger) error {
	baseCtx, cancelRequests := context.WithCancel(context.Background())
	defer cancelRequests()

	srv := &http.Server{
		Handler:     handler,
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("received shutdown signal")
	cancelRequests()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func NewLogger(level string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger
}
