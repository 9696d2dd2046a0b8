package reportserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ChenyuHeee/AIOPS/internal/store"
)

// Config captures the settings for serving recorded runs.
type Config struct {
	Addr   string
	DBPath string
	Logger *zap.SugaredLogger
	// Ready, when set, receives the bound address once the listener is open.
	Ready func(addr string)
}

// Serve opens an existing history database read-only and serves it until
// ctx is done.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	if cfg.DBPath == "" {
		return errors.New("reportserver: db path is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	runs, err := store.OpenExisting(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("reportserver: %w", err)
	}
	defer runs.Close()

	handler, err := NewHandler(cfg.DBPath, runs, logger)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("reportserver: listen: %w", err)
	}
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Infow("serving reports", "addr", listener.Addr().String(), "db", cfg.DBPath)
	if cfg.Ready != nil {
		cfg.Ready(listener.Addr().String())
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		logger.Infow("report server stopped")
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
