package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ChenyuHeee/AIOPS/internal/reportserver"
)

func withServer(t *testing.T, fn func(ctx context.Context, cfg reportserver.Config) error) {
	t.Helper()
	orig := serveReports
	serveReports = fn
	t.Cleanup(func() { serveReports = orig })
}

// TestServePassesConfig verifies flags reach the server and the address is printed.
func TestServePassesConfig(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.duckdb")
	var got reportserver.Config
	withServer(t, func(_ context.Context, cfg reportserver.Config) error {
		got = cfg
		cfg.Ready("127.0.0.1:9999")
		return nil
	})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"serve", "--addr", "127.0.0.1:0", "--db", dbPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	}
	if got.Addr != "127.0.0.1:0" || got.DBPath != dbPath || got.Logger == nil {
		t.Fatalf("unexpected config %+v", got)
	}
	mustContain(t, stdout.String(), "Serving "+dbPath+" on http://127.0.0.1:9999")
}

// TestServeUsesConfiguredStore falls back to store.path from the config file.
func TestServeUsesConfiguredStore(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, ".rcajudge.yml", "version: 1\nstore:\n  path: runs.duckdb\n")
	var got reportserver.Config
	withServer(t, func(_ context.Context, cfg reportserver.Config) error {
		got = cfg
		return nil
	})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"serve", "--config", cfgPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	}
	if got.DBPath != filepath.Join(dir, "runs.duckdb") {
		t.Fatalf("expected db path resolved against config dir, got %q", got.DBPath)
	}
}

// TestServeReportsFailure maps server errors to a failing exit.
func TestServeReportsFailure(t *testing.T) {
	withServer(t, func(context.Context, reportserver.Config) error {
		return errors.New("address in use")
	})
	var stdout, stderr bytes.Buffer
	code := Run([]string{"serve", "--db", "x.duckdb"}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	mustContain(t, stderr.String(), "Serve failed: address in use")
}
