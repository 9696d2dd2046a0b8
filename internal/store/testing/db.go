package storetesting

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/ChenyuHeee/AIOPS/internal/store"
	"github.com/ChenyuHeee/AIOPS/internal/testutil"
)

const (
	defaultTimeout = 2 * time.Second
)

// Open opens an in-memory DuckDB connection with the history schema applied.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	conn, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		t.Fatalf("ping duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	if err := store.EnsureSchema(ctx, conn); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return conn
}
