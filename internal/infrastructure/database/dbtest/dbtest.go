// Package dbtest gives repository tests a migrated, throwaway schema on a
// real PostgreSQL server. Tests are skipped when DATABASE_URL is unset.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"bepl-backend/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const envURL = "DATABASE_URL"

// Pool returns a pool whose search_path points at a fresh schema holding
// the full migrated table set. The schema is dropped when the test ends,
// so packages running in parallel never see each other's rows.
func Pool(t testing.TB) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv(envURL)
	if url == "" {
		t.Skipf("%s not set, skipping postgres test", envURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin, err := pgx.Connect(ctx, url)
	require.NoError(t, err)
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	require.NoError(t, admin.Close(ctx))

	cfg, err := pgxpool.ParseConfig(url)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema + ",public"
	cfg.MaxConns = 16

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		dropSchema(t, url, schema)
	})

	_, err = database.MigratePool(ctx, pool)
	require.NoError(t, err)
	return pool
}

func dropSchema(t testing.TB, url, schema string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		t.Logf("dbtest: drop %s: %v", schema, err)
		return
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, fmt.Sprintf("DROP SCHEMA %s CASCADE", schema)); err != nil {
		t.Logf("dbtest: drop %s: %v", schema, err)
	}
}
