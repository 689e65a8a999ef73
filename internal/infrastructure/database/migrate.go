package database

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationSource exposes the embedded schema migrations.
func MigrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
}

// Migrate applies all pending up migrations through the pool.
func (db *PostgresDB) Migrate(ctx context.Context) (int, error) {
	if db.Pool == nil {
		return 0, fmt.Errorf("database pool is not initialized")
	}
	return MigratePool(ctx, db.Pool)
}

// MigratePool applies the embedded migrations to any pool, honouring its
// search_path.
func MigratePool(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	n, err := migrate.ExecContext(ctx, sqlDB, "postgres", MigrationSource(), migrate.Up)
	if err != nil {
		return n, fmt.Errorf("apply migrations: %w", err)
	}

	log.Info().Int("applied", n).Msg("[DATABASE] Migrations applied")
	return n, nil
}
