package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Ping checks that the pool is initialised and the server answers within 5s.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close is safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Info().Msg("[DATABASE] Closing connection pool")
	db.Pool.Close()
	db.Pool = nil
	return nil
}

// PoolStats is a snapshot of pool usage for the health endpoint.
type PoolStats struct {
	AcquiredConns int32 `json:"acquired_conns"`
	IdleConns     int32 `json:"idle_conns"`
	TotalConns    int32 `json:"total_conns"`
	MaxConns      int32 `json:"max_conns"`
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns: raw.AcquiredConns(),
		IdleConns:     raw.IdleConns(),
		TotalConns:    raw.TotalConns(),
		MaxConns:      raw.MaxConns(),
	}, nil
}

// Postgres error code for unique_violation.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint violation.
// constraint narrows the match when non-empty.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// OrderBy renders an ORDER BY clause from whitelisted columns.
// Columns not in allowed are dropped; direction is forced to ASC or DESC.
func OrderBy(allowed map[string]bool, terms ...string) string {
	var parts []string
	for _, term := range terms {
		fields := strings.Fields(term)
		if len(fields) == 0 || !allowed[fields[0]] {
			continue
		}
		dir := "ASC"
		if len(fields) > 1 && strings.EqualFold(fields[1], "desc") {
			dir = "DESC"
		}
		parts = append(parts, pq.QuoteIdentifier(fields[0])+" "+dir)
	}
	if len(parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// Where collects AND-ed predicates with positional arguments.
type Where struct {
	clauses []string
	args    []any
}

// Eq adds "column = $n". column must be a trusted identifier.
func (w *Where) Eq(column string, value any) {
	w.args = append(w.args, value)
	w.clauses = append(w.clauses, fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(column), len(w.args)))
}

// SQL returns the WHERE clause (or "") and its arguments.
func (w *Where) SQL() (string, []any) {
	if len(w.clauses) == 0 {
		return "", w.args
	}
	return " WHERE " + strings.Join(w.clauses, " AND "), w.args
}

// Next returns the placeholder index for an argument appended after the WHERE args.
func (w *Where) Next(extra int) string {
	return fmt.Sprintf("$%d", len(w.args)+extra)
}
