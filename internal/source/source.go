// Package source provides the tabular inputs checks run against.
//
// A Source is either a file queryable by the embedded analytical engine
// (CSV, Parquet, JSON) or an in-memory table materialized into the
// engine on attach. A check opens one Engine, attaches its source (or
// sources, for two-table checks), runs its query, and closes the
// Engine. Both variants resolve to a relation string, so check logic is
// written once and never branches on the source kind.
package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

// Source is a tabular data source a check can run against.
type Source interface {
	// Label identifies the source in log metadata: the file path for
	// file sources, the table name for in-memory tables.
	Label() string

	// Attach makes the source queryable on the given engine and
	// returns the SQL text addressing its relation: a single-quoted
	// path literal for files, a double-quoted identifier for
	// in-memory tables. Safe to splice into FROM position.
	Attach(ctx context.Context, eng *Engine) (string, error)
}

// Engine is one in-memory analytical engine handle. Handles are cheap
// and never shared across checks.
type Engine struct {
	db *sql.DB
}

// OpenEngine opens a fresh in-memory engine database.
func OpenEngine(ctx context.Context) (*Engine, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open query engine: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to query engine: %w", err)
	}

	// Attached tables must stay visible to every subsequent query, so
	// the pool is capped at a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Engine{db: db}, nil
}

// QueryContext executes a query and returns the resulting rows.
// Callers are responsible for closing the returned rows.
func (e *Engine) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return e.db.QueryContext(ctx, query, args...)
}

// QueryRowContext executes a query expected to return at most one row.
func (e *Engine) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return e.db.QueryRowContext(ctx, query, args...)
}

// ExecContext executes a statement without returning rows.
func (e *Engine) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return e.db.ExecContext(ctx, query, args...)
}

// Close releases the engine handle.
func (e *Engine) Close() error {
	if e.db == nil {
		return nil
	}
	return e.db.Close()
}
