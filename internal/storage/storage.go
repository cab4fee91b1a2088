// Package storage opens the bun database that backs the source registry
// and the content node tree.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-notes/internal/nodes"
	"github.com/goliatone/go-notes/internal/runtimeconfig"
	"github.com/goliatone/go-notes/internal/sources"
)

// ErrDSNRequired is returned by Open when no connection string is set.
var ErrDSNRequired = errors.New("storage: dsn is required")

// Models lists the bun models owned by the notes tables.
func Models() []any {
	return []any{
		(*sources.Source)(nil),
		(*nodes.Node)(nil),
	}
}

// Open connects to the configured dialect and pings the database.
func Open(ctx context.Context, cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, ErrDSNRequired
	}

	var (
		sqldb *sql.DB
		db    *bun.DB
		err   error
	)
	switch dialect := runtimeconfig.NormalizeDialect(cfg.Dialect); dialect {
	case "sqlite":
		sqldb, err = sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("storage: open sqlite: %w", err)
		}
		// One connection keeps shared in-memory databases alive.
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	case "postgres":
		sqldb, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("storage: open postgres: %w", err)
		}
		db = bun.NewDB(sqldb, pgdialect.New())
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrStorageDialectUnknown, cfg.Dialect)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: ping: %w", err)
	}
	return db, nil
}

// CreateTables creates the notes tables when they are missing.
func CreateTables(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return errors.New("storage: db is required")
	}
	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}
	return nil
}
