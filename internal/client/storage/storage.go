// Package storage opens the key-value backend selected by the configuration
// and runs the embedded schema migrations for the SQL backends.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/carmarket/internal/client/config"
	"github.com/dmitrijs2005/carmarket/internal/client/migrations"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/kv"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Storage bundles the opened key-value repository with its release hook.
type Storage struct {
	KV    kv.Repository
	close func() error
}

// Close releases the underlying connection.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations found under dir of fsys.
func RunMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, dialect, dir string) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// InitSQLite opens (creating if needed) the SQLite file at dsn and migrates it.
func InitSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// modernc sqlite does not share :memory: databases across connections.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, migrations.SQLite, "sqlite3", "sqlite"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// InitPostgres opens a pgx connection pool for dsn and migrates it.
func InitPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err := RunMigrations(ctx, db, migrations.Postgres, "postgres", "postgres"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open connects to the backend named by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := InitSQLite(ctx, cfg.StoreDSN)
		if err != nil {
			return nil, err
		}
		return &Storage{KV: kv.NewSQLiteRepository(db), close: db.Close}, nil

	case config.DriverPostgres:
		db, err := InitPostgres(ctx, cfg.StoreDSN)
		if err != nil {
			return nil, err
		}
		return &Storage{KV: kv.NewPostgresRepository(db), close: db.Close}, nil

	case config.DriverRedis:
		r, err := kv.OpenRedis(ctx, cfg.StoreDSN)
		if err != nil {
			return nil, err
		}
		return &Storage{KV: r, close: r.Close}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
