package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// DB wraps the sqlx connection shared by all repositories
type DB struct {
	*sqlx.DB
}

// Open establishes a connection to the database for the given driver
func Open(driver, dsn string) (*DB, error) {
	switch driver {
	case DriverSQLite:
		// Create data directory if it doesn't exist
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			if dir := filepath.Dir(dsn); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return nil, fmt.Errorf("failed to create data directory: %w", err)
				}
			}
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// Enable foreign keys
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}

		// SQLite doesn't support multiple writers; a single connection also keeps
		// in-memory databases alive for the lifetime of the pool
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	return &DB{DB: db}, nil
}

// Migrate applies all pending schema migrations for the connection's dialect
func (d *DB) Migrate(ctx context.Context) error {
	dir, err := d.prepareGoose()
	if err != nil {
		return err
	}
	if err := goose.UpContext(ctx, d.DB.DB, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// MigrationStatus logs the applied state of every migration
func (d *DB) MigrationStatus(ctx context.Context) error {
	dir, err := d.prepareGoose()
	if err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, d.DB.DB, dir); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

func (d *DB) prepareGoose() (string, error) {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(slogGooseLogger{})

	dir := "migrations/sqlite"
	if d.DriverName() == DriverPostgres {
		dir = "migrations/postgres"
	}
	if err := goose.SetDialect(d.DriverName()); err != nil {
		return "", fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return dir, nil
}

// InTx runs fn inside a transaction, rolling back if fn returns an error
func (d *DB) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("failed to roll back transaction", "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// slogGooseLogger forwards goose output to slog
type slogGooseLogger struct{}

func (slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

// Fatalf logs without exiting so the caller decides how to stop
func (slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}
