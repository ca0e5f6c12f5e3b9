package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// calendarKey is the key the CSV text is saved under.
const calendarKey = "calendarCSV"

// SQLiteBackend saves the CSV text in a key/value table of a sqlite database.
type SQLiteBackend struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSQLiteBackend opens, and creates if needed, the database at 'dbPath'.
func NewSQLiteBackend(dbPath string, log zerolog.Logger) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("sqlite storage opened")
	return &SQLiteBackend{db: db, log: log}, nil
}

func runMigrations(dbPath string) error {
	// A separate connection, closed with the migrate instance.
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Load implements Backend.
func (b *SQLiteBackend) Load(ctx context.Context) (string, bool, error) {
	var csv string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, calendarKey).Scan(&csv)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", calendarKey, err)
	}
	b.log.Debug().Int("bytes", len(csv)).Msg("calendar loaded")
	return csv, true, nil
}

// Save implements Backend.
func (b *SQLiteBackend) Save(ctx context.Context, csv string) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		calendarKey, csv)
	if err != nil {
		return fmt.Errorf("save %s: %w", calendarKey, err)
	}
	b.log.Debug().Int("bytes", len(csv)).Msg("calendar saved")
	return nil
}

// Close implements Backend.
func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
