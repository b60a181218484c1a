package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"                    // Postgres driver
	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary
)

// Dialect carries the SQL differences between the relational backends.
type Dialect struct {
	// Name is the backend name used for metrics and logs.
	Name string
	// DriverName is the database/sql driver.
	DriverName string
	// CreateTable is the idempotent bootstrap DDL of tbl_invoice.
	CreateTable string
	// numbered reports whether placeholders are $1, $2... instead of ?.
	numbered bool
}

var (
	// PostgresDialect targets lib/pq.
	PostgresDialect = Dialect{
		Name:       BackendPostgres,
		DriverName: "postgres",
		CreateTable: `CREATE TABLE IF NOT EXISTS tbl_invoice (
	invoiceid BIGSERIAL PRIMARY KEY,
	name      TEXT NOT NULL DEFAULT '',
	amount    DOUBLE PRECISION NOT NULL DEFAULT 0
)`,
		numbered: true,
	}

	// SQLiteDialect targets ncruces/go-sqlite3.
	SQLiteDialect = Dialect{
		Name:       BackendSQLite,
		DriverName: "sqlite3",
		CreateTable: `CREATE TABLE IF NOT EXISTS tbl_invoice (
	invoiceid INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT NOT NULL DEFAULT '',
	amount    REAL NOT NULL DEFAULT 0
)`,
	}
)

// Rebind rewrites ? placeholders into the dialect's form.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLDB is an open relational database together with its dialect.
type SQLDB struct {
	DB      *sql.DB
	Dialect Dialect
}

// SQLPoolConfig holds database/sql pool settings for Postgres.
type SQLPoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultSQLPoolConfig returns the pool used in production.
func DefaultSQLPoolConfig() SQLPoolConfig {
	return SQLPoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// NewPostgres opens a Postgres connection and bootstraps tbl_invoice.
func NewPostgres(ctx context.Context, dsn string, cfg SQLPoolConfig) (*SQLDB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn cannot be empty")
	}

	db, err := sql.Open(PostgresDialect.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return open(ctx, db, PostgresDialect)
}

// NewSQLite opens (creating if needed) the SQLite database at path and
// bootstraps tbl_invoice. ":memory:" gives a private in-memory database.
func NewSQLite(ctx context.Context, path string) (*SQLDB, error) {
	const dbDirPerm = 0o750

	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), dbDirPerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(SQLiteDialect.DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite is single-writer; one connection also keeps :memory: databases alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	return open(ctx, db, SQLiteDialect)
}

func open(ctx context.Context, db *sql.DB, dialect Dialect) (*SQLDB, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.ExecContext(ctx, dialect.CreateTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tbl_invoice: %w", err)
	}
	return &SQLDB{DB: db, Dialect: dialect}, nil
}

// Close closes the database.
func (s *SQLDB) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// HealthCheck verifies the database connection is healthy.
func (s *SQLDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.DB.PingContext(ctx)
}
