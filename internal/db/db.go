package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anekzad/portfolio/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const connMaxLifetime = 5 * time.Minute

// Init opens the configured database. For the default on-disk sqlite setup it
// creates the data directory first, so a fresh checkout starts without any
// manual setup.
func Init(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.DBDriver == "sqlite" {
		dir := sqliteDir(cfg.DBConnection)
		if dir != "" {
			err := os.MkdirAll(dir, 0755)
			if err != nil {
				return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
			}
		}
	}

	conn, err := sqlx.Connect(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	conn.SetMaxOpenConns(cfg.DBMaxOpenConns)
	conn.SetMaxIdleConns(cfg.DBMaxIdleConns)
	conn.SetConnMaxLifetime(connMaxLifetime)

	slog.Info("database connected",
		"driver", cfg.DBDriver,
		"max_open_conns", cfg.DBMaxOpenConns,
	)

	return conn, nil
}

// sqliteDir extracts the directory holding the sqlite database file from a
// connection string, ignoring any ?_pragma=... options. Returns "" for
// in-memory databases and bare filenames, which need no directory created.
func sqliteDir(connection string) string {
	path := connection
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, "file:")

	if path == "" || path == ":memory:" || strings.Contains(connection, "mode=memory") {
		return ""
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return ""
	}
	return dir
}

func Close(db *sqlx.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
