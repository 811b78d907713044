package persistence

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"my-videos/infrastructure/configuration"

	_ "github.com/mattn/go-sqlite3"
)

// NewSqliteDb opens the file-backed store, creating the file on first run.
func NewSqliteDb() (*sql.DB, error) {
	path := configuration.C.Database.Sqlite.Path

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// Single shared connection per process; SQLite allows one writer anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	return db, nil
}
