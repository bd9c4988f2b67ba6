package db

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN names a shared in-memory database. It lives as long as the
// process keeps a connection open and is never written to disk.
const MemoryDSN = "file:hobbyhub?mode=memory&cache=shared"

//go:embed schema.sql
var schema string

// Open connects to the SQLite database at dsn and applies the schema.
// The pool is capped at one connection so every query sees the same
// in-memory database.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := InitDatabase(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func InitDatabase(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
