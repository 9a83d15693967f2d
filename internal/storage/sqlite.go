package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLite stores each key as a row in a single kv table. It is the durable
// backend for normal runs; tests use Memory instead.
type SQLite struct {
	db *sqlx.DB
}

func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if _, err = db.Exec(`
CREATE TABLE IF NOT EXISTS kv(
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) ([]byte, error) {
	var v []byte
	err := s.db.Get(&v, `SELECT value FROM kv WHERE key=?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *SQLite) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
	  INSERT INTO kv(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

func (s *SQLite) Close() error { return s.db.Close() }
