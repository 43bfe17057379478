// Package sqlite is the embedded store driver, backed by modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/rally/internal/privacy/store/sqlstore"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// NewStore opens dsn, which may be a file path or ":memory:".
func NewStore(dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite serialises writers anyway, and a single connection keeps an
	// in-memory database alive for the life of the pool.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	for _, pragma := range []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return sqlstore.New(db, dialect{}), nil
}

type dialect struct{}

func (dialect) Name() string { return "sqlite" }

func (dialect) Placeholder(n int) string { return sqlstore.QuestionMark(n) }

func (dialect) IsUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}

// A single connection already serialises every transaction.
func (dialect) ForUpdate() string { return "" }

func (dialect) UserLock(string) string { return "" }

func (dialect) Migrate(db *sql.DB) error { return applyMigrations(db) }
