// Package postgres is the server database driver, backed by pgx through
// database/sql.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/store/sqlstore"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const uniqueViolation = "23505"

// NewStore connects to dsn (a postgres:// URL) and verifies the connection.
func NewStore(ctx context.Context, dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return sqlstore.New(db, dialect{}), nil
}

type dialect struct{}

func (dialect) Name() string { return "postgres" }

func (dialect) Placeholder(n int) string { return sqlstore.Dollar(n) }

func (dialect) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (dialect) ForUpdate() string { return " FOR UPDATE" }

// UserLock takes an advisory lock released at commit or rollback.
func (dialect) UserLock(scope string) string {
	return "SELECT pg_advisory_xact_lock(hashtextextended('" + scope + ":' || ?::text, 0))"
}

func (dialect) Migrate(db *sql.DB) error { return applyMigrations(db) }
