// Package sqlstore implements store.Store on database/sql. The sqlite and
// postgres drivers supply the connection, migrations and dialect details.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/store"
)

// Dialect covers the differences between the supported databases.
type Dialect interface {
	Name() string

	// Placeholder returns the bind marker for the n-th (1-based) argument.
	Placeholder(n int) string

	IsUniqueViolation(err error) bool

	// ForUpdate is appended to reads that must hold the row until the
	// transaction ends. Empty when the database serialises writers itself.
	ForUpdate() string

	// UserLock returns a statement taking a transaction-scoped lock on one
	// (scope, user) pair, with the user id as its only argument. Empty when
	// no lock is needed.
	UserLock(scope string) string

	Migrate(db *sql.DB) error
}

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db      *sql.DB
	dialect Dialect
	q       *queries
}

var _ store.Store = (*Store)(nil)

func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, dialect: d, q: buildQueries(d)}
}

// DB exposes the pool for driver-specific setup and tests.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) ApplyMigrations() error { return s.dialect.Migrate(s.db) }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, dialect: s.dialect, q: s.q}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	// No-op after a successful commit.
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) PrivacySettings() store.PrivacySettings {
	return &settingsRepo{db: s.db, q: s.q}
}

func (s *Store) AnonymousPreferences() store.AnonymousPreferences {
	return &preferencesRepo{db: s.db, q: s.q}
}

func (s *Store) AnonymousHandles() store.AnonymousHandles {
	return &handlesRepo{db: s.db, q: s.q, dialect: s.dialect}
}

func (s *Store) Profiles() store.Profiles {
	return &profilesRepo{db: s.db, q: s.q, dialect: s.dialect}
}

type txStore struct {
	tx      *sql.Tx
	dialect Dialect
	q       *queries
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// The outer store owns the pool.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(context.Context) error { return nil }

// Migrations run on the outer store before any transaction.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Tx(context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(context.Context, func(store.Tx) error) error { return sql.ErrTxDone }

func (t *txStore) PrivacySettings() store.PrivacySettings {
	return &settingsRepo{db: t.tx, q: t.q}
}

func (t *txStore) AnonymousPreferences() store.AnonymousPreferences {
	return &preferencesRepo{db: t.tx, q: t.q}
}

func (t *txStore) AnonymousHandles() store.AnonymousHandles {
	return &handlesRepo{db: t.tx, q: t.q, dialect: t.dialect}
}

func (t *txStore) Profiles() store.Profiles {
	return &profilesRepo{db: t.tx, q: t.q, dialect: t.dialect}
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// rebind rewrites ? markers into the dialect's placeholders.
func rebind(d Dialect, query string) string {
	var b strings.Builder
	b.Grow(len(query) + 16)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString(d.Placeholder(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// QuestionMark and Dollar are the two placeholder styles in use.
func QuestionMark(int) string { return "?" }

func Dollar(n int) string { return "$" + strconv.Itoa(n) }

func utc(t time.Time) time.Time { return t.UTC() }
