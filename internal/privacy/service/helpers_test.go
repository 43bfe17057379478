package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/internal/privacy/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock { return func() time.Time { return t } }

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func self(userID string, perms ...string) domain.Caller {
	if len(perms) == 0 {
		perms = []string{domain.PermPrivacyRead, domain.PermPrivacyWrite}
	}
	return domain.Caller{UserID: userID, Permissions: perms}
}

var admin = domain.Caller{UserID: "admin-1", Permissions: []string{domain.PermPrivacyAdmin}}

// settingsWriteFails wraps a store so settings upserts inside a transaction
// fail with err.
type settingsWriteFails struct {
	store.Store
	err error
}

func (s *settingsWriteFails) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&failingTx{baseTx: tx, err: s.err})
	})
}

// baseTx renames the embedded field so it does not shadow the Tx method.
type baseTx = store.Tx

var _ store.Tx = (*failingTx)(nil)

type failingTx struct {
	baseTx
	err error
}

func (t *failingTx) PrivacySettings() store.PrivacySettings {
	return failingSettings{PrivacySettings: t.baseTx.PrivacySettings(), err: t.err}
}

type failingSettings struct {
	store.PrivacySettings
	err error
}

func (f failingSettings) UpsertSettings(context.Context, domain.PrivacySettings) error { return f.err }
