package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories are reached through accessor methods so a
// Tx exposes exactly the same surface.
type Store interface {
	PrivacySettings() PrivacySettings
	AnonymousPreferences() AnonymousPreferences
	AnonymousHandles() AnonymousHandles
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Repositories used inside fn must come from tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type PrivacySettings interface {
	// GetSettings returns ErrNotFound when the user has never saved settings.
	GetSettings(ctx context.Context, userID string) (domain.PrivacySettings, error)

	// LockSettings inserts defaults when the user has no row yet, then reads
	// the stored row and holds it until the transaction ends. Use it inside a
	// Tx for read-modify-write.
	LockSettings(ctx context.Context, defaults domain.PrivacySettings) (domain.PrivacySettings, error)

	// UpsertSettings writes every field of s keyed by user_id. On conflict the
	// stored id and created_at are kept.
	UpsertSettings(ctx context.Context, s domain.PrivacySettings) error
}

type AnonymousPreferences interface {
	GetPreferences(ctx context.Context, userID string) (domain.AnonymousPreferences, error)

	// LockPreferences behaves like LockSettings.
	LockPreferences(ctx context.Context, defaults domain.AnonymousPreferences) (domain.AnonymousPreferences, error)

	UpsertPreferences(ctx context.Context, p domain.AnonymousPreferences) error
}

type AnonymousHandles interface {
	// ListActiveHandles returns active handles newest first.
	ListActiveHandles(ctx context.Context, userID string) ([]domain.AnonymousHandle, error)

	// LockUserHandles serialises handle creation for userID until the
	// transaction ends.
	LockUserHandles(ctx context.Context, userID string) error

	CountActiveHandles(ctx context.Context, userID string) (int, error)

	// ActiveHandleExists matches case-insensitively.
	ActiveHandleExists(ctx context.Context, userID, handle string) (bool, error)

	// CreateHandle returns ErrAlreadyExists when the user already has an
	// active handle with the same case-folded name.
	CreateHandle(ctx context.Context, h domain.AnonymousHandle) error

	GetHandle(ctx context.Context, userID, handleID string) (domain.AnonymousHandle, error)

	// DeactivateHandle returns ErrNotFound when no handle with that id
	// belongs to userID.
	DeactivateHandle(ctx context.Context, userID, handleID string) error
}

// Profiles reaches the identity columns of the shared profiles table.
type Profiles interface {
	GetProfileIdentity(ctx context.Context, userID string) (domain.ProfileIdentity, error)

	// UpdateProfileIdentity returns ErrNotFound when the profile row is missing.
	UpdateProfileIdentity(ctx context.Context, p domain.ProfileIdentity) error

	CreateProfile(ctx context.Context, p domain.ProfileIdentity) error
}
