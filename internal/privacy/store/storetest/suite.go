// Package storetest holds the behaviour every store driver must satisfy.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Run exercises a migrated store. newStore must return an empty store each
// time it is called.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("settings", func(t *testing.T) { testSettings(t, newStore(t)) })
	t.Run("preferences", func(t *testing.T) { testPreferences(t, newStore(t)) })
	t.Run("handles", func(t *testing.T) { testHandles(t, newStore(t)) })
	t.Run("profiles", func(t *testing.T) { testProfiles(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
	t.Run("locking", func(t *testing.T) { testLocking(t, newStore(t)) })
}

var base = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func testSettings(t *testing.T, s store.Store) {
	ctx := context.Background()
	repo := s.PrivacySettings()

	_, err := repo.GetSettings(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	settings := domain.DefaultPrivacySettings(idx.New().String(), "user-1", base)
	settings.ShowEmail = true
	settings.AllowMessagesFrom = domain.MessagesFromFollowers
	require.NoError(t, repo.UpsertSettings(ctx, settings))

	got, err := repo.GetSettings(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, settings, got)

	t.Run("upsert keeps id and created_at", func(t *testing.T) {
		later := base.Add(time.Hour)
		next := got
		next.ID = idx.New().String()
		next.CreatedAt = later
		next.UpdatedAt = later
		next.ApplyAnonymousBundle(later)
		require.NoError(t, repo.UpsertSettings(ctx, next))

		stored, err := repo.GetSettings(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, settings.ID, stored.ID)
		require.True(t, settings.CreatedAt.Equal(stored.CreatedAt))
		require.True(t, later.Equal(stored.UpdatedAt))
		require.Equal(t, domain.VisibilityPrivate, stored.ProfileVisibility)
		require.Equal(t, domain.MessagesFromNone, stored.AllowMessagesFrom)
		require.True(t, stored.AnonymousVotes)
		require.False(t, stored.ShowEmail)
	})
}

func testPreferences(t *testing.T, s store.Store) {
	ctx := context.Background()
	repo := s.AnonymousPreferences()

	_, err := repo.GetPreferences(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	p := domain.DefaultAnonymousPreferences(idx.New().String(), "user-1", base)
	p.DefaultLocationSharing = domain.LocationCity
	require.NoError(t, repo.UpsertPreferences(ctx, p))

	got, err := repo.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, p, got)

	p.AutoAnonymousMode = true
	p.UpdatedAt = base.Add(time.Minute)
	require.NoError(t, repo.UpsertPreferences(ctx, p))

	got, err = repo.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, got.AutoAnonymousMode)
	require.Equal(t, p.UpdatedAt, got.UpdatedAt)
}

func newHandle(userID, handle string, at time.Time) domain.AnonymousHandle {
	return domain.AnonymousHandle{
		ID:          idx.NewAt(at).String(),
		UserID:      userID,
		Handle:      handle,
		DisplayName: handle,
		IsActive:    true,
		CreatedAt:   at,
	}
}

func testHandles(t *testing.T, s store.Store) {
	ctx := context.Background()
	repo := s.AnonymousHandles()

	list, err := repo.ListActiveHandles(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	first := newHandle("user-1", "quiet_owl", base)
	second := newHandle("user-1", "night.walker", base.Add(time.Minute))
	other := newHandle("user-2", "quiet_owl", base)
	for _, h := range []domain.AnonymousHandle{first, second, other} {
		require.NoError(t, repo.CreateHandle(ctx, h))
	}

	list, err = repo.ListActiveHandles(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []domain.AnonymousHandle{second, first}, list)

	n, err := repo.CountActiveHandles(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	t.Run("case-insensitive uniqueness among active handles", func(t *testing.T) {
		ok, err := repo.ActiveHandleExists(ctx, "user-1", "QUIET_OWL")
		require.NoError(t, err)
		require.True(t, ok)

		err = repo.CreateHandle(ctx, newHandle("user-1", "Quiet_Owl", base.Add(2*time.Minute)))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("deactivate is scoped to owner", func(t *testing.T) {
		err := repo.DeactivateHandle(ctx, "user-2", first.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		h, err := repo.GetHandle(ctx, "user-1", first.ID)
		require.NoError(t, err)
		require.True(t, h.IsActive)
	})

	t.Run("deactivate hides handle and frees the name", func(t *testing.T) {
		require.NoError(t, repo.DeactivateHandle(ctx, "user-1", first.ID))
		require.NoError(t, repo.DeactivateHandle(ctx, "user-1", first.ID), "repeat is a no-op")

		list, err := repo.ListActiveHandles(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, []domain.AnonymousHandle{second}, list)

		h, err := repo.GetHandle(ctx, "user-1", first.ID)
		require.NoError(t, err)
		require.False(t, h.IsActive)

		require.NoError(t, repo.CreateHandle(ctx, newHandle("user-1", "quiet_owl", base.Add(3*time.Minute))))
	})

	t.Run("unknown handle", func(t *testing.T) {
		_, err := repo.GetHandle(ctx, "user-1", idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, repo.DeactivateHandle(ctx, "user-1", idx.New().String()), store.ErrNotFound)
	})
}

func testProfiles(t *testing.T, s store.Store) {
	ctx := context.Background()
	repo := s.Profiles()

	_, err := repo.GetProfileIdentity(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = repo.UpdateProfileIdentity(ctx, domain.ProfileIdentity{UserID: "user-1", UpdatedAt: base})
	require.ErrorIs(t, err, store.ErrNotFound)

	p := domain.ProfileIdentity{UserID: "user-1", IsAnonymous: true, UpdatedAt: base}
	require.NoError(t, repo.CreateProfile(ctx, p))
	require.ErrorIs(t, repo.CreateProfile(ctx, p), store.ErrAlreadyExists)

	p.Reveal("Ada Lovelace", base.Add(time.Hour))
	require.NoError(t, repo.UpdateProfileIdentity(ctx, p))

	got, err := repo.GetProfileIdentity(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func testTransactions(t *testing.T, s store.Store) {
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		settings := domain.DefaultPrivacySettings(idx.New().String(), "user-1", base)
		if err := tx.PrivacySettings().UpsertSettings(ctx, settings); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.PrivacySettings().GetSettings(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound, "rolled back")

	err = s.WithTx(ctx, func(tx store.Tx) error {
		require.Error(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), "nested transactions are rejected")
		settings := domain.DefaultPrivacySettings(idx.New().String(), "user-1", base)
		return tx.PrivacySettings().UpsertSettings(ctx, settings)
	})
	require.NoError(t, err)

	_, err = s.PrivacySettings().GetSettings(ctx, "user-1")
	require.NoError(t, err)
}

// parallel runs each fn in its own goroutine and returns the first error.
func parallel(fns ...func() error) error {
	var wg sync.WaitGroup
	errs := make(chan error, len(fns))
	for _, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- fn()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func testLocking(t *testing.T, s store.Store) {
	ctx := context.Background()

	t.Run("lock keeps an existing row", func(t *testing.T) {
		stored := domain.DefaultPrivacySettings(idx.NewAt(base).String(), "keeper", base)
		stored.ShowEmail = true
		require.NoError(t, s.PrivacySettings().UpsertSettings(ctx, stored))

		err := s.WithTx(ctx, func(tx store.Tx) error {
			got, err := tx.PrivacySettings().LockSettings(ctx,
				domain.DefaultPrivacySettings(idx.New().String(), "keeper", base.Add(time.Hour)))
			require.NoError(t, err)
			require.Equal(t, stored.ID, got.ID)
			require.True(t, got.ShowEmail)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("concurrent settings merges all land", func(t *testing.T) {
		setters := []func(*domain.PrivacySettings){
			func(ps *domain.PrivacySettings) { ps.ShowEmail = true },
			func(ps *domain.PrivacySettings) { ps.ShowPhone = true },
			func(ps *domain.PrivacySettings) { ps.ShowLocation = true },
			func(ps *domain.PrivacySettings) { ps.MarketingEmails = true },
			func(ps *domain.PrivacySettings) { ps.AnonymousMode = true },
			func(ps *domain.PrivacySettings) { ps.AnonymousVotes = true },
			func(ps *domain.PrivacySettings) { ps.LocationSharing = true },
			func(ps *domain.PrivacySettings) { ps.ProfileVisibility = domain.VisibilityPrivate },
		}

		var fns []func() error
		for _, set := range setters {
			fns = append(fns, func() error {
				return s.WithTx(ctx, func(tx store.Tx) error {
					now := time.Now().UTC()
					cur, err := tx.PrivacySettings().LockSettings(ctx,
						domain.DefaultPrivacySettings(idx.NewAt(now).String(), "racer", now))
					if err != nil {
						return err
					}
					set(&cur)
					return tx.PrivacySettings().UpsertSettings(ctx, cur)
				})
			})
		}
		require.NoError(t, parallel(fns...))

		got, err := s.PrivacySettings().GetSettings(ctx, "racer")
		require.NoError(t, err)
		require.True(t, got.ShowEmail)
		require.True(t, got.ShowPhone)
		require.True(t, got.ShowLocation)
		require.True(t, got.MarketingEmails)
		require.True(t, got.AnonymousMode)
		require.True(t, got.AnonymousVotes)
		require.True(t, got.LocationSharing)
		require.Equal(t, domain.VisibilityPrivate, got.ProfileVisibility)
		require.True(t, got.ShowBio, "untouched default survives")
	})

	t.Run("concurrent preference merges all land", func(t *testing.T) {
		setters := []func(*domain.AnonymousPreferences){
			func(p *domain.AnonymousPreferences) { p.AutoAnonymousMode = true },
			func(p *domain.AnonymousPreferences) { p.AnonymousAnalytics = true },
			func(p *domain.AnonymousPreferences) { p.AllowIdentityReveal = false },
			func(p *domain.AnonymousPreferences) { p.AnonymousNotifications = false },
		}

		var fns []func() error
		for _, set := range setters {
			fns = append(fns, func() error {
				return s.WithTx(ctx, func(tx store.Tx) error {
					now := time.Now().UTC()
					cur, err := tx.AnonymousPreferences().LockPreferences(ctx,
						domain.DefaultAnonymousPreferences(idx.NewAt(now).String(), "racer", now))
					if err != nil {
						return err
					}
					set(&cur)
					return tx.AnonymousPreferences().UpsertPreferences(ctx, cur)
				})
			})
		}
		require.NoError(t, parallel(fns...))

		got, err := s.AnonymousPreferences().GetPreferences(ctx, "racer")
		require.NoError(t, err)
		require.True(t, got.AutoAnonymousMode)
		require.True(t, got.AnonymousAnalytics)
		require.False(t, got.AllowIdentityReveal)
		require.False(t, got.AnonymousNotifications)
	})

	t.Run("user lock bounds concurrent handle creation", func(t *testing.T) {
		const limit = 3

		var fns []func() error
		for i := range 6 {
			fns = append(fns, func() error {
				return s.WithTx(ctx, func(tx store.Tx) error {
					repo := tx.AnonymousHandles()
					if err := repo.LockUserHandles(ctx, "racer"); err != nil {
						return err
					}
					n, err := repo.CountActiveHandles(ctx, "racer")
					if err != nil || n >= limit {
						return err
					}
					return repo.CreateHandle(ctx, newHandle("racer", fmt.Sprintf("racer-%d", i), time.Now().UTC()))
				})
			})
		}
		require.NoError(t, parallel(fns...))

		n, err := s.AnonymousHandles().CountActiveHandles(ctx, "racer")
		require.NoError(t, err)
		require.Equal(t, limit, n)
	})
}
