package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/stretchr/testify/require"
)

func TestSettingsService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SettingsService{Store: st, Clock: fixedClock(testNow)}
	alice := self("alice")

	t.Run("unconfigured user reads nil", func(t *testing.T) {
		got, err := svc.GetSettings(ctx, alice, "alice")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("first merge starts from defaults", func(t *testing.T) {
		err := svc.MergeSettings(ctx, alice, "alice", domain.PrivacySettingsPatch{ShowEmail: domain.Ptr(true)})
		require.NoError(t, err)

		got, err := svc.GetSettings(ctx, alice, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)

		want := domain.DefaultPrivacySettings(got.ID, "alice", testNow)
		want.ShowEmail = true
		require.Equal(t, want, *got)
	})

	t.Run("merge leaves unspecified fields alone", func(t *testing.T) {
		before, err := svc.GetSettings(ctx, alice, "alice")
		require.NoError(t, err)

		later := testNow.Add(time.Hour)
		svc := &SettingsService{Store: st, Clock: fixedClock(later)}
		err = svc.MergeSettings(ctx, alice, "alice", domain.PrivacySettingsPatch{
			ActivityVisibility: domain.Ptr(domain.VisibilityFriends),
		})
		require.NoError(t, err)

		after, err := svc.GetSettings(ctx, alice, "alice")
		require.NoError(t, err)
		require.Equal(t, before.ID, after.ID)
		require.Equal(t, before.CreatedAt, after.CreatedAt)
		require.Equal(t, later, after.UpdatedAt)
		require.True(t, after.ShowEmail)
		require.Equal(t, domain.VisibilityFriends, after.ActivityVisibility)
		require.Equal(t, domain.VisibilityPublic, after.ProfileVisibility)
	})

	t.Run("invalid enum is rejected", func(t *testing.T) {
		err := svc.MergeSettings(ctx, alice, "alice", domain.PrivacySettingsPatch{
			AllowMessagesFrom: domain.Ptr(domain.MessagePolicy("everyone")),
		})
		require.ErrorIs(t, err, ErrInvalidRequest)
		require.ErrorIs(t, err, domain.ErrInvalidEnum)
	})

	t.Run("reset overwrites everything", func(t *testing.T) {
		before, err := svc.GetSettings(ctx, alice, "alice")
		require.NoError(t, err)

		require.NoError(t, svc.ResetToAnonymousDefaults(ctx, alice, "alice"))

		got, err := svc.GetSettings(ctx, alice, "alice")
		require.NoError(t, err)
		require.Equal(t, before.ID, got.ID)
		require.Equal(t, before.CreatedAt, got.CreatedAt)
		require.False(t, got.ShowEmail)
		require.False(t, got.ShowAvatar)
		require.Equal(t, domain.VisibilityPrivate, got.ProfileVisibility)
		require.Equal(t, domain.VisibilityPrivate, got.ActivityVisibility)
		require.Equal(t, domain.MessagesFromNone, got.AllowMessagesFrom)
		require.True(t, got.AnonymousMode)
		require.True(t, got.AnonymousComments)

		// Idempotent.
		require.NoError(t, svc.ResetToAnonymousDefaults(ctx, alice, "alice"))
		again, err := svc.GetSettings(ctx, alice, "alice")
		require.NoError(t, err)
		require.Equal(t, got, again)
	})

	t.Run("reset without a record creates one", func(t *testing.T) {
		bob := self("bob")
		require.NoError(t, svc.ResetToAnonymousDefaults(ctx, bob, "bob"))

		got, err := svc.GetSettings(ctx, bob, "bob")
		require.NoError(t, err)
		require.Equal(t, 100, domain.PrivacyScore(got))
	})

	t.Run("authorization", func(t *testing.T) {
		_, err := svc.GetSettings(ctx, self("mallory"), "alice")
		require.ErrorIs(t, err, ErrForbidden)

		err = svc.MergeSettings(ctx, self("alice", domain.PermPrivacyRead), "alice", domain.PrivacySettingsPatch{})
		require.ErrorIs(t, err, ErrForbidden)

		err = svc.ResetToAnonymousDefaults(ctx, self("mallory"), "alice")
		require.ErrorIs(t, err, ErrForbidden)

		got, err := svc.GetSettings(ctx, admin, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)
	})
}

func TestConcurrentMergesKeepEveryField(t *testing.T) {
	ctx := context.Background()
	svc := &SettingsService{Store: newTestStore(t)}
	on := true

	patches := []domain.PrivacySettingsPatch{
		{ShowEmail: &on},
		{ShowPhone: &on},
		{MarketingEmails: &on},
		{LocationHistory: &on},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(patches))
	for i, p := range patches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = svc.MergeSettings(ctx, self("alice"), "alice", p)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	got, err := svc.GetSettings(ctx, self("alice"), "alice")
	require.NoError(t, err)
	require.True(t, got.ShowEmail)
	require.True(t, got.ShowPhone)
	require.True(t, got.MarketingEmails)
	require.True(t, got.LocationHistory)
}
