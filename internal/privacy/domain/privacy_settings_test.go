package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDefaultPrivacySettings(t *testing.T) {
	s := domain.DefaultPrivacySettings("id-1", "user-1", t0)

	require.Equal(t, domain.VisibilityPublic, s.ProfileVisibility)
	require.Equal(t, domain.VisibilityPublic, s.ActivityVisibility)
	require.Equal(t, domain.MessagesFromAll, s.AllowMessagesFrom)
	require.False(t, s.ShowEmail)
	require.False(t, s.ShowPhone)
	require.False(t, s.ShowLocation)
	require.True(t, s.ShowBio)
	require.True(t, s.Searchable)
	require.False(t, s.MarketingEmails)
	require.False(t, s.AnonymousMode)
	require.False(t, s.LocationSharing)
	require.Equal(t, t0, s.CreatedAt)
	require.Equal(t, t0, s.UpdatedAt)
}

func TestPatchApplyOnlyTouchesSuppliedFields(t *testing.T) {
	s := domain.DefaultPrivacySettings("id-1", "user-1", t0)
	later := t0.Add(time.Hour)

	domain.PrivacySettingsPatch{
		ShowEmail:         domain.Ptr(true),
		ProfileVisibility: domain.Ptr(domain.VisibilityFriends),
	}.Apply(&s, later)

	want := domain.DefaultPrivacySettings("id-1", "user-1", t0)
	want.ShowEmail = true
	want.ProfileVisibility = domain.VisibilityFriends
	want.UpdatedAt = later
	require.Equal(t, want, s)
}

func TestPatchValidate(t *testing.T) {
	require.NoError(t, domain.PrivacySettingsPatch{}.Validate())

	err := domain.PrivacySettingsPatch{ProfileVisibility: domain.Ptr(domain.Visibility("everyone"))}.Validate()
	require.ErrorIs(t, err, domain.ErrInvalidEnum)

	err = domain.PrivacySettingsPatch{AllowMessagesFrom: domain.Ptr(domain.MessagePolicy("friends"))}.Validate()
	require.ErrorIs(t, err, domain.ErrInvalidEnum)
}

func TestApplyAnonymousBundle(t *testing.T) {
	s := domain.DefaultPrivacySettings("id-1", "user-1", t0)
	s.ShowEmail = true
	s.LocationSharing = true
	s.MarketingEmails = true

	later := t0.Add(24 * time.Hour)
	s.ApplyAnonymousBundle(later)

	require.Equal(t, "id-1", s.ID)
	require.Equal(t, "user-1", s.UserID)
	require.Equal(t, t0, s.CreatedAt)
	require.Equal(t, later, s.UpdatedAt)
	require.Equal(t, domain.VisibilityPrivate, s.ProfileVisibility)
	require.Equal(t, domain.VisibilityPrivate, s.ActivityVisibility)
	require.Equal(t, domain.MessagesFromNone, s.AllowMessagesFrom)
	require.True(t, s.AnonymousMode)
	require.True(t, s.AnonymousPosts)
	require.True(t, s.AnonymousComments)
	require.True(t, s.AnonymousVotes)
	require.False(t, s.ShowEmail)
	require.False(t, s.ShowAvatar)
	require.False(t, s.Searchable)
	require.False(t, s.MarketingEmails)
	require.False(t, s.LocationSharing)
	require.Equal(t, 100, domain.PrivacyScore(&s))

	t.Run("idempotent", func(t *testing.T) {
		again := s
		again.ApplyAnonymousBundle(later)
		require.Equal(t, s, again)
	})
}
