package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/stretchr/testify/require"
)

func TestDefaultAnonymousPreferences(t *testing.T) {
	p := domain.DefaultAnonymousPreferences("id", "user-1", t0)
	require.False(t, p.AutoAnonymousMode)
	require.Equal(t, domain.PrivacyLevelPublic, p.DefaultPrivacyLevel)
	require.Equal(t, domain.LocationNone, p.DefaultLocationSharing)
	require.True(t, p.AllowIdentityReveal)
	require.True(t, p.AnonymousNotifications)
	require.False(t, p.AnonymousAnalytics)
}

func TestAnonymousPreferencesPatch(t *testing.T) {
	p := domain.DefaultAnonymousPreferences("id", "user-1", t0)
	patch := domain.AnonymousPreferencesPatch{
		AutoAnonymousMode:   domain.Ptr(true),
		DefaultPrivacyLevel: domain.Ptr(domain.PrivacyLevelPseudonymous),
	}
	require.NoError(t, patch.Validate())

	later := t0.Add(time.Minute)
	patch.Apply(&p, later)
	require.True(t, p.AutoAnonymousMode)
	require.Equal(t, domain.PrivacyLevelPseudonymous, p.DefaultPrivacyLevel)
	require.Equal(t, domain.LocationNone, p.DefaultLocationSharing)
	require.Equal(t, later, p.UpdatedAt)
	require.Equal(t, t0, p.CreatedAt)

	bad := domain.AnonymousPreferencesPatch{DefaultLocationSharing: domain.Ptr(domain.LocationSharing("street"))}
	require.ErrorIs(t, bad.Validate(), domain.ErrInvalidEnum)
}
