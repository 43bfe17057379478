package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/pkg/privacysdk"
)

func TestFromSettingsUpdate(t *testing.T) {
	var req privacysdk.PrivacySettingsUpdate
	require.NoError(t, json.Unmarshal([]byte(`{
		"profile_visibility": "friends",
		"allow_messages_from": "followers",
		"show_email": true,
		"location_history": false
	}`), &req))

	patch := fromSettingsUpdate(req)
	require.Equal(t, domain.VisibilityFriends, *patch.ProfileVisibility)
	require.Equal(t, domain.MessagePolicy("followers"), *patch.AllowMessagesFrom)
	require.True(t, *patch.ShowEmail)
	require.False(t, *patch.LocationHistory)
	require.Nil(t, patch.ActivityVisibility)
	require.Nil(t, patch.ShowPhone)
	require.NoError(t, patch.Validate())

	bad := fromSettingsUpdate(privacysdk.PrivacySettingsUpdate{ActivityVisibility: privacysdk.String("everyone")})
	require.ErrorIs(t, bad.Validate(), domain.ErrInvalidEnum)
}

func TestFromPreferencesUpdate(t *testing.T) {
	patch := fromPreferencesUpdate(privacysdk.AnonymousPreferencesUpdate{
		DefaultPrivacyLevel:    privacysdk.String("pseudonymous"),
		DefaultLocationSharing: privacysdk.String("city"),
		AnonymousAnalytics:     privacysdk.Bool(true),
	})

	require.Equal(t, domain.PrivacyLevel("pseudonymous"), *patch.DefaultPrivacyLevel)
	require.Equal(t, domain.LocationSharing("city"), *patch.DefaultLocationSharing)
	require.True(t, *patch.AnonymousAnalytics)
	require.Nil(t, patch.AutoAnonymousMode)
	require.NoError(t, patch.Validate())
}
