package http

import (
	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/aussiebroadwan/rally/pkg/privacysdk"
)

func toSettings(s domain.PrivacySettings) *privacysdk.PrivacySettings {
	return &privacysdk.PrivacySettings{
		ID:     s.ID,
		UserID: s.UserID,

		ProfileVisibility: string(s.ProfileVisibility),
		ShowEmail:         s.ShowEmail,
		ShowPhone:         s.ShowPhone,
		ShowLocation:      s.ShowLocation,
		ShowWebsite:       s.ShowWebsite,
		ShowBio:           s.ShowBio,
		ShowAvatar:        s.ShowAvatar,

		ActivityVisibility: string(s.ActivityVisibility),
		ShowPosts:          s.ShowPosts,
		ShowEvents:         s.ShowEvents,
		ShowServices:       s.ShowServices,
		ShowFollowers:      s.ShowFollowers,
		ShowFollowing:      s.ShowFollowing,

		AllowMessagesFrom:    string(s.AllowMessagesFrom),
		AllowFollowRequests:  s.AllowFollowRequests,
		AllowEventInvites:    s.AllowEventInvites,
		AllowServiceRequests: s.AllowServiceRequests,

		Searchable:        s.Searchable,
		ShowInSuggestions: s.ShowInSuggestions,
		ShowInLeaderboard: s.ShowInLeaderboard,

		AnalyticsEnabled:       s.AnalyticsEnabled,
		PersonalizationEnabled: s.PersonalizationEnabled,
		MarketingEmails:        s.MarketingEmails,

		AnonymousMode:     s.AnonymousMode,
		AnonymousPosts:    s.AnonymousPosts,
		AnonymousComments: s.AnonymousComments,
		AnonymousVotes:    s.AnonymousVotes,

		LocationSharing: s.LocationSharing,
		PreciseLocation: s.PreciseLocation,
		LocationHistory: s.LocationHistory,

		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toPreferences(p domain.AnonymousPreferences) *privacysdk.AnonymousPreferences {
	return &privacysdk.AnonymousPreferences{
		ID:                     p.ID,
		UserID:                 p.UserID,
		AutoAnonymousMode:      p.AutoAnonymousMode,
		DefaultPrivacyLevel:    string(p.DefaultPrivacyLevel),
		DefaultLocationSharing: string(p.DefaultLocationSharing),
		AllowIdentityReveal:    p.AllowIdentityReveal,
		AnonymousNotifications: p.AnonymousNotifications,
		AnonymousAnalytics:     p.AnonymousAnalytics,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func toHandle(h domain.AnonymousHandle) privacysdk.AnonymousHandle {
	return privacysdk.AnonymousHandle{
		ID:          h.ID,
		UserID:      h.UserID,
		Handle:      h.Handle,
		DisplayName: h.DisplayName,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
	}
}

func fromSettingsUpdate(u privacysdk.PrivacySettingsUpdate) domain.PrivacySettingsPatch {
	return domain.PrivacySettingsPatch{
		ProfileVisibility: enum[domain.Visibility](u.ProfileVisibility),
		ShowEmail:         u.ShowEmail,
		ShowPhone:         u.ShowPhone,
		ShowLocation:      u.ShowLocation,
		ShowWebsite:       u.ShowWebsite,
		ShowBio:           u.ShowBio,
		ShowAvatar:        u.ShowAvatar,

		ActivityVisibility: enum[domain.Visibility](u.ActivityVisibility),
		ShowPosts:          u.ShowPosts,
		ShowEvents:         u.ShowEvents,
		ShowServices:       u.ShowServices,
		ShowFollowers:      u.ShowFollowers,
		ShowFollowing:      u.ShowFollowing,

		AllowMessagesFrom:    enum[domain.MessagePolicy](u.AllowMessagesFrom),
		AllowFollowRequests:  u.AllowFollowRequests,
		AllowEventInvites:    u.AllowEventInvites,
		AllowServiceRequests: u.AllowServiceRequests,

		Searchable:        u.Searchable,
		ShowInSuggestions: u.ShowInSuggestions,
		ShowInLeaderboard: u.ShowInLeaderboard,

		AnalyticsEnabled:       u.AnalyticsEnabled,
		PersonalizationEnabled: u.PersonalizationEnabled,
		MarketingEmails:        u.MarketingEmails,

		AnonymousMode:     u.AnonymousMode,
		AnonymousPosts:    u.AnonymousPosts,
		AnonymousComments: u.AnonymousComments,
		AnonymousVotes:    u.AnonymousVotes,

		LocationSharing: u.LocationSharing,
		PreciseLocation: u.PreciseLocation,
		LocationHistory: u.LocationHistory,
	}
}

func fromPreferencesUpdate(u privacysdk.AnonymousPreferencesUpdate) domain.AnonymousPreferencesPatch {
	return domain.AnonymousPreferencesPatch{
		AutoAnonymousMode:      u.AutoAnonymousMode,
		DefaultPrivacyLevel:    enum[domain.PrivacyLevel](u.DefaultPrivacyLevel),
		DefaultLocationSharing: enum[domain.LocationSharing](u.DefaultLocationSharing),
		AllowIdentityReveal:    u.AllowIdentityReveal,
		AnonymousNotifications: u.AnonymousNotifications,
		AnonymousAnalytics:     u.AnonymousAnalytics,
	}
}

// enum converts an optional wire string; validation happens in the domain.
func enum[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
