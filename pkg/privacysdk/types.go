package privacysdk

import "time"

// ============================================================================
// Records
// ============================================================================

// PrivacySettings is the per-user visibility and permission record.
type PrivacySettings struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// Profile visibility: "public", "friends" or "private"
	ProfileVisibility string `json:"profile_visibility"`
	ShowEmail         bool   `json:"show_email"`
	ShowPhone         bool   `json:"show_phone"`
	ShowLocation      bool   `json:"show_location"`
	ShowWebsite       bool   `json:"show_website"`
	ShowBio           bool   `json:"show_bio"`
	ShowAvatar        bool   `json:"show_avatar"`

	// Activity visibility: "public", "friends" or "private"
	ActivityVisibility string `json:"activity_visibility"`
	ShowPosts          bool   `json:"show_posts"`
	ShowEvents         bool   `json:"show_events"`
	ShowServices       bool   `json:"show_services"`
	ShowFollowers      bool   `json:"show_followers"`
	ShowFollowing      bool   `json:"show_following"`

	// Who may message the user: "all", "followers" or "none"
	AllowMessagesFrom    string `json:"allow_messages_from"`
	AllowFollowRequests  bool   `json:"allow_follow_requests"`
	AllowEventInvites    bool   `json:"allow_event_invites"`
	AllowServiceRequests bool   `json:"allow_service_requests"`

	Searchable        bool `json:"searchable"`
	ShowInSuggestions bool `json:"show_in_suggestions"`
	ShowInLeaderboard bool `json:"show_in_leaderboard"`

	AnalyticsEnabled       bool `json:"analytics_enabled"`
	PersonalizationEnabled bool `json:"personalization_enabled"`
	MarketingEmails        bool `json:"marketing_emails"`

	AnonymousMode     bool `json:"anonymous_mode"`
	AnonymousPosts    bool `json:"anonymous_posts"`
	AnonymousComments bool `json:"anonymous_comments"`
	AnonymousVotes    bool `json:"anonymous_votes"`

	LocationSharing bool `json:"location_sharing"`
	PreciseLocation bool `json:"precise_location"`
	LocationHistory bool `json:"location_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrivacySettingsUpdate is a partial settings update. Only non-nil fields
// are sent.
type PrivacySettingsUpdate struct {
	ProfileVisibility *string `json:"profile_visibility,omitempty"`
	ShowEmail         *bool   `json:"show_email,omitempty"`
	ShowPhone         *bool   `json:"show_phone,omitempty"`
	ShowLocation      *bool   `json:"show_location,omitempty"`
	ShowWebsite       *bool   `json:"show_website,omitempty"`
	ShowBio           *bool   `json:"show_bio,omitempty"`
	ShowAvatar        *bool   `json:"show_avatar,omitempty"`

	ActivityVisibility *string `json:"activity_visibility,omitempty"`
	ShowPosts          *bool   `json:"show_posts,omitempty"`
	ShowEvents         *bool   `json:"show_events,omitempty"`
	ShowServices       *bool   `json:"show_services,omitempty"`
	ShowFollowers      *bool   `json:"show_followers,omitempty"`
	ShowFollowing      *bool   `json:"show_following,omitempty"`

	AllowMessagesFrom    *string `json:"allow_messages_from,omitempty"`
	AllowFollowRequests  *bool   `json:"allow_follow_requests,omitempty"`
	AllowEventInvites    *bool   `json:"allow_event_invites,omitempty"`
	AllowServiceRequests *bool   `json:"allow_service_requests,omitempty"`

	Searchable        *bool `json:"searchable,omitempty"`
	ShowInSuggestions *bool `json:"show_in_suggestions,omitempty"`
	ShowInLeaderboard *bool `json:"show_in_leaderboard,omitempty"`

	AnalyticsEnabled       *bool `json:"analytics_enabled,omitempty"`
	PersonalizationEnabled *bool `json:"personalization_enabled,omitempty"`
	MarketingEmails        *bool `json:"marketing_emails,omitempty"`

	AnonymousMode     *bool `json:"anonymous_mode,omitempty"`
	AnonymousPosts    *bool `json:"anonymous_posts,omitempty"`
	AnonymousComments *bool `json:"anonymous_comments,omitempty"`
	AnonymousVotes    *bool `json:"anonymous_votes,omitempty"`

	LocationSharing *bool `json:"location_sharing,omitempty"`
	PreciseLocation *bool `json:"precise_location,omitempty"`
	LocationHistory *bool `json:"location_history,omitempty"`
}

// AnonymousPreferences holds the defaults applied to new content.
type AnonymousPreferences struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	AutoAnonymousMode bool `json:"auto_anonymous_mode"`
	// "anonymous", "pseudonymous" or "public"
	DefaultPrivacyLevel string `json:"default_privacy_level"`
	// "none", "city" or "precise"
	DefaultLocationSharing string `json:"default_location_sharing"`
	AllowIdentityReveal    bool   `json:"allow_identity_reveal"`
	AnonymousNotifications bool   `json:"anonymous_notifications"`
	AnonymousAnalytics     bool   `json:"anonymous_analytics"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AnonymousPreferencesUpdate struct {
	AutoAnonymousMode      *bool   `json:"auto_anonymous_mode,omitempty"`
	DefaultPrivacyLevel    *string `json:"default_privacy_level,omitempty"`
	DefaultLocationSharing *string `json:"default_location_sharing,omitempty"`
	AllowIdentityReveal    *bool   `json:"allow_identity_reveal,omitempty"`
	AnonymousNotifications *bool   `json:"anonymous_notifications,omitempty"`
	AnonymousAnalytics     *bool   `json:"anonymous_analytics,omitempty"`
}

// AnonymousHandle is a disposable display identity.
type AnonymousHandle struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ============================================================================
// Requests
// ============================================================================

type CreateHandleRequest struct {
	Handle string `json:"handle"`
	// DisplayName defaults to Handle when empty
	DisplayName string `json:"display_name,omitempty"`
}

type RevealIdentityRequest struct {
	RealName string `json:"real_name"`
}

// ============================================================================
// Responses
// ============================================================================

// ErrorResponse is the body of every non-2xx response. Operation specific
// responses carry the same error field next to their zero payload.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SettingsResponse carries a nil Settings when the user has never saved any.
type SettingsResponse struct {
	Settings *PrivacySettings `json:"settings"`
	Error    string           `json:"error,omitempty"`
}

// PreferencesResponse carries a nil Preferences when the user has never
// saved any.
type PreferencesResponse struct {
	Preferences *AnonymousPreferences `json:"preferences"`
	Error       string                `json:"error,omitempty"`
}

// HandlesResponse lists active handles, newest first.
type HandlesResponse struct {
	Handles []AnonymousHandle `json:"handles"`
	Error   string            `json:"error,omitempty"`
}

type CreateHandleResponse struct {
	Success bool             `json:"success"`
	Handle  *AnonymousHandle `json:"handle,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type AnonymousModeResponse struct {
	IsAnonymous bool   `json:"is_anonymous"`
	Error       string `json:"error,omitempty"`
}

// RecommendationsResponse lists privacy suggestions in a fixed order, with
// a 0..100 score of how protective the current settings are.
type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
	Score           int      `json:"score"`
	Error           string   `json:"error,omitempty"`
}

type HandleSuggestionResponse struct {
	Handle string `json:"handle"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	JWKS     string `json:"jwks"`
}
