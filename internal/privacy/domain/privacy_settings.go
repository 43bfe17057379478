package domain

import (
	"fmt"
	"time"
)

// Visibility is the audience a profile or its activity is shown to.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityFriends, VisibilityPrivate:
		return true
	}
	return false
}

// MessagePolicy controls who may start a conversation with the user.
type MessagePolicy string

const (
	MessagesFromAll       MessagePolicy = "all"
	MessagesFromFollowers MessagePolicy = "followers"
	MessagesFromNone      MessagePolicy = "none"
)

func (m MessagePolicy) Valid() bool {
	switch m {
	case MessagesFromAll, MessagesFromFollowers, MessagesFromNone:
		return true
	}
	return false
}

// PrivacySettings is the single per-user record of visibility and
// permission flags.
type PrivacySettings struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	ProfileVisibility Visibility `json:"profile_visibility"`
	ShowEmail         bool       `json:"show_email"`
	ShowPhone         bool       `json:"show_phone"`
	ShowLocation      bool       `json:"show_location"`
	ShowWebsite       bool       `json:"show_website"`
	ShowBio           bool       `json:"show_bio"`
	ShowAvatar        bool       `json:"show_avatar"`

	ActivityVisibility Visibility `json:"activity_visibility"`
	ShowPosts          bool       `json:"show_posts"`
	ShowEvents         bool       `json:"show_events"`
	ShowServices       bool       `json:"show_services"`
	ShowFollowers      bool       `json:"show_followers"`
	ShowFollowing      bool       `json:"show_following"`

	AllowMessagesFrom    MessagePolicy `json:"allow_messages_from"`
	AllowFollowRequests  bool          `json:"allow_follow_requests"`
	AllowEventInvites    bool          `json:"allow_event_invites"`
	AllowServiceRequests bool          `json:"allow_service_requests"`

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

// DefaultPrivacySettings returns the record a user gets when their first
// write is a partial update.
func DefaultPrivacySettings(id, userID string, now time.Time) PrivacySettings {
	return PrivacySettings{
		ID:     id,
		UserID: userID,

		ProfileVisibility: VisibilityPublic,
		ShowWebsite:       true,
		ShowBio:           true,
		ShowAvatar:        true,

		ActivityVisibility: VisibilityPublic,
		ShowPosts:          true,
		ShowEvents:         true,
		ShowServices:       true,
		ShowFollowers:      true,
		ShowFollowing:      true,

		AllowMessagesFrom:    MessagesFromAll,
		AllowFollowRequests:  true,
		AllowEventInvites:    true,
		AllowServiceRequests: true,

		Searchable:        true,
		ShowInSuggestions: true,
		ShowInLeaderboard: true,

		AnalyticsEnabled:       true,
		PersonalizationEnabled: true,

		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyAnonymousBundle overwrites every privacy-relevant field with the most
// private configuration. Only ID, UserID and CreatedAt are kept.
func (s *PrivacySettings) ApplyAnonymousBundle(now time.Time) {
	*s = PrivacySettings{
		ID:        s.ID,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: now,

		ProfileVisibility:  VisibilityPrivate,
		ActivityVisibility: VisibilityPrivate,
		AllowMessagesFrom:  MessagesFromNone,

		AnonymousMode:     true,
		AnonymousPosts:    true,
		AnonymousComments: true,
		AnonymousVotes:    true,
	}
}

// PrivacySettingsPatch carries a partial update. Nil fields are left as
// stored.
type PrivacySettingsPatch struct {
	ProfileVisibility *Visibility
	ShowEmail         *bool
	ShowPhone         *bool
	ShowLocation      *bool
	ShowWebsite       *bool
	ShowBio           *bool
	ShowAvatar        *bool

	ActivityVisibility *Visibility
	ShowPosts          *bool
	ShowEvents         *bool
	ShowServices       *bool
	ShowFollowers      *bool
	ShowFollowing      *bool

	AllowMessagesFrom    *MessagePolicy
	AllowFollowRequests  *bool
	AllowEventInvites    *bool
	AllowServiceRequests *bool

	Searchable        *bool
	ShowInSuggestions *bool
	ShowInLeaderboard *bool

	AnalyticsEnabled       *bool
	PersonalizationEnabled *bool
	MarketingEmails        *bool

	AnonymousMode     *bool
	AnonymousPosts    *bool
	AnonymousComments *bool
	AnonymousVotes    *bool

	LocationSharing *bool
	PreciseLocation *bool
	LocationHistory *bool
}

func (p PrivacySettingsPatch) Validate() error {
	if p.ProfileVisibility != nil && !p.ProfileVisibility.Valid() {
		return fmt.Errorf("profile_visibility %q: %w", *p.ProfileVisibility, ErrInvalidEnum)
	}
	if p.ActivityVisibility != nil && !p.ActivityVisibility.Valid() {
		return fmt.Errorf("activity_visibility %q: %w", *p.ActivityVisibility, ErrInvalidEnum)
	}
	if p.AllowMessagesFrom != nil && !p.AllowMessagesFrom.Valid() {
		return fmt.Errorf("allow_messages_from %q: %w", *p.AllowMessagesFrom, ErrInvalidEnum)
	}
	return nil
}

// Apply merges the non-nil fields of p into s and stamps UpdatedAt.
func (p PrivacySettingsPatch) Apply(s *PrivacySettings, now time.Time) {
	set(&s.ProfileVisibility, p.ProfileVisibility)
	set(&s.ShowEmail, p.ShowEmail)
	set(&s.ShowPhone, p.ShowPhone)
	set(&s.ShowLocation, p.ShowLocation)
	set(&s.ShowWebsite, p.ShowWebsite)
	set(&s.ShowBio, p.ShowBio)
	set(&s.ShowAvatar, p.ShowAvatar)

	set(&s.ActivityVisibility, p.ActivityVisibility)
	set(&s.ShowPosts, p.ShowPosts)
	set(&s.ShowEvents, p.ShowEvents)
	set(&s.ShowServices, p.ShowServices)
	set(&s.ShowFollowers, p.ShowFollowers)
	set(&s.ShowFollowing, p.ShowFollowing)

	set(&s.AllowMessagesFrom, p.AllowMessagesFrom)
	set(&s.AllowFollowRequests, p.AllowFollowRequests)
	set(&s.AllowEventInvites, p.AllowEventInvites)
	set(&s.AllowServiceRequests, p.AllowServiceRequests)

	set(&s.Searchable, p.Searchable)
	set(&s.ShowInSuggestions, p.ShowInSuggestions)
	set(&s.ShowInLeaderboard, p.ShowInLeaderboard)

	set(&s.AnalyticsEnabled, p.AnalyticsEnabled)
	set(&s.PersonalizationEnabled, p.PersonalizationEnabled)
	set(&s.MarketingEmails, p.MarketingEmails)

	set(&s.AnonymousMode, p.AnonymousMode)
	set(&s.AnonymousPosts, p.AnonymousPosts)
	set(&s.AnonymousComments, p.AnonymousComments)
	set(&s.AnonymousVotes, p.AnonymousVotes)

	set(&s.LocationSharing, p.LocationSharing)
	set(&s.PreciseLocation, p.PreciseLocation)
	set(&s.LocationHistory, p.LocationHistory)

	s.UpdatedAt = now
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T { return &v }
