package domain

import (
	"fmt"
	"time"
)

// PrivacyLevel is the default identity new content is published under.
type PrivacyLevel string

const (
	PrivacyLevelAnonymous    PrivacyLevel = "anonymous"
	PrivacyLevelPseudonymous PrivacyLevel = "pseudonymous"
	PrivacyLevelPublic       PrivacyLevel = "public"
)

func (l PrivacyLevel) Valid() bool {
	switch l {
	case PrivacyLevelAnonymous, PrivacyLevelPseudonymous, PrivacyLevelPublic:
		return true
	}
	return false
}

type LocationSharing string

const (
	LocationNone    LocationSharing = "none"
	LocationCity    LocationSharing = "city"
	LocationPrecise LocationSharing = "precise"
)

func (l LocationSharing) Valid() bool {
	switch l {
	case LocationNone, LocationCity, LocationPrecise:
		return true
	}
	return false
}

// AnonymousPreferences holds defaults applied to newly created content.
// It is independent of PrivacySettings and never reconciled with it.
type AnonymousPreferences struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	AutoAnonymousMode      bool            `json:"auto_anonymous_mode"`
	DefaultPrivacyLevel    PrivacyLevel    `json:"default_privacy_level"`
	DefaultLocationSharing LocationSharing `json:"default_location_sharing"`
	AllowIdentityReveal    bool            `json:"allow_identity_reveal"`
	AnonymousNotifications bool            `json:"anonymous_notifications"`
	AnonymousAnalytics     bool            `json:"anonymous_analytics"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultAnonymousPreferences(id, userID string, now time.Time) AnonymousPreferences {
	return AnonymousPreferences{
		ID:                     id,
		UserID:                 userID,
		DefaultPrivacyLevel:    PrivacyLevelPublic,
		DefaultLocationSharing: LocationNone,
		AllowIdentityReveal:    true,
		AnonymousNotifications: true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

type AnonymousPreferencesPatch struct {
	AutoAnonymousMode      *bool
	DefaultPrivacyLevel    *PrivacyLevel
	DefaultLocationSharing *LocationSharing
	AllowIdentityReveal    *bool
	AnonymousNotifications *bool
	AnonymousAnalytics     *bool
}

func (p AnonymousPreferencesPatch) Validate() error {
	if p.DefaultPrivacyLevel != nil && !p.DefaultPrivacyLevel.Valid() {
		return fmt.Errorf("default_privacy_level %q: %w", *p.DefaultPrivacyLevel, ErrInvalidEnum)
	}
	if p.DefaultLocationSharing != nil && !p.DefaultLocationSharing.Valid() {
		return fmt.Errorf("default_location_sharing %q: %w", *p.DefaultLocationSharing, ErrInvalidEnum)
	}
	return nil
}

func (p AnonymousPreferencesPatch) Apply(a *AnonymousPreferences, now time.Time) {
	set(&a.AutoAnonymousMode, p.AutoAnonymousMode)
	set(&a.DefaultPrivacyLevel, p.DefaultPrivacyLevel)
	set(&a.DefaultLocationSharing, p.DefaultLocationSharing)
	set(&a.AllowIdentityReveal, p.AllowIdentityReveal)
	set(&a.AnonymousNotifications, p.AnonymousNotifications)
	set(&a.AnonymousAnalytics, p.AnonymousAnalytics)
	a.UpdatedAt = now
}
