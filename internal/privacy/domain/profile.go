package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const RealNameMaxLen = 100

// ProfileIdentity is the part of the profile record that identity
// transitions read and write. The profile itself belongs to the profile
// service.
type ProfileIdentity struct {
	UserID             string    `json:"user_id"`
	RealName           string    `json:"real_name"`
	RealNameVisibility bool      `json:"real_name_visibility"`
	IsAnonymous        bool      `json:"is_anonymous"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AnonymousMode reports whether the profile presents as anonymous.
func (p ProfileIdentity) AnonymousMode() bool {
	return p.IsAnonymous && !p.RealNameVisibility
}

// Reveal moves the profile to the identified state under realName.
func (p *ProfileIdentity) Reveal(realName string, now time.Time) {
	p.RealName = realName
	p.RealNameVisibility = true
	p.IsAnonymous = false
	p.UpdatedAt = now
}

// Hide moves the profile to the anonymous state. The stored real name is
// kept but no longer shown.
func (p *ProfileIdentity) Hide(now time.Time) {
	p.RealNameVisibility = false
	p.IsAnonymous = true
	p.UpdatedAt = now
}

func NormalizeRealName(raw string) (string, error) {
	n := strings.TrimSpace(raw)
	if n == "" || utf8.RuneCountInString(n) > RealNameMaxLen {
		return "", ErrInvalidName
	}
	return n, nil
}

// IdentifiedSettingsPatch is the settings half of a reveal.
func IdentifiedSettingsPatch() PrivacySettingsPatch {
	return PrivacySettingsPatch{
		AnonymousMode:     Ptr(false),
		ProfileVisibility: Ptr(VisibilityPublic),
	}
}

// AnonymousSettingsPatch is the settings half of a hide.
func AnonymousSettingsPatch() PrivacySettingsPatch {
	return PrivacySettingsPatch{
		AnonymousMode:     Ptr(true),
		ProfileVisibility: Ptr(VisibilityPrivate),
	}
}
