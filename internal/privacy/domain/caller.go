package domain

import "slices"

// Permission scopes understood by the privacy service.
const (
	PermPrivacyRead  = "privacy:read"
	PermPrivacyWrite = "privacy:write"
	PermPrivacyAdmin = "privacy:admin"
)

// Caller is the authenticated principal an operation runs on behalf of.
type Caller struct {
	UserID      string
	Permissions []string
}

func (c Caller) Has(perm string) bool {
	return slices.Contains(c.Permissions, perm)
}

func (c Caller) IsAdmin() bool {
	return c.Has(PermPrivacyAdmin)
}
