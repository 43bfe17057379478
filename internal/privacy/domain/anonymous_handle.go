package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	HandleMinLen      = 3
	HandleMaxLen      = 30
	DisplayNameMaxLen = 50
)

// AnonymousHandle is a disposable display identity. Handles are never
// deleted, only deactivated.
type AnonymousHandle struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NormalizeHandle trims and validates a requested handle.
func NormalizeHandle(raw string) (string, error) {
	h := strings.TrimSpace(raw)
	if len(h) < HandleMinLen || len(h) > HandleMaxLen {
		return "", ErrInvalidHandle
	}
	for _, r := range h {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return "", ErrInvalidHandle
		}
	}
	return h, nil
}

// NormalizeDisplayName trims the display name and falls back to handle when
// it is empty.
func NormalizeDisplayName(raw, handle string) (string, error) {
	d := strings.TrimSpace(raw)
	if d == "" {
		return handle, nil
	}
	if utf8.RuneCountInString(d) > DisplayNameMaxLen {
		return "", ErrDisplayTooLong
	}
	return d, nil
}

// HandleKey is the case-folded form handles are compared by.
func HandleKey(handle string) string {
	return strings.ToLower(handle)
}
