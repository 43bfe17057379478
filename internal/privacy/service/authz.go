package service

import (
	"errors"
	"strings"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
)

type access int

const (
	accessRead access = iota
	accessWrite
)

// authorize decides whether caller may act on userID's privacy data. Users
// may act on themselves with the matching permission; admins on anyone.
func authorize(caller domain.Caller, userID string, a access) error {
	if strings.TrimSpace(userID) == "" {
		return invalid(errors.New("user id is required"))
	}
	if caller.IsAdmin() {
		return nil
	}
	if caller.UserID == "" || caller.UserID != userID {
		return ErrForbidden
	}

	switch a {
	case accessRead:
		if caller.Has(domain.PermPrivacyRead) || caller.Has(domain.PermPrivacyWrite) {
			return nil
		}
	case accessWrite:
		if caller.Has(domain.PermPrivacyWrite) {
			return nil
		}
	}
	return ErrForbidden
}
