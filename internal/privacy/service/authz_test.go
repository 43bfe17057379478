package service

import (
	"testing"

	"github.com/aussiebroadwan/rally/internal/privacy/domain"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		caller domain.Caller
		target string
		access access
		want   error
	}{
		{"self read", self("u1", domain.PermPrivacyRead), "u1", accessRead, nil},
		{"write implies read", self("u1", domain.PermPrivacyWrite), "u1", accessRead, nil},
		{"read cannot write", self("u1", domain.PermPrivacyRead), "u1", accessWrite, ErrForbidden},
		{"no permissions", domain.Caller{UserID: "u1"}, "u1", accessRead, ErrForbidden},
		{"other user", self("u1"), "u2", accessRead, ErrForbidden},
		{"admin on other user", admin, "u2", accessWrite, nil},
		{"anonymous caller", domain.Caller{}, "u1", accessRead, ErrForbidden},
		{"missing target", self("u1"), " ", accessRead, ErrInvalidRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := authorize(tc.caller, tc.target, tc.access)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
