package privacysdk

import (
	"context"
	"net/http"
)

// GetSettings returns nil when the user has never saved settings.
func (c *Client) GetSettings(ctx context.Context, userID string) (*PrivacySettings, error) {
	var resp SettingsResponse
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/privacy/settings"), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Settings, nil
}

// UpdateSettings merges the non-nil fields of u into the user's settings.
func (c *Client) UpdateSettings(ctx context.Context, userID string, u PrivacySettingsUpdate) error {
	return c.do(ctx, http.MethodPatch, userPath(userID, "/privacy/settings"), u, nil, http.StatusOK)
}

// ResetToAnonymousDefaults replaces the user's settings with the most
// private configuration.
func (c *Client) ResetToAnonymousDefaults(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, userPath(userID, "/privacy/settings/reset"), nil, nil, http.StatusOK)
}
