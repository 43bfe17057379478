package privacysdk

import (
	"context"
	"net/http"
)

// GetPreferences returns nil when the user has never saved preferences.
func (c *Client) GetPreferences(ctx context.Context, userID string) (*AnonymousPreferences, error) {
	var resp PreferencesResponse
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/privacy/preferences"), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Preferences, nil
}

func (c *Client) UpdatePreferences(ctx context.Context, userID string, u AnonymousPreferencesUpdate) error {
	return c.do(ctx, http.MethodPatch, userPath(userID, "/privacy/preferences"), u, nil, http.StatusOK)
}
