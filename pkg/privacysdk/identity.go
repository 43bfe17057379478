package privacysdk

import (
	"context"
	"net/http"
)

func (c *Client) RevealIdentity(ctx context.Context, userID, realName string) error {
	req := RevealIdentityRequest{RealName: realName}
	return c.do(ctx, http.MethodPost, userPath(userID, "/identity/reveal"), req, nil, http.StatusOK)
}

func (c *Client) HideIdentity(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, userPath(userID, "/identity/hide"), nil, nil, http.StatusOK)
}

// IsAnonymousMode fails with ErrNotFound when the user has no profile.
func (c *Client) IsAnonymousMode(ctx context.Context, userID string) (bool, error) {
	var resp AnonymousModeResponse
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/identity/anonymous"), nil, &resp, http.StatusOK); err != nil {
		return false, err
	}
	return resp.IsAnonymous, nil
}
