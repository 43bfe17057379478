package privacysdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListHandles returns active handles, newest first.
func (c *Client) ListHandles(ctx context.Context, userID string) ([]AnonymousHandle, error) {
	var resp HandlesResponse
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/privacy/handles"), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Handles, nil
}

// CreateHandle fails with ErrConflict when the handle is already active for
// the user or the user is at the handle limit.
func (c *Client) CreateHandle(ctx context.Context, userID string, req CreateHandleRequest) (*AnonymousHandle, error) {
	var resp CreateHandleResponse
	if err := c.do(ctx, http.MethodPost, userPath(userID, "/privacy/handles"), req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return resp.Handle, nil
}

func (c *Client) DeactivateHandle(ctx context.Context, userID, handleID string) error {
	path := userPath(userID, "/privacy/handles/"+url.PathEscape(handleID))
	return c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusOK)
}

// SuggestHandle asks the service for a random unused handle.
func (c *Client) SuggestHandle(ctx context.Context) (string, error) {
	var resp HandleSuggestionResponse
	if err := c.do(ctx, http.MethodGet, "/v1/privacy/handles/suggestion", nil, &resp, http.StatusOK); err != nil {
		return "", err
	}
	return resp.Handle, nil
}
