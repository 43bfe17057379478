package privacysdk

import (
	"context"
	"net/http"
)

func (c *Client) GetRecommendations(ctx context.Context, userID string) (*RecommendationsResponse, error) {
	var resp RecommendationsResponse
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/privacy/recommendations"), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}
