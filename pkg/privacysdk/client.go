package privacysdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Me addresses the subject of the client's token.
const Me = "me"

// TokenSource supplies the bearer token for each request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) { return string(t), nil }

// Client is a client for the privacy service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Tokens: tokens,
	}
}

// Bool returns a pointer to v, for building updates.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for building updates.
func String(v string) *string { return &v }
