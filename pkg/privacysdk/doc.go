// Package privacysdk is a Go client for the Rally privacy service.
//
// A Client is bound to one bearer token source. Every user scoped method
// takes the target user ID; pass Me to act on the token's own subject.
//
//	c := privacysdk.NewClient("http://localhost:8081", privacysdk.StaticToken(accessToken))
//	settings, err := c.GetSettings(ctx, privacysdk.Me)
//	if errors.Is(err, privacysdk.ErrForbidden) {
//		// token lacks privacy scopes for this user
//	}
//
// Reads of records the user has never saved return a nil value and a nil
// error. Failed requests return an *APIError carrying the status code and
// server message.
package privacysdk
