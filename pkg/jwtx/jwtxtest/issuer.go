// Package jwtxtest mints signed access tokens for tests of services that
// verify them with jwtx.
package jwtxtest

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/aussiebroadwan/rally/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
)

const (
	Issuer   = "https://auth.rally.test"
	Audience = "privacy"
	KeyID    = "test-ed25519"
)

// TokenIssuer signs EdDSA tokens and exposes the matching key set.
type TokenIssuer struct {
	priv ed25519.PrivateKey
	Keys *jwtx.KeySet
	JWKS jwtx.JWKS
}

func New(t testing.TB) *TokenIssuer {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed25519 key: %v", err)
	}

	jwk := jwtx.NewEd25519JWK(KeyID, pub)
	keys := jwtx.NewKeySet()
	if err := keys.AddJWK(jwk); err != nil {
		t.Fatalf("add jwk: %v", err)
	}

	return &TokenIssuer{priv: priv, Keys: keys, JWKS: jwtx.JWKS{Keys: []jwtx.JWK{jwk}}}
}

// Verifier returns a verifier that accepts this issuer's tokens.
func (i *TokenIssuer) Verifier() *jwtx.KeySetVerifier {
	return jwtx.NewVerifier(i.Keys, jwtx.VerifyOptions{Issuer: Issuer, Audience: []string{Audience}})
}

// Token returns a signed access token for subject valid for five minutes.
func (i *TokenIssuer) Token(t testing.TB, subject string, scopes ...string) string {
	t.Helper()

	now := time.Now()
	return i.Sign(t, jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(5 * time.Minute)),
		},
		Scopes: scopes,
	})
}

// Sign signs arbitrary claims with the issuer key.
func (i *TokenIssuer) Sign(t testing.TB, claims jwtx.Claims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	tok.Header["kid"] = KeyID
	s, err := tok.SignedString(i.priv)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}
