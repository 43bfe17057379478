package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

type VerifyOptions struct {
	// Issuer the token must carry. Empty disables the check.
	Issuer string

	// Audience values of which at least one must be present. Empty disables the check.
	Audience []string

	// Leeway tolerated on exp and nbf.
	Leeway time.Duration
}

var (
	ErrMissingKID = errors.New("jwtx: missing kid")
	ErrKeyType    = errors.New("jwtx: key type does not match algorithm")
	ErrIssuer     = errors.New("jwtx: issuer mismatch")
	ErrAudience   = errors.New("jwtx: audience mismatch")
)

// KeySetVerifier verifies RS256, ES256 and EdDSA tokens against a KeySet.
// The key is selected by the kid header and must match the token's algorithm.
type KeySetVerifier struct {
	keys   *KeySet
	opts   VerifyOptions
	parser *jwt.Parser
}

func NewVerifier(keys *KeySet, opts VerifyOptions) *KeySetVerifier {
	return &KeySetVerifier{
		keys: keys,
		opts: opts,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{
				jwt.SigningMethodRS256.Alg(),
				jwt.SigningMethodES256.Alg(),
				jwt.SigningMethodEdDSA.Alg(),
			}),
			jwt.WithLeeway(opts.Leeway),
			jwt.WithExpirationRequired(),
		),
	}
}

func (v *KeySetVerifier) Verify(raw string) (Claims, error) {
	var claims Claims
	token, err := v.parser.ParseWithClaims(raw, &claims, v.keyFunc)
	if err != nil {
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}
	if !token.Valid {
		return Claims{}, errors.New("jwtx: invalid token")
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.opts.Audience); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

func (v *KeySetVerifier) keyFunc(t *jwt.Token) (any, error) {
	kid, _ := t.Header["kid"].(string)
	if kid == "" {
		return nil, ErrMissingKID
	}

	pub, err := v.keys.Get(kid)
	if err != nil {
		return nil, fmt.Errorf("jwtx: unknown kid %q: %w", kid, err)
	}

	switch t.Method.Alg() {
	case jwt.SigningMethodRS256.Alg():
		if k, ok := pub.(*rsa.PublicKey); ok {
			return k, nil
		}
	case jwt.SigningMethodES256.Alg():
		if k, ok := pub.(*ecdsa.PublicKey); ok {
			return k, nil
		}
	case jwt.SigningMethodEdDSA.Alg():
		if k, ok := pub.(ed25519.PublicKey); ok {
			return k, nil
		}
	}
	return nil, ErrKeyType
}
