package claims

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a token cannot be decoded at all.
var ErrMalformedToken = errors.New("malformed token")

// Claims is the locally decoded token payload. A zero ExpiresAt means the
// token carries no expiry and is treated as unexpired client-side; the
// backend still applies its own policy.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Decode parses token without verifying its signature and extracts the
// registered claims the session layer depends on. Decoding failure maps to
// ErrMalformedToken.
func Decode(token string) (Claims, error) {
	var registered jwt.RegisteredClaims

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, &registered); err != nil {
		return Claims{}, ErrMalformedToken
	}

	out := Claims{Subject: registered.Subject}
	if registered.ExpiresAt != nil {
		out.ExpiresAt = registered.ExpiresAt.Time
	}
	if registered.IssuedAt != nil {
		out.IssuedAt = registered.IssuedAt.Time
	}
	return out, nil
}

// Expired reports whether the claims are expired at now, allowing leeway of
// clock skew. Claims without an expiry are never expired.
func (c Claims) Expired(now time.Time, leeway time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !c.ExpiresAt.Add(leeway).After(now)
}
