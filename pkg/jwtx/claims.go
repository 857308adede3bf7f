package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default lifetime for identity tokens. The token is
// the only session artifact the service holds, so the TTL bounds how long a
// login stays valid.
const DefaultTokenTTL = 24 * time.Hour

// Claims are the identity-token claims. The subject is the user's email.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the display name for the authenticated user.
	Username string `json:"username,omitempty"`
}

// NewIdentityClaims builds minimally-correct claims binding a subject to an
// issuance time and an expiry.
func NewIdentityClaims(subject, username, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
	}
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
