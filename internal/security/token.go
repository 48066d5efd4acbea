package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim of a bearer token without verifying its
// signature. The client cannot verify backend tokens; the expiry is only
// used to warn about stale sessions. ok is false when the token is not a
// JWT or carries no exp claim.
func TokenExpiry(raw string) (expiry time.Time, ok bool) {
	if raw == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
