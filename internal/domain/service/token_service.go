package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a bearer token. ID (jti) keys the revocation list.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService mints and parses signed, time-limited bearer tokens.
type TokenService interface {
	// Issue signs a token for username that expires TTL() from now.
	Issue(username string) (token string, claims *Claims, err error)

	// Parse validates signature, algorithm and expiry and returns the claims.
	Parse(token string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
