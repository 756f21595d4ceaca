package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by every issued token.
type Claims struct {
	UserID   uuid.UUID `json:"-"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the signed,
// time-bounded tokens that prove a prior successful authentication.
type TokenService interface {
	// Issue creates a new signed token embedding the user's identity,
	// valid from now until now plus the configured lifetime.
	Issue(userID uuid.UUID, username string) (string, error)

	// Validate verifies a token's signature, structure and expiry and
	// returns its claims. Expired tokens are reported via jwt.ErrTokenExpired.
	Validate(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
