// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"myflix/config"
	"myflix/internal/domain/service"
)

const defaultTokenTTL = time.Hour * 24 * 7

// jwtService implements the TokenService interface with HS256-signed JWTs.
// The signing secret is process-wide, injected at construction and read-only
// afterwards.
type jwtService struct {
	secret   string
	tokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService. A missing secret is a
// fatal startup condition, not a per-request error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.SecretKey.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey.Token,
		tokenTTL: ttl,
	}, nil
}

// Issue creates a signed token for the given identity, valid for the
// configured lifetime. Issuing a new token does not invalidate older,
// still-unexpired tokens for the same subject.
func (s *jwtService) Issue(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID.String(),
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate verifies the token's signature, algorithm and expiry and returns
// its claims. Only HMAC signing methods are accepted, and a token without an
// expiry claim is rejected outright.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		// Expiry is surfaced distinctly so the gate can report its own
		// rejection class; every other failure is a malformed token.
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(jwt.ErrTokenInvalidClaims, "unexpected claims type")
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(jwt.ErrTokenInvalidClaims, "missing subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(jwt.ErrTokenInvalidClaims, "subject is not a valid user id")
	}

	username, _ := mapClaims["username"].(string)

	claims := &service.Claims{
		UserID:   userID,
		Username: username,
	}
	claims.Subject = subject
	if exp, expErr := mapClaims.GetExpirationTime(); expErr == nil {
		claims.ExpiresAt = exp
	}

	return claims, nil
}

// TokenDuration returns the configured token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.tokenTTL
}
