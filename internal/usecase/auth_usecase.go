// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"myflix/internal/domain/entity"
)

// AuthUsecase is the transport-free core of the authorization gate: a
// function from an Authorization header value to either a resolved identity
// or a typed rejection. The HTTP middleware adapts it to the request
// pipeline.
type AuthUsecase interface {
	// Authorize extracts the bearer token from the raw header value,
	// verifies signature and expiry, and resolves the embedded subject to a
	// live user record. Rejections are AppError values with the gate's
	// short, identity-agnostic messages.
	Authorize(ctx context.Context, authorizationHeader string) (*entity.User, error)
}
