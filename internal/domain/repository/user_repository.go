// Package repository defines the persistence interfaces the domain depends on.
// Concrete implementations live in the infra layer.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"myflix/internal/domain/entity"
)

// ErrUserNotFound is returned when no user record matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the contract for persisting and querying user records.
// All mutations must be store-native atomic operations; the favorites
// primitives in particular are single-statement set operations, never a
// read-then-write performed by the caller.
type UserRepository interface {
	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves every registered user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user record.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the mutable profile fields of an existing user record.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user record by username. Returns ErrUserNotFound if
	// nothing was deleted.
	Delete(ctx context.Context, username string) error

	// AddFavorite atomically adds a movie to the user's favorites set and
	// returns the updated record. Adding an already-present movie is a no-op.
	AddFavorite(ctx context.Context, userID, movieID uuid.UUID) (*entity.User, error)

	// RemoveFavorite atomically removes a movie from the user's favorites set
	// and returns the updated record. Removing an absent movie is a no-op.
	RemoveFavorite(ctx context.Context, userID, movieID uuid.UUID) (*entity.User, error)
}
