// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"myflix/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string     `json:"username" validate:"required,alphanum,min=5"`
	Password string     `json:"password" validate:"required,min=8"`
	Email    string     `json:"email" validate:"required,email"`
	Birthday *time.Time `json:"birthday"`
}

// LoginInput defines the data required for a user to log in. The plaintext
// password lives only for the duration of the authentication call.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines the data for a profile update. All fields are
// required, matching registration; the password is re-hashed on every update.
type UpdateProfileInput struct {
	Username string     `json:"username" validate:"required,alphanum,min=5"`
	Password string     `json:"password" validate:"required,min=8"`
	Email    string     `json:"email" validate:"required,email"`
	Birthday *time.Time `json:"birthday"`
}

// --- Output DTOs ---

// UserView is the outward representation of a user record. It never carries
// the password hash.
type UserView struct {
	ID             uuid.UUID   `json:"id"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	Birthday       *time.Time  `json:"birthday,omitempty"`
	FavoriteMovies []uuid.UUID `json:"favoriteMovies"`
}

// NewUserView maps a domain user to its outward representation.
func NewUserView(user *entity.User) *UserView {
	favorites := user.FavoriteMovies
	if favorites == nil {
		favorites = []uuid.UUID{}
	}

	return &UserView{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Birthday:       user.Birthday,
		FavoriteMovies: favorites,
	}
}

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued token after a successful authentication.
type LoginOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken issues a fresh token for an already-authorized identity.
	// Previously issued, still-unexpired tokens remain valid.
	RefreshToken(ctx context.Context, user *entity.User) (*LoginOutput, error)

	GetProfile(ctx context.Context, username string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, username string, input *UpdateProfileInput) (*entity.User, error)
	Deregister(ctx context.Context, username string) error

	// AddFavorite and RemoveFavorite apply idempotent set mutations to the
	// authorized user's favorites. Ownership is checked by the route layer
	// before either is invoked.
	AddFavorite(ctx context.Context, user *entity.User, movieID uuid.UUID) (*entity.User, error)
	RemoveFavorite(ctx context.Context, user *entity.User, movieID uuid.UUID) (*entity.User, error)
}
