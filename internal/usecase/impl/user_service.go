// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"myflix/internal/domain/entity"
	domainerrors "myflix/internal/domain/errors"
	"myflix/internal/domain/repository"
	"myflix/internal/domain/service"
	"myflix/internal/usecase"
)

// dummyHash is a valid bcrypt hash of a random value. Login runs a comparison
// against it when the username is unknown so unknown-user and wrong-password
// attempts stay in the same timing class.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	movieRepo repository.MovieRepository
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		movieRepo: movieRepo,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "username", input.Username)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User

	// The duplicate check and the insert run inside one transaction so two
	// concurrent registrations for the same username cannot both pass the
	// check; the unique constraint backs this up at the store level.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing username")
		}

		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Birthday:     input.Birthday,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute user registration transaction", "error", err, "username", input.Username)

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies the supplied credential and, on success, issues a signed
// token. Unknown username and wrong password collapse into the same
// rejection so callers cannot enumerate registered usernames.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "username", input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(input.Password, dummyHash)
			srv.logger.Warn("Login failed: unknown username", "username", input.Username)

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed: password mismatch", "username", input.Username)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenSvc.Issue(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{User: user, Token: token}, nil
}

// RefreshToken issues a fresh token for an already-authorized identity.
// There is no revocation list; older unexpired tokens stay valid.
func (srv *userService) RefreshToken(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	token, err := srv.tokenSvc.Issue(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refreshed token")
	}
	srv.logger.Debug("Token refreshed", "userID", user.ID)

	return &usecase.LoginOutput{User: user, Token: token}, nil
}

// GetProfile retrieves a user record by username.
func (srv *userService) GetProfile(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return user, nil
}

// ListUsers retrieves every registered user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateProfile replaces the mutable fields of an existing user record.
func (srv *userService) UpdateProfile(ctx context.Context, username string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.logger.Info("Updating user profile", "username", username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during profile update")
	}

	user.Username = input.Username
	user.Email = input.Email
	user.PasswordHash = hashedPassword
	user.Birthday = input.Birthday

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.WithStack(err)
	}

	return srv.userRepo.FindByID(ctx, user.ID)
}

// Deregister removes a user account.
func (srv *userService) Deregister(ctx context.Context, username string) error {
	srv.logger.Info("Deregistering user", "username", username)

	if err := srv.userRepo.Delete(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("deregistration failed")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// AddFavorite adds a movie to the user's favorites set. The movie must exist;
// the store-level set insert keeps repeats idempotent and concurrent adds
// lossless.
func (srv *userService) AddFavorite(ctx context.Context, user *entity.User, movieID uuid.UUID) (*entity.User, error) {
	if _, err := srv.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, domainerrors.ErrMovieNotFound.WrapMessage("add favorite failed")
		}

		return nil, errors.Wrap(err, "failed to find movie")
	}

	updated, err := srv.userRepo.AddFavorite(ctx, user.ID, movieID)
	if err != nil {
		// The movie or the user may have been deleted after the existence
		// check; keep the caller-facing class accurate either way.
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, domainerrors.ErrMovieNotFound.WrapMessage("add favorite failed")
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("add favorite failed")
		}

		return nil, errors.Wrap(err, "failed to add favorite")
	}
	srv.logger.Debug("Favorite added", "userID", user.ID, "movieID", movieID)

	return updated, nil
}

// RemoveFavorite removes a movie from the user's favorites set. Removing an
// absent movie is a successful no-op.
func (srv *userService) RemoveFavorite(ctx context.Context, user *entity.User, movieID uuid.UUID) (*entity.User, error) {
	updated, err := srv.userRepo.RemoveFavorite(ctx, user.ID, movieID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove favorite")
	}
	srv.logger.Debug("Favorite removed", "userID", user.ID, "movieID", movieID)

	return updated, nil
}
