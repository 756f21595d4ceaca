// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"myflix/internal/domain/entity"
	domainerrors "myflix/internal/domain/errors"
	"myflix/internal/domain/repository"
	"myflix/internal/domain/service"
	"myflix/internal/usecase"
)

const bearerPrefix = "Bearer "

// authService implements the AuthUsecase interface: the transport-independent
// decision core of the authorization gate.
type authService struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	tokenSvc service.TokenService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		tokenSvc: tokenSvc,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authorize runs the four gate checks in order: header shape, signature,
// expiry, subject resolution. The first failing check terminates the
// decision; the returned AppError carries only the short, identity-agnostic
// message while the precise cause is logged here.
func (srv *authService) Authorize(ctx context.Context, authorizationHeader string) (*entity.User, error) {
	if authorizationHeader == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	tokenString, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok || tokenString == "" {
		srv.logger.Debug("Authorization header is not a bearer token")

		return nil, domainerrors.ErrMissingCredentials
	}

	claims, err := srv.tokenSvc.Validate(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			srv.logger.Debug("Token rejected: expired")

			return nil, domainerrors.ErrTokenExpired
		}
		srv.logger.Debug("Token rejected: malformed or bad signature", "error", err)

		return nil, domainerrors.ErrTokenMalformed
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Token subject no longer exists", "subject", claims.UserID)

			return nil, domainerrors.ErrSubjectGone
		}
		srv.logger.Error("Failed to resolve token subject", "error", err)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve token subject")
	}

	return user, nil
}
