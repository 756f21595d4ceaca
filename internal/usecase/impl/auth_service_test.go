package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myflix/internal/domain/entity"
	domainerrors "myflix/internal/domain/errors"
	"myflix/internal/domain/service"
	"myflix/internal/usecase"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *fakeUserRepo
	tokenSvc *fakeTokenService
}

func createTestAuthService(t *testing.T) *authServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	tokenSvc := &fakeTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &authServiceFixtures{
		service:  NewAuthService(tokenSvc, userRepo, logger),
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

func TestAuthService_Authorize_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "alice01"}
	fx.userRepo.seed(user)
	fx.tokenSvc.claims = &service.Claims{UserID: user.ID, Username: user.Username}

	authorized, err := fx.service.Authorize(ctx, "Bearer sometoken")

	require.NoError(t, err)
	assert.Equal(t, user.ID, authorized.ID)
	assert.Equal(t, "alice01", authorized.Username)
}

func TestAuthService_Authorize_MissingHeader(t *testing.T) {
	fx := createTestAuthService(t)

	authorized, err := fx.service.Authorize(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, authorized)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
}

func TestAuthService_Authorize_NotBearer(t *testing.T) {
	fx := createTestAuthService(t)

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer ", "sometoken"} {
		authorized, err := fx.service.Authorize(context.Background(), header)

		require.Error(t, err, "header %q", header)
		assert.Nil(t, authorized)
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	}
}

func TestAuthService_Authorize_MalformedToken(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokenSvc.validateErr = errors.Wrap(jwt.ErrTokenSignatureInvalid, "token parse failed")

	authorized, err := fx.service.Authorize(context.Background(), "Bearer garbage")

	require.Error(t, err)
	assert.Nil(t, authorized)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestAuthService_Authorize_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokenSvc.validateErr = errors.Wrap(jwt.ErrTokenExpired, "token parse failed")

	authorized, err := fx.service.Authorize(context.Background(), "Bearer stale")

	require.Error(t, err)
	assert.Nil(t, authorized)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

// A structurally valid token whose subject has since been deleted must be
// rejected, not treated as an anonymous pass.
func TestAuthService_Authorize_SubjectGone(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokenSvc.claims = &service.Claims{UserID: uuid.New(), Username: "ghost"}

	authorized, err := fx.service.Authorize(context.Background(), "Bearer sometoken")

	require.Error(t, err)
	assert.Nil(t, authorized)
	assert.ErrorIs(t, err, domainerrors.ErrSubjectGone)
}

func TestAuthService_Authorize_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokenSvc.claims = &service.Claims{UserID: uuid.New(), Username: "alice01"}
	fx.userRepo.err = errors.New("connection refused")

	authorized, err := fx.service.Authorize(context.Background(), "Bearer sometoken")

	require.Error(t, err)
	assert.Nil(t, authorized)

	// The caller sees a generic service failure, never the store error.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.NotContains(t, appErr.Message(), "connection refused")
}
