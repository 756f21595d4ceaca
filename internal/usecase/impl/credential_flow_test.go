package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"myflix/config"
	domainerrors "myflix/internal/domain/errors"
	"myflix/internal/infra/auth"
	"myflix/internal/usecase"
)

// The whole credential lifecycle with real bcrypt and real token signing:
// register, log in, pass the gate, get rejected without credentials.
func TestCredentialFlow_RegisterLoginAuthorize(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "flow-test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	userRepo := newFakeUserRepo()
	movieRepo := newFakeMovieRepo()
	txManager := &fakeTxManager{userRepo: userRepo, movieRepo: movieRepo}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userSvc := NewUserService(txManager, userRepo, movieRepo, hasher, tokenSvc, logger)
	authSvc := NewAuthService(tokenSvc, userRepo, logger)
	ctx := context.Background()

	_, err = userSvc.Register(ctx, &usecase.RegisterInput{
		Username: "alice01",
		Password: "hunter2pass",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	output, err := userSvc.Login(ctx, &usecase.LoginInput{
		Username: "alice01",
		Password: "hunter2pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, output.Token)

	authorized, err := authSvc.Authorize(ctx, "Bearer "+output.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice01", authorized.Username)
	assert.Equal(t, output.User.ID, authorized.ID)

	_, err = authSvc.Authorize(ctx, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)

	// A refreshed token is a distinct credential that also passes the gate.
	refreshed, err := userSvc.RefreshToken(ctx, authorized)
	require.NoError(t, err)

	again, err := authSvc.Authorize(ctx, "Bearer "+refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, authorized.ID, again.ID)
}
