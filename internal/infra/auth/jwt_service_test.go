package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myflix/config"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	require.Error(t, err)

	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, defaultTokenTTL, svc.TokenDuration())
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID, "alice01")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice01", claims.Username)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(svc.TokenDuration()), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "alice01")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	for _, tokenString := range []string{"garbage", "a.b.c", ""} {
		_, err := svc.Validate(tokenString)
		require.Error(t, err, "token %q", tokenString)
	}
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := &jwtService{secret: "test-secret", tokenTTL: -time.Minute}

	token, err := svc.Issue(uuid.New(), "alice01")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

// Tokens signed with anything but HMAC are rejected, including alg "none".
func TestJWTService_Validate_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(tokenString)
	require.Error(t, err)
}

// A correctly signed token that carries no expiry claim must not validate;
// every accepted token is time-bounded.
func TestJWTService_Validate_RequiresExpiry(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	eternal := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Unix(),
	})
	tokenString, err := eternal.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(tokenString)
	require.Error(t, err)
}

func TestJWTService_Validate_NonUUIDSubject(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := signed.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(tokenString)
	require.Error(t, err)
}
