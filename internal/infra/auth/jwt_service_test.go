package auth

import (
	"testing"
	"time"

	"passport/config"
	domainerrors "passport/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = secret

	return cfg
}

func TestJWTService_SignAndVerify(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, svc)

	accountID := uuid.New()

	token, err := svc.Sign(accountID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	verifiedID, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, accountID, verifiedID)
}

func TestJWTService_TokenValidityWindow(t *testing.T) {
	secret := "test_secret_key_very_long_for_testing"
	svc, err := NewJWTService(testTokenConfig(secret))
	require.NoError(t, err)

	tokenString, err := svc.Sign(uuid.New())
	require.NoError(t, err)

	parsed, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)

	assert.Equal(t, tokenTTL, exp.Sub(iat.Time))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	id, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	assert.Equal(t, uuid.Nil, id)
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer, err := NewJWTService(testTokenConfig("signing_secret_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testTokenConfig("another_secret_very_long_for_testing"))
	require.NoError(t, err)

	token, err := signer.Sign(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_secret_key_very_long_for_testing"
	svc, err := NewJWTService(testTokenConfig(secret))
	require.NoError(t, err)

	// Mint an already-expired token with the same secret and algorithm.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsUnexpectedSigningMethod(t *testing.T) {
	secret := "test_secret_key_very_long_for_testing"
	svc, err := NewJWTService(testTokenConfig(secret))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_MissingSubject(t *testing.T) {
	secret := "test_secret_key_very_long_for_testing"
	svc, err := NewJWTService(testTokenConfig(secret))
	require.NoError(t, err)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := noSub.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
