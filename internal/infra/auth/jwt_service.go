// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
)

// tokenTTL is the fixed validity window of a session token: 360000 seconds
// (100 hours) from issuance. Expiry is the only termination; tokens are never
// revoked server-side.
const tokenTTL = 360000 * time.Second

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService. The process-wide signing
// secret is injected once here; both the minting and the verifying path use
// this same instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    tokenTTL,
	}, nil
}

// Sign mints a compact HS256 token embedding the account id and issuance time.
func (s *jwtService) Sign(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": accountID.String(),    // Subject (who the token is for)
		"iat": now.Unix(),            // Issued At
		"exp": now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token's signature, structure and expiry, and returns the
// embedded account id. Every failure mode maps to the same invalid-token error.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("failed to verify token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected claims type")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("subject claim missing")
	}

	accountID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("malformed subject claim")
	}

	return accountID, nil
}
