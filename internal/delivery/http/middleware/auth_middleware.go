// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"net/http"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware is the gate in front of every protected route. It reads the
// raw session token from the Authorization header (no "Bearer " scheme
// prefix), verifies it and injects the account id into the request context.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(echo.HeaderAuthorization)
		if token == "" {
			return response.Failure(c, http.StatusUnauthorized, "No token, Unauthorized user")
		}

		accountID, err := m.tokenSvc.Verify(token)
		if err != nil {
			return response.Failure(c, http.StatusUnauthorized, "Invalid token")
		}

		deliverycontext.SetAccountID(c, accountID)

		return next(c)
	}
}
