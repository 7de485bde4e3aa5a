package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	mockSvc "passport/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := &mockSvc.MockTokenService{}
	accountID := uuid.New()
	tokenSvc.On("Verify", "valid-token").Return(accountID, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthTestContext("valid-token")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		id, ok := deliverycontext.GetAccountID(c)
		assert.True(t, ok)
		assert.Equal(t, accountID, id)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	tokenSvc := &mockSvc.MockTokenService{}
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not run without a token")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token, Unauthorized user")
	tokenSvc.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := &mockSvc.MockTokenService{}
	tokenSvc.On("Verify", "garbage").
		Return(uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("verify failed"))

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("garbage")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not run with an invalid token")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}
