package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "passport/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile/to/ghost", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	// Wrapped AppErrors keep their status and message through the chain.
	err := errors.Wrap(domainerrors.ErrProfileNotFound.WrapMessage("lookup failed"), "handler")
	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile not found")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestErrorMiddleware_DynamicMessage(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(domainerrors.ErrDuplicateAccount.WithMessage("taken@example.com already exist"), c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "taken@example.com already exist")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Method Not Allowed")
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("database exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal details never reach the client.
	assert.NotContains(t, rec.Body.String(), "database exploded")
	assert.Contains(t, rec.Body.String(), "Server error")
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	_ = c.JSON(http.StatusOK, map[string]any{"success": true})
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Server error")
}
