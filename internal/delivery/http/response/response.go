// Package response renders the API envelope. Every body carries
// {errors, message, success} next to the payload keys (user, token, profile).
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// FieldError is one itemized validation failure, shaped like the historical
// wire contract: {msg, param, location}.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// Body holds the payload keys merged into the envelope.
type Body map[string]any

func write(c echo.Context, statusCode int, success bool, errs any, message string, payload Body) error {
	body := Body{
		"errors":  errs,
		"message": message,
		"success": success,
	}
	for key, value := range payload {
		body[key] = value
	}

	return c.JSON(statusCode, body)
}

// Success renders a successful response with an empty errors list.
func Success(c echo.Context, statusCode int, message string, payload Body) error {
	return write(c, statusCode, true, []FieldError{}, message, payload)
}

// Failure renders a single expected failure; errors carries the count 1 as
// the historical contract does.
func Failure(c echo.Context, statusCode int, message string) error {
	return write(c, statusCode, false, 1, message, nil)
}

// ValidationFailed renders a 400 with the itemized list of failing rules.
func ValidationFailed(c echo.Context, message string, errs []FieldError) error {
	if errs == nil {
		errs = []FieldError{}
	}

	return write(c, http.StatusBadRequest, false, errs, message, nil)
}
