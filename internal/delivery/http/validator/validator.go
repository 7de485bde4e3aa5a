// Package validator plugs go-playground/validator into echo and translates
// tag violations into the literal per-field messages of the API contract.
package validator

import (
	"reflect"
	"strings"

	"passport/internal/delivery/http/response"

	gpvalidator "github.com/go-playground/validator/v10"
)

// messages maps "<param>.<tag>" to the contract's literal message.
var messages = map[string]string{
	"username.required":       "Username is required",
	"email.required":          "Please include a valid email",
	"email.email":             "Please include a valid email",
	"password.required":       "Password is required",
	"password.min":            "Please enter a password with 6 or more character",
	"name.firstName.required": "First name is required",
	"name.lastName.required":  "Last name is required",
}

// Errors is the error returned on failed validation, carrying the itemized
// field failures for the 400 body.
type Errors struct {
	Fields []response.FieldError
}

// Error implements the error interface.
func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Msg)
	}

	return strings.Join(parts, "; ")
}

// requestValidator implements echo.Validator.
type requestValidator struct {
	validate *gpvalidator.Validate
}

// New builds the echo request validator.
func New() *requestValidator {
	validate := gpvalidator.New()

	// Report fields under their json names so params match the wire contract.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &requestValidator{validate: validate}
}

// Validate runs struct validation and converts violations into *Errors.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	violations, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]response.FieldError, 0, len(violations))
	for _, violation := range violations {
		param := paramName(violation.Namespace())
		fields = append(fields, response.FieldError{
			Msg:      messageFor(param, violation.Tag()),
			Param:    param,
			Location: "body",
		})
	}

	return &Errors{Fields: fields}
}

// paramName strips the request struct's own name from the namespace:
// "SignUpRequest.username" -> "username", "ProfileRequest.name.firstName" ->
// "name.firstName".
func paramName(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}

func messageFor(param, tag string) string {
	if msg, ok := messages[param+"."+tag]; ok {
		return msg
	}

	return param + " is invalid"
}
