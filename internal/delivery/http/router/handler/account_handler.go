// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	"passport/internal/delivery/http/validator"
	"passport/internal/domain/entity"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// accountView is the outward representation of an account. The password hash
// is deliberately absent.
type accountView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAccountView(account *entity.Account) accountView {
	return accountView{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

type signUpRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"min=6"`
}

// AccountHandler holds dependencies for the account lifecycle handlers.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// SignUp handles the account registration request.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, "Failed sign up.", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, "Failed sign up.", validationFields(err))
	}

	output, err := h.uc.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Successfully sign up.", response.Body{
		"user":  toAccountView(output.Account),
		"token": output.Token,
	})
}

// SignIn handles the sign-in request.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, "Failed sign in", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, "Failed sign in", validationFields(err))
	}

	output, err := h.uc.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Successfully sign in.", response.Body{
		"user":  toAccountView(output.Account),
		"token": output.Token,
	})
}

// ChangePassword replaces the password of the authenticated account.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return response.Failure(c, http.StatusUnauthorized, "No token, Unauthorized user")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, "Failed change password", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, "Failed change password", validationFields(err))
	}

	output, err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		AccountID: accountID,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Successfully changed password", response.Body{
		"user": toAccountView(output.Account),
	})
}

// validationFields unpacks the itemized field errors from the validator.
func validationFields(err error) []response.FieldError {
	var verrs *validator.Errors
	if errors.As(err, &verrs) {
		return verrs.Fields
	}

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Service is healthy", response.Body{
		"status": "ok",
	})
}
