package handler

import (
	"net/http"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type nameView struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
}

type profileView struct {
	ID        uuid.UUID  `json:"id"`
	AccountID uuid.UUID  `json:"accountId"`
	Username  string     `json:"username"`
	Name      nameView   `json:"name"`
	FullName  string     `json:"fullName"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toProfileView(profile *entity.Profile) profileView {
	return profileView{
		ID:        profile.ID,
		AccountID: profile.AccountID,
		Username:  profile.Username,
		Name: nameView{
			FirstName:  profile.Name.FirstName,
			MiddleName: profile.Name.MiddleName,
			LastName:   profile.Name.LastName,
		},
		FullName:  profile.FullName(),
		BirthDate: profile.BirthDate,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}

type profileNameRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName" validate:"required"`
}

type upsertProfileRequest struct {
	Name      profileNameRequest `json:"name"`
	BirthDate *time.Time         `json:"birthDate"`
}

// ProfileHandler holds dependencies for the profile handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Upsert creates the authenticated account's profile, or replaces it when
// one already exists.
func (h *ProfileHandler) Upsert(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return response.Failure(c, http.StatusUnauthorized, "No token, Unauthorized user")
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, "Fail creating profile", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, "Fail creating profile", validationFields(err))
	}

	output, err := h.uc.Upsert(c.Request().Context(), &usecase.UpsertProfileInput{
		AccountID:  accountID,
		FirstName:  req.Name.FirstName,
		MiddleName: req.Name.MiddleName,
		LastName:   req.Name.LastName,
		BirthDate:  req.BirthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	statusCode := http.StatusCreated
	message := "Successfully create profile"
	if output.Updated {
		statusCode = http.StatusOK
		message = "Successfully update profile"
	}

	return response.Success(c, statusCode, message, response.Body{
		"profile": toProfileView(output.Profile),
	})
}

// GetByUsername returns the public profile belonging to the given username.
func (h *ProfileHandler) GetByUsername(c echo.Context) error {
	profile, err := h.uc.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Successfully get profile", response.Body{
		"profile": toProfileView(profile),
	})
}
