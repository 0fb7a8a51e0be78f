package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// profileView is the JSON shape of a profile. The date of birth renders as a
// plain calendar date, matching the format accepted on update.
type profileView struct {
	UserID         int64   `json:"user_id"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Gender         *string `json:"gender"`
	DateOfBirth    *string `json:"date_of_birth"`
	Country        *string `json:"country"`
	City           *string `json:"city"`
	ProfilePicture *string `json:"profile_picture"`
}

func toProfileView(profile *entity.Profile) *profileView {
	view := &profileView{
		UserID:         profile.UserID,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Gender:         profile.Gender,
		Country:        profile.Country,
		City:           profile.City,
		ProfilePicture: profile.ProfilePicture,
	}
	if profile.DateOfBirth != nil {
		dob := profile.DateOfBirth.Format(time.DateOnly)
		view.DateOfBirth = &dob
	}

	return view
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Missing or invalid access token")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toProfileView(profile), "")
}

// UpdateProfile merges the submitted fields into the authenticated user's
// profile, creating it on first use.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "Missing or invalid access token")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Profile updated successfully")
}
