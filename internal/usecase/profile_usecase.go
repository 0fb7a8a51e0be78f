package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// UpdateProfileInput defines the partial field set accepted by a profile
// update. Pointer fields distinguish "absent" from "present": only non-nil
// values are applied, so a JSON null leaves the stored column unchanged.
type UpdateProfileInput struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	Country        *string `json:"country,omitempty"`
	City           *string `json:"city,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the profile row for the authenticated user.
	GetProfile(ctx context.Context, userID int64) (*entity.Profile, error)

	// UpdateProfile merges the present fields of input into the user's
	// profile, creating the row lazily when it does not exist yet.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) error
}
