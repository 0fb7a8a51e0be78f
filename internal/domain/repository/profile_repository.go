package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile row exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByUserID retrieves the profile belonging to the given user.
	FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error)

	// Create persists a new profile row for a user.
	Create(ctx context.Context, profile *entity.Profile) error

	// Save writes the full state of an existing profile row.
	Save(ctx context.Context, profile *entity.Profile) error
}
