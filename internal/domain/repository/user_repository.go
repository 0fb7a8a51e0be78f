// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned by Create when the storage-level unique
// constraint on login or mail rejects the row. The constraint is the final
// authority; the pre-check only exists for a friendlier fast path.
var ErrDuplicateUser = errors.New("duplicate user")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their surrogate key.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByLogin retrieves a single user by their unique login.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindByLoginOrMail retrieves any user whose login or mail matches the
	// given values. Used as the registration conflict pre-check.
	FindByLoginOrMail(ctx context.Context, login, mail string) (*entity.User, error)

	// Create persists a new user entity and fills in the assigned ID and
	// registration timestamp.
	Create(ctx context.Context, user *entity.User) error
}
