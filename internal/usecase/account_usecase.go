// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// ConfirmPassword is only considered by the strict validator variant.
type RegisterInput struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Login           string `json:"login"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Mail            string `json:"mail"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's assigned id.
type RegisterOutput struct {
	UserID int64
}

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	AccessToken string
}

// PublicUser is the subset of User fields exposed to unauthenticated callers.
type PublicUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Login     string `json:"login"`
	Mail      string `json:"mail"`
}

// AccountUsecase defines the interface for registration and login operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, id int64) (*PublicUser, error)
}
