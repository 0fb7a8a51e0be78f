package service

// TokenService defines the interface for issuing and validating the signed
// identity tokens handed out after a successful login.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed access token bound to the given user id.
	Generate(userID int64) (string, error)

	// Validate checks a token string and recovers the user id it was bound to.
	Validate(tokenString string) (int64, error)
}
