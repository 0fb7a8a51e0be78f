// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record of the system. The ID is a surrogate key
// assigned by the database on insert and never changes afterwards.
// Login and Mail are globally unique; the database enforces both with
// unique indexes, so a racing duplicate registration always loses.
type User struct {
	ID                 int64     // Surrogate key, assigned on insert, immutable.
	FirstName          string    // Given name, validated against the active validator variant.
	LastName           string    // Family name, validated against the active validator variant.
	Login              string    // Unique login identifier used for authentication.
	PasswordHash       string    // bcrypt digest of the password; plaintext is never stored.
	Mail               string    // Unique email address.
	DateOfRegistration time.Time // Set once at creation, immutable.
}
