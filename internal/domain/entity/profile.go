package entity

import "time"

// Profile holds the optional, user-editable data attached 1:1 to a User.
// Every field is nullable and independently updatable; the row is created
// lazily on the first profile update and cascade-deleted with the User.
type Profile struct {
	UserID         int64 // Foreign key to User; unique, enforcing the 1:1 relation.
	FirstName      *string
	LastName       *string
	Gender         *string
	DateOfBirth    *time.Time
	Country        *string
	City           *string
	ProfilePicture *string
}
