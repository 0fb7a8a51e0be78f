package model

import "time"

// ProfileModel mirrors the 'profiles' table. One row per user, created
// lazily on the first profile update. All descriptive columns are nullable
// so a fresh row carries no fabricated data.
type ProfileModel struct {
	UserID         int64      `gorm:"primaryKey"`
	FirstName      *string    `gorm:"type:varchar(50)"`
	LastName       *string    `gorm:"type:varchar(50)"`
	Gender         *string    `gorm:"type:varchar(16)"`
	DateOfBirth    *time.Time `gorm:"type:date"`
	Country        *string    `gorm:"type:varchar(64)"`
	City           *string    `gorm:"type:varchar(64)"`
	ProfilePicture *string    `gorm:"type:varchar(256)"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
