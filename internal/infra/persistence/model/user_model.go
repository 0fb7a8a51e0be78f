// Package model defines the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table. PostgreSQL assigns ids from the table
// sequence, so ids are integers and strictly increasing.
type UserModel struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	FirstName          string    `gorm:"type:varchar(50);not null"`
	LastName           string    `gorm:"type:varchar(50);not null"`
	Login              string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Mail               string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	DateOfRegistration time.Time `gorm:"autoCreateTime"`

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
