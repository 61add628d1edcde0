// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account on the job board.
// It carries identity and credentials only; contact details and the
// employer/applicant distinction live on the profile feature's entity.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the user's unique handle used for authentication.
	Username string `gorm:"uniqueIndex;size:150;not null"`

	// Email is the user's email address.
	Email string `gorm:"size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
