// Package entity defines the domain entities for the profile feature.
package entity

import "time"

// AccountKind distinguishes employer and applicant capabilities.
// It is a closed set; anything outside it is rejected at the edges.
type AccountKind string

const (
	// AccountKindEmployer can post jobs and review applications.
	AccountKindEmployer AccountKind = "employer"

	// AccountKindApplicant can browse jobs and submit applications.
	// It is the default for lazily created profiles.
	AccountKindApplicant AccountKind = "applicant"
)

// Valid reports whether k is one of the two known kinds.
func (k AccountKind) Valid() bool {
	return k == AccountKindEmployer || k == AccountKindApplicant
}

// Profile carries the account kind and contact metadata attached to a user.
// A user has at most one profile; it is created lazily on the first
// dashboard-routing access, not at registration.
type Profile struct {
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user. One profile per user.
	UserID uint `gorm:"uniqueIndex;not null"`

	// AccountKind decides dashboard routing.
	AccountKind AccountKind `gorm:"size:20;not null;default:applicant"`

	Phone       string `gorm:"size:20"`
	Address     string `gorm:"size:255"`
	Bio         string `gorm:"type:text"`
	PicturePath string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
