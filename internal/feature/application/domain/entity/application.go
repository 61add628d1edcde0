// Package entity defines the domain entities for the application feature.
package entity

import (
	"time"

	jobentity "jobboard_backend/internal/feature/job/domain/entity"
)

// Status is the closed set of application review states.
type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusAccepted    Status = "accepted"
)

// Valid reports whether s is a known status. Unknown values never reach
// storage; the record stays unchanged and the caller gets an error.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application links an applicant to a job, at most once per pair.
// The composite unique index backs the apply-once invariant under races.
type Application struct {
	ID uint `gorm:"primaryKey"`

	JobID uint           `gorm:"uniqueIndex:idx_job_applicant;not null"`
	Job   *jobentity.Job `gorm:"foreignKey:JobID"`

	ApplicantID uint `gorm:"uniqueIndex:idx_job_applicant;not null"`

	// ResumePath references the stored resume blob; no content processing.
	ResumePath  string `gorm:"size:255;not null"`
	CoverLetter string `gorm:"type:text;not null"`

	Status Status `gorm:"size:20;not null;default:pending"`

	// Notes are free-text reviewer remarks, editable by the job's poster.
	Notes string `gorm:"type:text"`

	AppliedAt time.Time `gorm:"autoCreateTime"`
}
