// Package entity defines the domain entities for the job feature.
package entity

import "time"

// JobType is the closed set of employment types.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance:
		return true
	}
	return false
}

// ExperienceLevel is the closed set of seniority levels.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// Valid reports whether l is a known experience level.
func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}

// Job is a posting in the catalog. Only active jobs appear in public
// listings. The poster is set at creation and never changes.
type Job struct {
	ID uint `gorm:"primaryKey"`

	Title string `gorm:"size:200;not null"`

	// CompanyID optionally links the job to a company directory entry.
	CompanyID *uint `gorm:"index"`

	// CompanyName is denormalized for display and search. When blank and
	// CompanyID is set, it is backfilled from the company's name on save.
	CompanyName string `gorm:"size:200"`

	Location     string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text;not null"`
	Requirements string `gorm:"type:text"`

	// Salary bounds are optional; when both are present min must not
	// exceed max.
	SalaryMin *float64
	SalaryMax *float64

	JobType         JobType         `gorm:"size:20;not null;default:full-time"`
	ExperienceLevel ExperienceLevel `gorm:"size:20;not null;default:entry"`

	// PostedByID is the immutable owner; only this user may update,
	// delete, or review applications for the job.
	PostedByID uint `gorm:"index;not null"`

	IsActive bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
