// Package dto defines data transfer objects for the application feature's HTTP transport layer.
package dto

import (
	"time"

	"jobboard_backend/internal/feature/application/domain/entity"
)

// ApplicationRes represents an application in responses.
type ApplicationRes struct {
	ID          uint      `json:"id"`
	JobID       uint      `json:"job_id"`
	JobTitle    string    `json:"job_title,omitempty"`
	ApplicantID uint      `json:"applicant_id"`
	ResumePath  string    `json:"resume_path"`
	CoverLetter string    `json:"cover_letter"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	AppliedAt   time.Time `json:"applied_at"`
}

// FromApplication converts an entity to its response shape.
func FromApplication(a *entity.Application) ApplicationRes {
	res := ApplicationRes{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		ResumePath:  a.ResumePath,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		Notes:       a.Notes,
		AppliedAt:   a.AppliedAt,
	}
	if a.Job != nil {
		res.JobTitle = a.Job.Title
	}
	return res
}

// ApplyRes confirms a submitted application.
type ApplyRes struct {
	Message     string         `json:"message"`
	Application ApplicationRes `json:"application"`
}

// UpdateStatusReq is the request body for the review endpoint.
type UpdateStatusReq struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// ApplicationListRes lists a job's applications for its poster.
type ApplicationListRes struct {
	Applications []ApplicationRes `json:"applications"`
	Total        int              `json:"total"`
}
