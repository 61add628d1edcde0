// Package dto defines data transfer objects for the profile feature's HTTP transport layer.
package dto

import "time"

// ProfileRes represents a user's profile in responses.
type ProfileRes struct {
	UserID      uint      `json:"user_id"`
	AccountKind string    `json:"account_kind"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Bio         string    `json:"bio"`
	PicturePath string    `json:"picture_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateProfileReq represents the editable contact fields. The profile
// picture arrives as a separate multipart file part.
type UpdateProfileReq struct {
	Phone   string `form:"phone" binding:"max=20"`
	Address string `form:"address" binding:"max=255"`
	Bio     string `form:"bio"`
}

// ChangeKindReq carries the requested account kind. Values outside
// employer/applicant are ignored, not rejected.
type ChangeKindReq struct {
	AccountKind string `json:"account_kind" binding:"required"`
}

// ChangeKindRes reports the kind actually stored after the request.
type ChangeKindRes struct {
	AccountKind string `json:"account_kind"`
	Dashboard   string `json:"dashboard"`
}

// DashboardJob summarizes a posted job on the employer dashboard.
type DashboardJob struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	JobType   string    `json:"job_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardApplication summarizes one of the applicant's applications.
type DashboardApplication struct {
	ID        uint      `json:"id"`
	JobID     uint      `json:"job_id"`
	JobTitle  string    `json:"job_title"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

// DashboardRes is the kind-dependent dashboard payload.
type DashboardRes struct {
	AccountKind string `json:"account_kind"`

	// Employer fields
	PostedJobs        []DashboardJob `json:"posted_jobs,omitempty"`
	TotalJobs         int            `json:"total_jobs,omitempty"`
	TotalApplications int64          `json:"total_applications"`

	// Applicant fields
	Applications []DashboardApplication `json:"applications,omitempty"`
}
