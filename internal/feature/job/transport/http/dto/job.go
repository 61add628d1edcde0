// Package dto defines data transfer objects for the job feature's HTTP transport layer.
package dto

import (
	"time"

	"jobboard_backend/internal/feature/job/domain/entity"
)

// JobReq is the request body for creating and updating a job.
// Enum validity and the salary-range rule are checked in the usecase so the
// client receives a single aggregate error instead of per-field failures.
type JobReq struct {
	Title           string   `json:"title" binding:"required,max=200"`
	CompanyID       *uint    `json:"company_id"`
	CompanyName     string   `json:"company_name" binding:"max=200"`
	Location        string   `json:"location" binding:"required,max=200"`
	Description     string   `json:"description" binding:"required"`
	Requirements    string   `json:"requirements"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
}

// JobRes represents a job in responses.
type JobRes struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	CompanyID       *uint     `json:"company_id,omitempty"`
	CompanyName     string    `json:"company_name"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements,omitempty"`
	SalaryMin       *float64  `json:"salary_min,omitempty"`
	SalaryMax       *float64  `json:"salary_max,omitempty"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	PostedByID      uint      `json:"posted_by_id"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// FromJob converts an entity to its response shape.
func FromJob(j *entity.Job) JobRes {
	return JobRes{
		ID:              j.ID,
		Title:           j.Title,
		CompanyID:       j.CompanyID,
		CompanyName:     j.CompanyName,
		Location:        j.Location,
		Description:     j.Description,
		Requirements:    j.Requirements,
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		JobType:         string(j.JobType),
		ExperienceLevel: string(j.ExperienceLevel),
		PostedByID:      j.PostedByID,
		IsActive:        j.IsActive,
		CreatedAt:       j.CreatedAt,
	}
}

// JobListRes is one page of the public listing.
type JobListRes struct {
	Jobs    []JobRes `json:"jobs"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
}

// JobDetailRes is the public detail payload.
type JobDetailRes struct {
	Job               JobRes `json:"job"`
	HasApplied        bool   `json:"has_applied"`
	ApplicationsCount int64  `json:"applications_count"`
}

// SearchItem is one entry of the search endpoint's result list.
type SearchItem struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// SearchRes is the search endpoint's response envelope.
type SearchRes struct {
	Jobs []SearchItem `json:"jobs"`
}

// HomeRes is the landing page payload.
type HomeRes struct {
	FeaturedJobs      []JobRes `json:"featured_jobs"`
	TotalJobs         int64    `json:"total_jobs"`
	TotalApplications int64    `json:"total_applications"`
	TotalCompanies    int64    `json:"total_companies"`
}
