package usecase

import (
	"context"

	"jobboard_backend/internal/feature/job/domain/entity"
)

// PageSize is the number of jobs per listing page.
const PageSize = 12

// SearchLimit caps the number of results from the search endpoint.
const SearchLimit = 10

// FeaturedLimit is the number of jobs shown on the home page.
const FeaturedLimit = 6

// ListFilter holds the combinable public listing filters.
// A zero value for any field means "no constraint", not "match empty".
type ListFilter struct {
	// Query substring-matches title, company name, and location.
	Query string
	// JobType and ExperienceLevel are exact matches.
	JobType         string
	ExperienceLevel string
	// Location is a substring match.
	Location string
	// CompanyID is an exact match on the company reference.
	CompanyID *uint
	// Page is 1-based; values below 1 are treated as 1.
	Page int
}

// JobRepository abstracts the persistence layer for job entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type JobRepository interface {
	// Create persists a new job.
	Create(ctx context.Context, job *entity.Job) error

	// Update saves changes to an existing job.
	Update(ctx context.Context, job *entity.Job) error

	// Delete removes a job by ID.
	Delete(ctx context.Context, id uint) error

	// FindByID retrieves a job regardless of its active flag.
	FindByID(ctx context.Context, id uint) (*entity.Job, error)

	// ListActive returns one page of active jobs matching the filter,
	// newest first, plus the total match count.
	ListActive(ctx context.Context, filter ListFilter) ([]entity.Job, int64, error)

	// SearchActive returns up to limit active jobs whose title, company
	// name, or location contains the query substring.
	SearchActive(ctx context.Context, query string, limit int) ([]entity.Job, error)

	// FeaturedActive returns the newest active jobs for the home page.
	FeaturedActive(ctx context.Context, limit int) ([]entity.Job, error)

	// ListByPoster returns all jobs posted by a user, newest first.
	ListByPoster(ctx context.Context, posterID uint) ([]entity.Job, error)

	// ListActiveByCompany returns a company's active jobs, newest first.
	ListActiveByCompany(ctx context.Context, companyID uint) ([]entity.Job, error)

	// CountActive returns the number of active jobs.
	CountActive(ctx context.Context) (int64, error)
}
