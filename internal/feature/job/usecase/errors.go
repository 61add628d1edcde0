// Package usecase implements the business logic for the job feature.
package usecase

import "errors"

var (
	// ErrJobNotFound is returned when a job cannot be found by ID.
	ErrJobNotFound = errors.New("job not found")

	// ErrEmployerRequired is returned when a non-employer account tries to post a job.
	ErrEmployerRequired = errors.New("employer account required")

	// ErrNotJobOwner is returned when a user other than the original poster
	// tries to modify or delete a job.
	ErrNotJobOwner = errors.New("only the posting employer may modify this job")

	// ErrSalaryRange is returned when both salary bounds are set and min exceeds max.
	ErrSalaryRange = errors.New("minimum salary cannot be greater than maximum salary")

	// ErrInvalidJobType is returned for values outside the closed job type set.
	ErrInvalidJobType = errors.New("invalid job type")

	// ErrInvalidExperienceLevel is returned for values outside the closed experience level set.
	ErrInvalidExperienceLevel = errors.New("invalid experience level")
)
