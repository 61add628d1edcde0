package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard_backend/internal/feature/application/domain/entity"
	"jobboard_backend/internal/feature/application/usecase"
	jobentity "jobboard_backend/internal/feature/job/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&jobentity.Job{}, &entity.Application{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedJob inserts a job owned by posterID.
func seedJob(t *testing.T, db *gorm.DB, posterID uint) *jobentity.Job {
	t.Helper()

	job := &jobentity.Job{
		Title:           "Backend Engineer",
		Location:        "Tokyo",
		Description:     "Build APIs",
		JobType:         jobentity.JobTypeFullTime,
		ExperienceLevel: jobentity.ExperienceEntry,
		PostedByID:      posterID,
		IsActive:        true,
	}
	require.NoError(t, db.Create(job).Error, "failed to seed job")
	return job
}

// seedApplication inserts an application for the given pair.
func seedApplication(t *testing.T, db *gorm.DB, jobID, applicantID uint) *entity.Application {
	t.Helper()

	a := &entity.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		ResumePath:  "resumes/cv.pdf",
		CoverLetter: "Hello",
		Status:      entity.StatusPending,
	}
	require.NoError(t, db.Create(a).Error, "failed to seed application")
	return a
}

func TestApplicationPostgres_Create_DuplicatePair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationPostgres(db)
	job := seedJob(t, db, 10)

	first := &entity.Application{JobID: job.ID, ApplicantID: 55, ResumePath: "resumes/a.pdf", CoverLetter: "x"}
	require.NoError(t, repo.Create(context.Background(), first))

	second := &entity.Application{JobID: job.ID, ApplicantID: 55, ResumePath: "resumes/b.pdf", CoverLetter: "y"}
	err := repo.Create(context.Background(), second)
	assert.Error(t, err, "should reject a second application for the same pair")

	// 別の応募者は同じ求人に応募できる
	other := &entity.Application{JobID: job.ID, ApplicantID: 56, ResumePath: "resumes/c.pdf", CoverLetter: "z"}
	assert.NoError(t, repo.Create(context.Background(), other))
}

func TestApplicationPostgres_FindByID_PreloadsJob(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationPostgres(db)
	job := seedJob(t, db, 10)
	seeded := seedApplication(t, db, job.ID, 55)

	found, err := repo.FindByID(context.Background(), seeded.ID)

	require.NoError(t, err)
	require.NotNil(t, found.Job, "job should be preloaded")
	assert.Equal(t, job.Title, found.Job.Title)
	assert.Equal(t, uint(10), found.Job.PostedByID)

	_, err = repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, usecase.ErrApplicationNotFound)
}

func TestApplicationPostgres_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationPostgres(db)
	job := seedJob(t, db, 10)
	seedApplication(t, db, job.ID, 55)

	exists, err := repo.Exists(context.Background(), job.ID, 55)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(context.Background(), job.ID, 99)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApplicationPostgres_ListByApplicant_PreloadsJob(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationPostgres(db)
	job1 := seedJob(t, db, 10)
	job2 := seedJob(t, db, 20)
	seedApplication(t, db, job1.ID, 55)
	seedApplication(t, db, job2.ID, 55)
	seedApplication(t, db, job1.ID, 56)

	applications, err := repo.ListByApplicant(context.Background(), 55)

	require.NoError(t, err)
	require.Len(t, applications, 2)
	for _, a := range applications {
		require.NotNil(t, a.Job)
	}
}

func TestApplicationPostgres_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationPostgres(db)

	// 投稿者10が2求人、投稿者20が1求人
	job1 := seedJob(t, db, 10)
	job2 := seedJob(t, db, 10)
	job3 := seedJob(t, db, 20)

	seedApplication(t, db, job1.ID, 55)
	seedApplication(t, db, job1.ID, 56)
	seedApplication(t, db, job2.ID, 57)
	seedApplication(t, db, job3.ID, 58)

	byJob, err := repo.CountByJob(context.Background(), job1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byJob)

	forPoster, err := repo.CountForPoster(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), forPoster)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestApplicationPostgres_ListByJob(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationPostgres(db)
	job := seedJob(t, db, 10)
	seedApplication(t, db, job.ID, 55)
	seedApplication(t, db, job.ID, 56)

	applications, err := repo.ListByJob(context.Background(), job.ID)

	require.NoError(t, err)
	assert.Len(t, applications, 2)
}

func TestApplicationPostgres_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationPostgres(db)
	job := seedJob(t, db, 10)
	seeded := seedApplication(t, db, job.ID, 55)

	seeded.Status = entity.StatusAccepted
	seeded.Notes = "welcome aboard"
	require.NoError(t, repo.Update(context.Background(), seeded))

	found, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, found.Status)
	assert.Equal(t, "welcome aboard", found.Notes)
}
