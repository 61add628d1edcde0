package di

import (
	"time"

	jobadapters "jobboard_backend/internal/feature/job/adapters"
	"jobboard_backend/internal/feature/job/usecase"
	"jobboard_backend/internal/platform/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewJobRepository creates the job repository with its Redis cache decorator.
// With a nil Redis client the decorator passes every call straight through.
func NewJobRepository(rdb *redis.Client, db *gorm.DB) usecase.JobRepository {
	return cache.NewCachingJobRepository(rdb, 5*time.Minute, jobadapters.NewJobPostgres(db), "jobs")
}
