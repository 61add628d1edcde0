// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard_backend/internal/feature/job/domain/entity"
	"jobboard_backend/internal/feature/job/usecase"
)

// CachingJobRepository decorates a JobRepository with Redis caching for the
// public read paths (listing, search, featured, counts). It implements the
// decorator pattern, transparently adding caching without modifying the
// underlying repository.
type CachingJobRepository struct {
	inner     usecase.JobRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.JobRepository = (*CachingJobRepository)(nil)

// NewCachingJobRepository decorates a JobRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "jobs".
func NewCachingJobRepository(rdb *redis.Client, ttl time.Duration, inner usecase.JobRepository, namespace string) *CachingJobRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "jobs"
	}
	return &CachingJobRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listPayload is the cached shape of a ListActive result.
type listPayload struct {
	Jobs  []entity.Job `json:"jobs"`
	Total int64        `json:"total"`
}

// Create persists a new job and invalidates the listing cache.
func (c *CachingJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if err := c.inner.Create(ctx, job); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update saves changes to a job and invalidates the listing cache.
func (c *CachingJobRepository) Update(ctx context.Context, job *entity.Job) error {
	if err := c.inner.Update(ctx, job); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes a job and invalidates the listing cache.
func (c *CachingJobRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindByID always hits the database. Job detail pages carry viewer-specific
// state upstream, so a shared cache entry buys little here.
func (c *CachingJobRepository) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	return c.inner.FindByID(ctx, id)
}

// ListActive retrieves one listing page, checking cache first then falling
// back to the database.
func (c *CachingJobRepository) ListActive(ctx context.Context, filter usecase.ListFilter) ([]entity.Job, int64, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListActive(ctx, filter)
	}

	key := c.listKey(filter)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out listPayload
		if err := json.Unmarshal(b, &out); err == nil {
			return out.Jobs, out.Total, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	jobs, total, err := c.inner.ListActive(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(listPayload{Jobs: jobs, Total: total}); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return jobs, total, nil
}

// SearchActive retrieves search results, checking cache first.
func (c *CachingJobRepository) SearchActive(ctx context.Context, query string, limit int) ([]entity.Job, error) {
	if c.rdb == nil {
		return c.inner.SearchActive(ctx, query, limit)
	}
	key := fmt.Sprintf("%s:search:%s:%d", c.namespace, safe(query), limit)
	return c.cachedJobs(ctx, key, func() ([]entity.Job, error) {
		return c.inner.SearchActive(ctx, query, limit)
	})
}

// FeaturedActive retrieves the home page jobs, checking cache first.
func (c *CachingJobRepository) FeaturedActive(ctx context.Context, limit int) ([]entity.Job, error) {
	if c.rdb == nil {
		return c.inner.FeaturedActive(ctx, limit)
	}
	key := fmt.Sprintf("%s:featured:%d", c.namespace, limit)
	return c.cachedJobs(ctx, key, func() ([]entity.Job, error) {
		return c.inner.FeaturedActive(ctx, limit)
	})
}

// ListByPoster always hits the database; the poster dashboard must reflect
// writes immediately.
func (c *CachingJobRepository) ListByPoster(ctx context.Context, posterID uint) ([]entity.Job, error) {
	return c.inner.ListByPoster(ctx, posterID)
}

// ListActiveByCompany always hits the database.
func (c *CachingJobRepository) ListActiveByCompany(ctx context.Context, companyID uint) ([]entity.Job, error) {
	return c.inner.ListActiveByCompany(ctx, companyID)
}

// CountActive retrieves the active job count, checking cache first.
func (c *CachingJobRepository) CountActive(ctx context.Context) (int64, error) {
	if c.rdb == nil {
		return c.inner.CountActive(ctx)
	}

	key := c.namespace + ":count"
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var count int64
		if err := json.Unmarshal(b, &count); err == nil {
			return count, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	count, err := c.inner.CountActive(ctx)
	if err != nil {
		return 0, err
	}
	if b, err := json.Marshal(count); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return count, nil
}

// cachedJobs runs the get/unmarshal/fallback/set cycle for a job slice.
func (c *CachingJobRepository) cachedJobs(ctx context.Context, key string, load func() ([]entity.Job, error)) ([]entity.Job, error) {
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Job
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// listKey generates a cache key for a listing page.
func (c *CachingJobRepository) listKey(filter usecase.ListFilter) string {
	var companyID uint
	if filter.CompanyID != nil {
		companyID = *filter.CompanyID
	}
	return fmt.Sprintf("%s:list:%s:%s:%s:%s:%d:%d",
		c.namespace,
		safe(filter.Query),
		safe(filter.JobType),
		safe(filter.ExperienceLevel),
		safe(filter.Location),
		companyID,
		filter.Page,
	)
}

// invalidate drops all cached entries in this namespace (best effort).
func (c *CachingJobRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingJobRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
