// Package adapters はjobフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/job/domain/entity"
	"jobboard_backend/internal/feature/job/usecase"
)

// jobPostgres はJobRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type jobPostgres struct {
	db *gorm.DB
}

// jobPostgresがJobRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.JobRepository = (*jobPostgres)(nil)

// NewJobPostgres は指定されたgorm.DB接続でjobPostgresの新しいインスタンスを生成します。
func NewJobPostgres(db *gorm.DB) *jobPostgres {
	return &jobPostgres{db: db}
}

// Create は求人をデータベースに追加します。
func (r *jobPostgres) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Update は求人の変更を保存します。
func (r *jobPostgres) Update(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete はIDで求人を削除します。
func (r *jobPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Job{}, id).Error
}

// FindByID はIDで求人を取得します（activeフラグは問いません）。
// 求人が存在しない場合、usecase.ErrJobNotFoundを返します。
func (r *jobPostgres) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	var job entity.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// contains は大文字小文字を区別しないLIKEパターンを生成します。
func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// applyFilter は一覧フィルタをクエリに反映します。
// 空のフィルタ値は「制約なし」を意味します。
func applyFilter(q *gorm.DB, filter usecase.ListFilter) *gorm.DB {
	if filter.Query != "" {
		pattern := contains(filter.Query)
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.JobType != "" {
		q = q.Where("job_type = ?", filter.JobType)
	}
	if filter.ExperienceLevel != "" {
		q = q.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", contains(filter.Location))
	}
	if filter.CompanyID != nil {
		q = q.Where("company_id = ?", *filter.CompanyID)
	}
	return q
}

// ListActive は有効な求人の1ページ分と総件数を返します（新着順）。
func (r *jobPostgres) ListActive(ctx context.Context, filter usecase.ListFilter) ([]entity.Job, int64, error) {
	base := applyFilter(r.db.WithContext(ctx).Model(&entity.Job{}).Where("is_active = ?", true), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	var jobs []entity.Job
	err := base.
		Order("created_at DESC").
		Limit(usecase.PageSize).
		Offset((page - 1) * usecase.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// SearchActive はタイトル・会社名・勤務地の部分一致で有効な求人を検索します。
func (r *jobPostgres) SearchActive(ctx context.Context, query string, limit int) ([]entity.Job, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if query != "" {
		pattern := contains(query)
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var jobs []entity.Job
	err := q.Order("created_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}

// FeaturedActive はホームページ用に新着の有効求人を返します。
func (r *jobPostgres) FeaturedActive(ctx context.Context, limit int) ([]entity.Job, error) {
	var jobs []entity.Job
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

// ListByPoster は投稿者の求人をすべて返します（新着順、activeフラグは問いません）。
func (r *jobPostgres) ListByPoster(ctx context.Context, posterID uint) ([]entity.Job, error) {
	var jobs []entity.Job
	err := r.db.WithContext(ctx).
		Where("posted_by_id = ?", posterID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// ListActiveByCompany は会社の有効な求人を返します（新着順）。
func (r *jobPostgres) ListActiveByCompany(ctx context.Context, companyID uint) ([]entity.Job, error) {
	var jobs []entity.Job
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// CountActive は有効な求人の総数を返します。
func (r *jobPostgres) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Job{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
