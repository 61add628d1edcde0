// Package adapters はapplicationフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"jobboard_backend/internal/feature/application/domain/entity"
	"jobboard_backend/internal/feature/application/usecase"
)

// applicationPostgres はApplicationRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type applicationPostgres struct {
	db *gorm.DB
}

// applicationPostgresがApplicationRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ApplicationRepository = (*applicationPostgres)(nil)

// NewApplicationPostgres は指定されたgorm.DB接続でapplicationPostgresの新しいインスタンスを生成します。
func NewApplicationPostgres(db *gorm.DB) *applicationPostgres {
	return &applicationPostgres{db: db}
}

// isUniqueViolation はPostgresの一意制約違反（SQLSTATE 23505）かどうかを判定します。
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create は応募をデータベースに追加します。
// 同じ(求人, 応募者)の応募が既に存在する場合、usecase.ErrAlreadyAppliedを返します。
func (r *applicationPostgres) Create(ctx context.Context, a *entity.Application) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

// Update は応募の変更を保存します。
func (r *applicationPostgres) Update(ctx context.Context, a *entity.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// FindByID は応募を取得します。権限判定に使うため求人をプリロードします。
// 応募が存在しない場合、usecase.ErrApplicationNotFoundを返します。
func (r *applicationPostgres) FindByID(ctx context.Context, id uint) (*entity.Application, error) {
	var a entity.Application
	if err := r.db.WithContext(ctx).Preload("Job").First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrApplicationNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListByJob は求人への応募を新着順で返します。
func (r *applicationPostgres) ListByJob(ctx context.Context, jobID uint) ([]entity.Application, error) {
	var applications []entity.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

// ListByApplicant は応募者の応募を新着順で返します。ダッシュボード表示用に
// 求人をプリロードします。
func (r *applicationPostgres) ListByApplicant(ctx context.Context, applicantID uint) ([]entity.Application, error) {
	var applications []entity.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

// Exists は指定の(求人, 応募者)ペアの応募が存在するかを返します。
func (r *applicationPostgres) Exists(ctx context.Context, jobID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

// CountByJob は求人への応募総数を返します。
func (r *applicationPostgres) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}

// CountForPoster は投稿者の全求人への応募総数を返します。
func (r *applicationPostgres) CountForPoster(ctx context.Context, posterID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.posted_by_id = ?", posterID).
		Count(&count).Error
	return count, err
}

// Count は全応募数を返します。
func (r *applicationPostgres) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Application{}).Count(&count).Error
	return count, err
}
