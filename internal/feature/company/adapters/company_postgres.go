// Package adapters はcompanyフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"jobboard_backend/internal/feature/company/domain/entity"
	"jobboard_backend/internal/feature/company/usecase"
)

// companyPostgres はCompanyRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type companyPostgres struct {
	db *gorm.DB
}

// companyPostgresがCompanyRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CompanyRepository = (*companyPostgres)(nil)

// NewCompanyPostgres は指定されたgorm.DB接続でcompanyPostgresの新しいインスタンスを生成します。
func NewCompanyPostgres(db *gorm.DB) *companyPostgres {
	return &companyPostgres{db: db}
}

// isUniqueViolation はPostgresの一意制約違反（SQLSTATE 23505）かどうかを判定します。
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create は会社をデータベースに追加します。
// 名前またはスラッグが重複する場合、usecase.ErrCompanyExistsを返します。
func (r *companyPostgres) Create(ctx context.Context, c *entity.Company) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrCompanyExists
		}
		return err
	}
	return nil
}

// Update は会社の変更を保存します。
func (r *companyPostgres) Update(ctx context.Context, c *entity.Company) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrCompanyExists
		}
		return err
	}
	return nil
}

// FindBySlug はスラッグで会社を取得します。
// 会社が存在しない場合、usecase.ErrCompanyNotFoundを返します。
func (r *companyPostgres) FindBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	var c entity.Company
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByID はIDで会社を取得します。
func (r *companyPostgres) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	var c entity.Company
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List は名前順の1ページ分と総件数を返します。
func (r *companyPostgres) List(ctx context.Context, q string, page int) ([]entity.Company, int64, error) {
	base := r.db.WithContext(ctx).Model(&entity.Company{})
	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		base = base.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(industry) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}

	var companies []entity.Company
	err := base.
		Order("name ASC").
		Limit(usecase.PageSize).
		Offset((page - 1) * usecase.PageSize).
		Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

// NameByID は会社名のみを取得します。
func (r *companyPostgres) NameByID(ctx context.Context, id uint) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Model(&entity.Company{}).
		Where("id = ?", id).
		Pluck("name", &name).Error
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", usecase.ErrCompanyNotFound
	}
	return name, nil
}

// Count は全会社数を返します。
func (r *companyPostgres) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Company{}).Count(&count).Error
	return count, err
}
