// Package adapters はprofileフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"jobboard_backend/internal/feature/profile/domain/entity"
	"jobboard_backend/internal/feature/profile/usecase"
)

// profilePostgres はProfileRepositoryインターフェースのPostgres実装です。
type profilePostgres struct {
	db *gorm.DB
}

// profilePostgresがProfileRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ProfileRepository = (*profilePostgres)(nil)

// NewProfilePostgres は指定されたgorm.DB接続でprofilePostgresの新しいインスタンスを生成します。
func NewProfilePostgres(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

// isUniqueViolation はPostgresの一意制約違反（SQLSTATE 23505）かどうかを判定します。
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create はプロフィールをデータベースに追加します。
// 同じユーザーのプロフィールが既に存在する場合、usecase.ErrProfileAlreadyExistsを返します。
func (r *profilePostgres) Create(ctx context.Context, p *entity.Profile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

// FindByUserID はユーザーIDでプロフィールを取得します。
// 存在しない場合、usecase.ErrProfileNotFoundを返します。
func (r *profilePostgres) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update はプロフィールの変更を保存します。
func (r *profilePostgres) Update(ctx context.Context, p *entity.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
