package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/company/domain/entity"
	"jobboard_backend/internal/feature/company/usecase"
)

// galleryPostgres はGalleryRepositoryインターフェースのPostgres実装です。
type galleryPostgres struct {
	db *gorm.DB
}

// galleryPostgresがGalleryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.GalleryRepository = (*galleryPostgres)(nil)

// NewGalleryPostgres は指定されたgorm.DB接続でgalleryPostgresの新しいインスタンスを生成します。
func NewGalleryPostgres(db *gorm.DB) *galleryPostgres {
	return &galleryPostgres{db: db}
}

// Create はギャラリー画像をデータベースに追加します。
func (r *galleryPostgres) Create(ctx context.Context, image *entity.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// Delete はIDでギャラリー画像を削除します。
func (r *galleryPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.GalleryImage{}, id).Error
}

// FindByID はIDでギャラリー画像を取得します。
// 画像が存在しない場合、usecase.ErrImageNotFoundを返します。
func (r *galleryPostgres) FindByID(ctx context.Context, id uint) (*entity.GalleryImage, error) {
	var image entity.GalleryImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

// ListByCompany は会社のギャラリーを注目画像優先・新着順で返します。
func (r *galleryPostgres) ListByCompany(ctx context.Context, companyID uint) ([]entity.GalleryImage, error) {
	var images []entity.GalleryImage
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("is_featured DESC, created_at DESC").
		Find(&images).Error
	return images, err
}
