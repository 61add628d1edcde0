package usecase

import (
	"context"

	"jobboard_backend/internal/feature/company/domain/entity"
)

// PageSize is the number of companies per directory page.
const PageSize = 12

// CompanyRepository は会社エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CompanyRepository interface {
	// Create は会社を永続化します。名前またはスラッグが重複する場合、
	// ErrCompanyExistsを返します。
	Create(ctx context.Context, company *entity.Company) error

	// Update は会社の変更を保存します。重複はCreateと同様に扱います。
	Update(ctx context.Context, company *entity.Company) error

	// FindBySlug はスラッグで会社を取得します。
	FindBySlug(ctx context.Context, slug string) (*entity.Company, error)

	// FindByID はIDで会社を取得します。
	FindByID(ctx context.Context, id uint) (*entity.Company, error)

	// List は名前順の1ページ分と総件数を返します。qは名前・説明・業種への
	// 大文字小文字を区別しない部分一致です。
	List(ctx context.Context, q string, page int) ([]entity.Company, int64, error)

	// NameByID は会社名のみを取得します。求人の逆正規化バックフィル用です。
	NameByID(ctx context.Context, id uint) (string, error)

	// Count は全会社数を返します。
	Count(ctx context.Context) (int64, error)
}

// GalleryRepository はギャラリー画像の永続化層を抽象化します。
type GalleryRepository interface {
	// Create はギャラリー画像を永続化します。
	Create(ctx context.Context, image *entity.GalleryImage) error

	// Delete はIDでギャラリー画像を削除します。
	Delete(ctx context.Context, id uint) error

	// FindByID はIDでギャラリー画像を取得します。
	FindByID(ctx context.Context, id uint) (*entity.GalleryImage, error)

	// ListByCompany は会社のギャラリーを注目画像優先・新着順で返します。
	ListByCompany(ctx context.Context, companyID uint) ([]entity.GalleryImage, error)
}
