package usecase

import (
	"context"

	"jobboard_backend/internal/feature/application/domain/entity"
)

// ApplicationRepository は応募エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ApplicationRepository interface {
	// Create は応募を永続化します。同じ(求人, 応募者)の応募が既に存在する
	// 場合、ErrAlreadyAppliedを返します。
	Create(ctx context.Context, application *entity.Application) error

	// Update は応募の変更を保存します。
	Update(ctx context.Context, application *entity.Application) error

	// FindByID は応募を取得します（求人をプリロードします）。
	// 応募が存在しない場合、ErrApplicationNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Application, error)

	// ListByJob は求人への応募を新着順で返します。
	ListByJob(ctx context.Context, jobID uint) ([]entity.Application, error)

	// ListByApplicant は応募者の応募を新着順で返します（求人をプリロードします）。
	ListByApplicant(ctx context.Context, applicantID uint) ([]entity.Application, error)

	// Exists は指定の(求人, 応募者)ペアの応募が存在するかを返します。
	Exists(ctx context.Context, jobID, applicantID uint) (bool, error)

	// CountByJob は求人への応募総数を返します。
	CountByJob(ctx context.Context, jobID uint) (int64, error)

	// CountForPoster は投稿者の全求人への応募総数を返します。
	CountForPoster(ctx context.Context, posterID uint) (int64, error)

	// Count は全応募数を返します。
	Count(ctx context.Context) (int64, error)
}
