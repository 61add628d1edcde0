// Package usecase はprofileフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jobboard_backend/internal/feature/profile/domain/entity"
)

// プロフィール画像の制約。企業ロゴ・ギャラリーと同じルールです。
const maxPictureSize = 10 << 20 // 10MB

// 許可する画像の拡張子（小文字、ドットなし）
var allowedPictureExts = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

// ProfileRepository はプロフィールエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ProfileRepository interface {
	// Create は新しいプロフィールを永続化します。
	// 同じユーザーのプロフィールが既に存在する場合、ErrProfileAlreadyExistsを返します。
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID は指定されたユーザーのプロフィールを取得します。
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)

	// Update はプロフィールの変更を保存します。
	Update(ctx context.Context, profile *entity.Profile) error
}

// FileStore は画像ファイルの保存先を抽象化します。
// platform/storageのローカルストアが実装します。
type FileStore interface {
	// Save はReaderの内容を保存し、保存先の相対パスを返します。
	Save(dir, filename string, r io.Reader) (string, error)
}

// ImageUpload はアップロードされたプロフィール画像です。
type ImageUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// ContactUpdate はプロフィール編集で更新可能なフィールドです。
type ContactUpdate struct {
	Phone   string
	Address string
	Bio     string
	// Picture はnilの場合は変更しません。
	Picture *ImageUpload
}

// profileUsecase はプロフィールのビジネスロジックを実装します。
type profileUsecase struct {
	profiles ProfileRepository
	files    FileStore
}

// NewProfileUsecase はprofileUsecaseの新しいインスタンスを生成します。
func NewProfileUsecase(profiles ProfileRepository, files FileStore) *profileUsecase {
	return &profileUsecase{profiles: profiles, files: files}
}

// GetOrCreate はユーザーのプロフィールを取得します。
// 存在しない場合はapplicant種別で遅延作成します（登録時には作成されないため）。
// 同時リクエストによる二重作成は一意制約で検出し、保存済みの行を返します。
func (u *profileUsecase) GetOrCreate(ctx context.Context, userID uint) (*entity.Profile, error) {
	profile, err := u.profiles.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	created := &entity.Profile{UserID: userID, AccountKind: entity.AccountKindApplicant}
	if err := u.profiles.Create(ctx, created); err != nil {
		// 同時作成された場合は既存行を採用
		if errors.Is(err, ErrProfileAlreadyExists) {
			return u.profiles.FindByUserID(ctx, userID)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return created, nil
}

// UpdateContact はプロフィールの連絡先フィールドを更新します。
func (u *profileUsecase) UpdateContact(ctx context.Context, userID uint, update ContactUpdate) (*entity.Profile, error) {
	profile, err := u.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Phone = update.Phone
	profile.Address = update.Address
	profile.Bio = update.Bio
	if update.Picture != nil {
		if err := validatePicture(*update.Picture); err != nil {
			return nil, err
		}
		path, err := u.files.Save("profile_pictures", update.Picture.Filename, update.Picture.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to store profile picture: %w", err)
		}
		profile.PicturePath = path
	}

	if err := u.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// validatePicture はプロフィール画像の形式とサイズを検証します。
func validatePicture(image ImageUpload) error {
	if image.Size > maxPictureSize {
		return ErrPictureTooLarge
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(image.Filename), "."))
	if _, ok := allowedPictureExts[ext]; !ok {
		return ErrPictureType
	}
	return nil
}

// IsEmployer はユーザーがemployer種別かどうかを返します。
// プロフィール未作成のユーザーはapplicant扱いです。
func (u *profileUsecase) IsEmployer(ctx context.Context, userID uint) (bool, error) {
	profile, err := u.GetOrCreate(ctx, userID)
	if err != nil {
		return false, err
	}
	return profile.AccountKind == entity.AccountKindEmployer, nil
}

// ChangeKind はアカウント種別を切り替えます。
// "employer"と"applicant"のリテラル値のみ受け付け、それ以外の値は
// エラーにせず黙って無視します（保存済みの種別を返します）。
func (u *profileUsecase) ChangeKind(ctx context.Context, userID uint, raw string) (entity.AccountKind, error) {
	profile, err := u.GetOrCreate(ctx, userID)
	if err != nil {
		return "", err
	}

	kind := entity.AccountKind(raw)
	if !kind.Valid() {
		// 不正な値は変更せず現在の種別を返す
		return profile.AccountKind, nil
	}

	if kind == profile.AccountKind {
		return profile.AccountKind, nil
	}

	profile.AccountKind = kind
	if err := u.profiles.Update(ctx, profile); err != nil {
		return "", fmt.Errorf("failed to change account kind: %w", err)
	}
	return profile.AccountKind, nil
}
