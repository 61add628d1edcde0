// Package usecase はcompanyフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jobboard_backend/internal/feature/company/domain/entity"
	jobentity "jobboard_backend/internal/feature/job/domain/entity"
)

// 画像アップロードの制約。ロゴとギャラリーで共通です。
const maxImageSize = 10 << 20 // 10MB

// 許可する画像の拡張子（小文字、ドットなし）
var allowedImageExts = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

// JobsSource は会社詳細ページに表示する求人を提供します。
// jobフィーチャーのリポジトリが実装します。
type JobsSource interface {
	ListActiveByCompany(ctx context.Context, companyID uint) ([]jobentity.Job, error)
}

// FileStore は画像ファイルの保存先を抽象化します。
// platform/storageのローカルストアが実装します。
type FileStore interface {
	// Save はReaderの内容を保存し、保存先の相対パスを返します。
	Save(dir, filename string, r io.Reader) (string, error)
}

// ImageUpload はアップロードされた画像ファイルです。
type ImageUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// CompanyInput は会社の作成・更新フォームの内容です。
type CompanyInput struct {
	Name          string
	Slug          string
	Description   string
	Industry      string
	Website       string
	FoundedYear   *int
	EmployeeCount string
	Headquarters  string
	ContactEmail  string
	ContactPhone  string
	SocialMedia   map[string]string
	// Logo はnilの場合は変更しません。
	Logo *ImageUpload
}

// GalleryInput はギャラリー投稿フォームの内容です。
type GalleryInput struct {
	Caption    string
	IsFeatured bool
	Image      ImageUpload
}

// CompanyDetail は会社詳細ページの内容です。
type CompanyDetail struct {
	Company *entity.Company
	Jobs    []jobentity.Job
	Gallery []entity.GalleryImage
}

// CompanyPage は会社一覧の1ページ分です。
type CompanyPage struct {
	Companies []entity.Company
	Total     int64
	Page      int
	PerPage   int
}

// companyUsecase は会社ディレクトリのビジネスロジックを実装します。
type companyUsecase struct {
	companies CompanyRepository
	gallery   GalleryRepository
	jobs      JobsSource
	files     FileStore
}

// NewCompanyUsecase はcompanyUsecaseの新しいインスタンスを生成します。
func NewCompanyUsecase(companies CompanyRepository, gallery GalleryRepository, jobs JobsSource, files FileStore) *companyUsecase {
	return &companyUsecase{
		companies: companies,
		gallery:   gallery,
		jobs:      jobs,
		files:     files,
	}
}

// Slugify はスラッグを正規化します。小文字化し、空白をハイフンに置き換え、
// [a-z0-9-]以外の文字を取り除きます。
func Slugify(raw string) string {
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validateImage は画像の形式とサイズを検証します。
func validateImage(image ImageUpload) error {
	if image.Size > maxImageSize {
		return ErrImageTooLarge
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(image.Filename), "."))
	if _, ok := allowedImageExts[ext]; !ok {
		return ErrImageType
	}
	return nil
}

// resolveSlug は入力のスラッグを正規化します。空の場合は名前から導出します。
func resolveSlug(input CompanyInput) (string, error) {
	raw := input.Slug
	if raw == "" {
		raw = input.Name
	}
	slug := Slugify(raw)
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// apply は検証済みの入力を会社エンティティへ反映します。
func (u *companyUsecase) apply(ctx context.Context, company *entity.Company, input CompanyInput, slug string) error {
	company.Name = input.Name
	company.Slug = slug
	company.Description = input.Description
	company.Industry = entity.Industry(input.Industry)
	company.Website = input.Website
	company.FoundedYear = input.FoundedYear
	company.EmployeeCount = input.EmployeeCount
	company.Headquarters = input.Headquarters
	company.ContactEmail = input.ContactEmail
	company.ContactPhone = input.ContactPhone
	company.SocialMedia = input.SocialMedia

	if input.Logo != nil {
		if err := validateImage(*input.Logo); err != nil {
			return err
		}
		path, err := u.files.Save("company_logos", input.Logo.Filename, input.Logo.Reader)
		if err != nil {
			return fmt.Errorf("failed to store logo: %w", err)
		}
		company.LogoPath = path
	}
	return nil
}

// validateInput は業種とスラッグを検証します。空の業種はデフォルトを適用します。
func validateInput(input *CompanyInput) error {
	if input.Industry == "" {
		input.Industry = string(entity.IndustryTechnology)
	} else if !entity.Industry(input.Industry).Valid() {
		return ErrInvalidIndustry
	}
	return nil
}

// Create は会社をディレクトリに登録します。認証済みであれば誰でも作成できます。
func (u *companyUsecase) Create(ctx context.Context, input CompanyInput) (*entity.Company, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(input)
	if err != nil {
		return nil, err
	}

	company := &entity.Company{}
	if err := u.apply(ctx, company, input, slug); err != nil {
		return nil, err
	}
	if err := u.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update は会社を更新します。所有者の概念はなく、認証済みであれば誰でも
// どの会社でも編集できます。
func (u *companyUsecase) Update(ctx context.Context, slug string, input CompanyInput) (*entity.Company, error) {
	company, err := u.companies.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := validateInput(&input); err != nil {
		return nil, err
	}
	newSlug, err := resolveSlug(input)
	if err != nil {
		return nil, err
	}

	if err := u.apply(ctx, company, input, newSlug); err != nil {
		return nil, err
	}
	if err := u.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Get は会社詳細を返します。募集中の求人とギャラリーを含みます。
func (u *companyUsecase) Get(ctx context.Context, slug string) (*CompanyDetail, error) {
	company, err := u.companies.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobs.ListActiveByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	gallery, err := u.gallery.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	return &CompanyDetail{Company: company, Jobs: jobs, Gallery: gallery}, nil
}

// List は会社一覧の1ページ分を返します。
func (u *companyUsecase) List(ctx context.Context, q string, page int) (*CompanyPage, error) {
	if page < 1 {
		page = 1
	}
	companies, total, err := u.companies.List(ctx, q, page)
	if err != nil {
		return nil, err
	}
	return &CompanyPage{Companies: companies, Total: total, Page: page, PerPage: PageSize}, nil
}

// UploadGalleryImage は会社のギャラリーに画像を追加します。
// 認証済みであれば誰でもどの会社にもアップロードできます。
func (u *companyUsecase) UploadGalleryImage(ctx context.Context, slug string, input GalleryInput) (*entity.GalleryImage, error) {
	company, err := u.companies.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := validateImage(input.Image); err != nil {
		return nil, err
	}
	path, err := u.files.Save("company_gallery", input.Image.Filename, input.Image.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to store gallery image: %w", err)
	}

	image := &entity.GalleryImage{
		CompanyID:  company.ID,
		ImagePath:  path,
		Caption:    input.Caption,
		IsFeatured: input.IsFeatured,
	}
	if err := u.gallery.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}
	return image, nil
}

// DeleteGalleryImage はギャラリー画像のレコードを削除します。
// 保存済みのファイル自体は削除しません。
func (u *companyUsecase) DeleteGalleryImage(ctx context.Context, id uint) error {
	if _, err := u.gallery.FindByID(ctx, id); err != nil {
		return err
	}
	return u.gallery.Delete(ctx, id)
}
