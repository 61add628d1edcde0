package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/feature/company/domain/entity"
	jobentity "jobboard_backend/internal/feature/job/domain/entity"
)

// mockCompanyRepository はCompanyRepositoryのテスト用モックです。
type mockCompanyRepository struct {
	CreateFunc     func(ctx context.Context, c *entity.Company) error
	UpdateFunc     func(ctx context.Context, c *entity.Company) error
	FindBySlugFunc func(ctx context.Context, slug string) (*entity.Company, error)
	FindByIDFunc   func(ctx context.Context, id uint) (*entity.Company, error)
	ListFunc       func(ctx context.Context, q string, page int) ([]entity.Company, int64, error)
	NameByIDFunc   func(ctx context.Context, id uint) (string, error)
	CountFunc      func(ctx context.Context) (int64, error)
}

func (m *mockCompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	return m.CreateFunc(ctx, c)
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	return m.UpdateFunc(ctx, c)
}

func (m *mockCompanyRepository) FindBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	return m.FindBySlugFunc(ctx, slug)
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCompanyRepository) List(ctx context.Context, q string, page int) ([]entity.Company, int64, error) {
	return m.ListFunc(ctx, q, page)
}

func (m *mockCompanyRepository) NameByID(ctx context.Context, id uint) (string, error) {
	return m.NameByIDFunc(ctx, id)
}

func (m *mockCompanyRepository) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

// mockGalleryRepository はGalleryRepositoryのテスト用モックです。
type mockGalleryRepository struct {
	CreateFunc        func(ctx context.Context, image *entity.GalleryImage) error
	DeleteFunc        func(ctx context.Context, id uint) error
	FindByIDFunc      func(ctx context.Context, id uint) (*entity.GalleryImage, error)
	ListByCompanyFunc func(ctx context.Context, companyID uint) ([]entity.GalleryImage, error)
}

func (m *mockGalleryRepository) Create(ctx context.Context, image *entity.GalleryImage) error {
	return m.CreateFunc(ctx, image)
}

func (m *mockGalleryRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockGalleryRepository) FindByID(ctx context.Context, id uint) (*entity.GalleryImage, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockGalleryRepository) ListByCompany(ctx context.Context, companyID uint) ([]entity.GalleryImage, error) {
	return m.ListByCompanyFunc(ctx, companyID)
}

// mockJobsSource はJobsSourceのテスト用モックです。
type mockJobsSource struct {
	ListActiveByCompanyFunc func(ctx context.Context, companyID uint) ([]jobentity.Job, error)
}

func (m *mockJobsSource) ListActiveByCompany(ctx context.Context, companyID uint) ([]jobentity.Job, error) {
	return m.ListActiveByCompanyFunc(ctx, companyID)
}

// mockFileStore はFileStoreのテスト用モックです。
type mockFileStore struct {
	SaveFunc func(dir, filename string, r io.Reader) (string, error)
}

func (m *mockFileStore) Save(dir, filename string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(dir, filename, r)
	}
	return dir + "/stored", nil
}

func validCompanyInput() CompanyInput {
	return CompanyInput{
		Name:        "Acme Corp",
		Description: "We make everything",
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"My Company!!", "my-company"},
		{"Acme Corp", "acme-corp"},
		{"already-fine-123", "already-fine-123"},
		{"Ümläut & Co", "mlut--co"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.input), "input %q", tt.input)
	}
}

func TestCompanyUsecase_Create_NormalizesSlug(t *testing.T) {
	var saved *entity.Company
	repo := &mockCompanyRepository{
		CreateFunc: func(ctx context.Context, c *entity.Company) error {
			c.ID = 1
			saved = c
			return nil
		},
	}
	uc := NewCompanyUsecase(repo, &mockGalleryRepository{}, &mockJobsSource{}, &mockFileStore{})

	input := validCompanyInput()
	input.Slug = "My Company!!"

	company, err := uc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "my-company", company.Slug)
	// 空の業種はデフォルトに落ちる
	assert.Equal(t, entity.IndustryTechnology, saved.Industry)
}

func TestCompanyUsecase_Create_SlugFromName(t *testing.T) {
	repo := &mockCompanyRepository{
		CreateFunc: func(ctx context.Context, c *entity.Company) error { return nil },
	}
	uc := NewCompanyUsecase(repo, &mockGalleryRepository{}, &mockJobsSource{}, &mockFileStore{})

	company, err := uc.Create(context.Background(), validCompanyInput())

	require.NoError(t, err)
	assert.Equal(t, "acme-corp", company.Slug)
}

func TestCompanyUsecase_Create_InvalidIndustry(t *testing.T) {
	uc := NewCompanyUsecase(&mockCompanyRepository{}, &mockGalleryRepository{}, &mockJobsSource{}, &mockFileStore{})

	input := validCompanyInput()
	input.Industry = "agriculture"

	_, err := uc.Create(context.Background(), input)

	assert.ErrorIs(t, err, ErrInvalidIndustry)
}

func TestCompanyUsecase_Create_EmptySlug(t *testing.T) {
	uc := NewCompanyUsecase(&mockCompanyRepository{}, &mockGalleryRepository{}, &mockJobsSource{}, &mockFileStore{})

	input := validCompanyInput()
	input.Name = "!!!"

	_, err := uc.Create(context.Background(), input)

	assert.ErrorIs(t, err, ErrEmptySlug)
}

func TestCompanyUsecase_Create_StoresLogo(t *testing.T) {
	repo := &mockCompanyRepository{
		CreateFunc: func(ctx context.Context, c *entity.Company) error { return nil },
	}
	files := &mockFileStore{
		SaveFunc: func(dir, filename string, r io.Reader) (string, error) {
			assert.Equal(t, "company_logos", dir)
			return "company_logos/abc.png", nil
		},
	}
	uc := NewCompanyUsecase(repo, &mockGalleryRepository{}, &mockJobsSource{}, files)

	input := validCompanyInput()
	input.Logo = &ImageUpload{Filename: "logo.png", Size: 1024, Reader: strings.NewReader("img")}

	company, err := uc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "company_logos/abc.png", company.LogoPath)
}

func TestCompanyUsecase_Update_NoOwnershipCheck(t *testing.T) {
	// 会社レコードに所有者はなく、どの認証済みユーザーでも更新できる
	repo := &mockCompanyRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*entity.Company, error) {
			return &entity.Company{ID: 1, Name: "Old Name", Slug: slug, Industry: entity.IndustryFinance}, nil
		},
		UpdateFunc: func(ctx context.Context, c *entity.Company) error { return nil },
	}
	uc := NewCompanyUsecase(repo, &mockGalleryRepository{}, &mockJobsSource{}, &mockFileStore{})

	input := validCompanyInput()
	input.Name = "New Name"
	input.Industry = string(entity.IndustryRetail)

	company, err := uc.Update(context.Background(), "old-name", input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", company.Name)
	assert.Equal(t, entity.IndustryRetail, company.Industry)
	assert.Equal(t, "acme-corp", company.Slug)
}

func TestCompanyUsecase_Get(t *testing.T) {
	repo := &mockCompanyRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*entity.Company, error) {
			return &entity.Company{ID: 3, Slug: slug}, nil
		},
	}
	jobs := &mockJobsSource{
		ListActiveByCompanyFunc: func(ctx context.Context, companyID uint) ([]jobentity.Job, error) {
			assert.Equal(t, uint(3), companyID)
			return []jobentity.Job{{ID: 1}}, nil
		},
	}
	gallery := &mockGalleryRepository{
		ListByCompanyFunc: func(ctx context.Context, companyID uint) ([]entity.GalleryImage, error) {
			return []entity.GalleryImage{{ID: 1}, {ID: 2}}, nil
		},
	}
	uc := NewCompanyUsecase(repo, gallery, jobs, &mockFileStore{})

	detail, err := uc.Get(context.Background(), "acme")

	require.NoError(t, err)
	assert.Len(t, detail.Jobs, 1)
	assert.Len(t, detail.Gallery, 2)
}

func TestCompanyUsecase_UploadGalleryImage_Validation(t *testing.T) {
	repo := &mockCompanyRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*entity.Company, error) {
			return &entity.Company{ID: 3, Slug: slug}, nil
		},
	}

	tests := []struct {
		name     string
		image    ImageUpload
		expected error
	}{
		{
			name:     "11MB image rejected",
			image:    ImageUpload{Filename: "big.png", Size: 11 << 20, Reader: strings.NewReader("x")},
			expected: ErrImageTooLarge,
		},
		{
			name:     "pdf rejected",
			image:    ImageUpload{Filename: "doc.pdf", Size: 100, Reader: strings.NewReader("x")},
			expected: ErrImageType,
		},
		{
			name:     "webp accepted",
			image:    ImageUpload{Filename: "photo.webp", Size: 100, Reader: strings.NewReader("x")},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gallery := &mockGalleryRepository{
				CreateFunc: func(ctx context.Context, image *entity.GalleryImage) error {
					image.ID = 1
					return nil
				},
			}
			uc := NewCompanyUsecase(repo, gallery, &mockJobsSource{}, &mockFileStore{})

			_, err := uc.UploadGalleryImage(context.Background(), "acme", GalleryInput{Image: tt.image})

			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestCompanyUsecase_DeleteGalleryImage_NotFound(t *testing.T) {
	gallery := &mockGalleryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.GalleryImage, error) {
			return nil, ErrImageNotFound
		},
	}
	uc := NewCompanyUsecase(&mockCompanyRepository{}, gallery, &mockJobsSource{}, &mockFileStore{})

	err := uc.DeleteGalleryImage(context.Background(), 42)

	assert.ErrorIs(t, err, ErrImageNotFound)
}
