package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard_backend/internal/feature/company/domain/entity"
	"jobboard_backend/internal/feature/company/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Company{}, &entity.GalleryImage{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedCompany inserts a company with the given name and slug.
func seedCompany(t *testing.T, db *gorm.DB, name, slug string) *entity.Company {
	t.Helper()

	c := &entity.Company{
		Name:        name,
		Slug:        slug,
		Description: "A company",
		Industry:    entity.IndustryTechnology,
	}
	require.NoError(t, db.Create(c).Error, "failed to seed company")
	return c
}

func TestCompanyPostgres_FindBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyPostgres(db)

	seedCompany(t, db, "Acme", "acme")

	found, err := repo.FindBySlug(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", found.Name)

	_, err = repo.FindBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
}

func TestCompanyPostgres_Create_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyPostgres(db)

	first := &entity.Company{Name: "Acme", Slug: "acme", Description: "x", Industry: entity.IndustryOther}
	require.NoError(t, repo.Create(context.Background(), first))

	dup := &entity.Company{Name: "Acme", Slug: "acme-2", Description: "y", Industry: entity.IndustryOther}
	err := repo.Create(context.Background(), dup)
	assert.Error(t, err, "should reject duplicate name")
}

func TestCompanyPostgres_SocialMediaRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyPostgres(db)

	c := &entity.Company{
		Name:        "Acme",
		Slug:        "acme",
		Description: "x",
		Industry:    entity.IndustryTechnology,
		SocialMedia: map[string]string{"twitter": "https://twitter.com/acme"},
	}
	require.NoError(t, repo.Create(context.Background(), c))

	found, err := repo.FindBySlug(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "https://twitter.com/acme", found.SocialMedia["twitter"])
}

func TestCompanyPostgres_List_Filter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyPostgres(db)

	seedCompany(t, db, "HealthCorp", "healthcorp")
	c := seedCompany(t, db, "Acme", "acme")
	c.Industry = entity.IndustryHealthcare
	require.NoError(t, db.Save(c).Error)
	seedCompany(t, db, "Globex", "globex")

	// 名前または業種への部分一致
	companies, total, err := repo.List(context.Background(), "health", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, companies, 2)
	// 名前順
	assert.Equal(t, "Acme", companies[0].Name)
	assert.Equal(t, "HealthCorp", companies[1].Name)
}

func TestCompanyPostgres_NameByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyPostgres(db)

	c := seedCompany(t, db, "Acme", "acme")

	name, err := repo.NameByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", name)

	_, err = repo.NameByID(context.Background(), 9999)
	assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
}

func TestCompanyPostgres_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyPostgres(db)

	seedCompany(t, db, "Acme", "acme")
	seedCompany(t, db, "Globex", "globex")

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGalleryPostgres_Ordering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGalleryPostgres(db)

	company := seedCompany(t, db, "Acme", "acme")

	plain := &entity.GalleryImage{CompanyID: company.ID, ImagePath: "company_gallery/a.png"}
	require.NoError(t, repo.Create(context.Background(), plain))
	featured := &entity.GalleryImage{CompanyID: company.ID, ImagePath: "company_gallery/b.png", IsFeatured: true}
	require.NoError(t, repo.Create(context.Background(), featured))

	images, err := repo.ListByCompany(context.Background(), company.ID)

	require.NoError(t, err)
	require.Len(t, images, 2)
	// 注目画像が先頭
	assert.True(t, images[0].IsFeatured)
}

func TestGalleryPostgres_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGalleryPostgres(db)

	company := seedCompany(t, db, "Acme", "acme")
	image := &entity.GalleryImage{CompanyID: company.ID, ImagePath: "company_gallery/a.png"}
	require.NoError(t, repo.Create(context.Background(), image))

	require.NoError(t, repo.Delete(context.Background(), image.ID))

	_, err := repo.FindByID(context.Background(), image.ID)
	assert.ErrorIs(t, err, usecase.ErrImageNotFound)
}
