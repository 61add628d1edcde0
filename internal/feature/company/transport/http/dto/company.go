// Package dto defines data transfer objects for the company feature's HTTP transport layer.
package dto

import (
	"time"

	"jobboard_backend/internal/feature/company/domain/entity"
	jobdto "jobboard_backend/internal/feature/job/transport/http/dto"
)

// CompanyReq is the multipart form for creating and updating a company.
// The logo file rides alongside as the "logo" form file; social_media is a
// JSON object string mapping platform names to URLs.
type CompanyReq struct {
	Name          string `form:"name" binding:"required,max=200"`
	Slug          string `form:"slug" binding:"max=200"`
	Description   string `form:"description" binding:"required"`
	Industry      string `form:"industry"`
	Website       string `form:"website" binding:"omitempty,url"`
	FoundedYear   *int   `form:"founded_year"`
	EmployeeCount string `form:"employee_count" binding:"max=50"`
	Headquarters  string `form:"headquarters" binding:"max=200"`
	ContactEmail  string `form:"contact_email" binding:"omitempty,email"`
	ContactPhone  string `form:"contact_phone" binding:"max=20"`
	SocialMedia   string `form:"social_media"`
}

// CompanyRes represents a company in responses.
type CompanyRes struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Industry      string            `json:"industry"`
	Website       string            `json:"website,omitempty"`
	LogoPath      string            `json:"logo_path,omitempty"`
	FoundedYear   *int              `json:"founded_year,omitempty"`
	EmployeeCount string            `json:"employee_count,omitempty"`
	Headquarters  string            `json:"headquarters,omitempty"`
	ContactEmail  string            `json:"contact_email,omitempty"`
	ContactPhone  string            `json:"contact_phone,omitempty"`
	SocialMedia   map[string]string `json:"social_media,omitempty"`
	IsVerified    bool              `json:"is_verified"`
	CreatedAt     time.Time         `json:"created_at"`
}

// FromCompany converts an entity to its response shape.
func FromCompany(c *entity.Company) CompanyRes {
	return CompanyRes{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		Industry:      string(c.Industry),
		Website:       c.Website,
		LogoPath:      c.LogoPath,
		FoundedYear:   c.FoundedYear,
		EmployeeCount: c.EmployeeCount,
		Headquarters:  c.Headquarters,
		ContactEmail:  c.ContactEmail,
		ContactPhone:  c.ContactPhone,
		SocialMedia:   c.SocialMedia,
		IsVerified:    c.IsVerified,
		CreatedAt:     c.CreatedAt,
	}
}

// MutationRes confirms a create or update with the stored record.
type MutationRes struct {
	Message string     `json:"message"`
	Company CompanyRes `json:"company"`
}

// CompanyListRes is one page of the directory.
type CompanyListRes struct {
	Companies []CompanyRes `json:"companies"`
	Total     int64        `json:"total"`
	Page      int          `json:"page"`
	PerPage   int          `json:"per_page"`
}

// GalleryImageRes represents a gallery image in responses.
type GalleryImageRes struct {
	ID         uint      `json:"id"`
	CompanyID  uint      `json:"company_id"`
	ImagePath  string    `json:"image_path"`
	Caption    string    `json:"caption,omitempty"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromGalleryImage converts an entity to its response shape.
func FromGalleryImage(g *entity.GalleryImage) GalleryImageRes {
	return GalleryImageRes{
		ID:         g.ID,
		CompanyID:  g.CompanyID,
		ImagePath:  g.ImagePath,
		Caption:    g.Caption,
		IsFeatured: g.IsFeatured,
		CreatedAt:  g.CreatedAt,
	}
}

// GalleryUploadRes confirms a gallery upload.
type GalleryUploadRes struct {
	Message string          `json:"message"`
	Image   GalleryImageRes `json:"image"`
}

// CompanyDetailRes is the company page payload: the record, its open jobs,
// and its gallery.
type CompanyDetailRes struct {
	Company CompanyRes        `json:"company"`
	Jobs    []jobdto.JobRes   `json:"jobs"`
	Gallery []GalleryImageRes `json:"gallery"`
}
