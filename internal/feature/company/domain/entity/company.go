// Package entity defines the domain entities for the company feature.
package entity

import "time"

// Industry is the closed set of company industries.
type Industry string

const (
	IndustryTechnology    Industry = "technology"
	IndustryHealthcare    Industry = "healthcare"
	IndustryFinance       Industry = "finance"
	IndustryEducation     Industry = "education"
	IndustryRetail        Industry = "retail"
	IndustryManufacturing Industry = "manufacturing"
	IndustryConsulting    Industry = "consulting"
	IndustryMedia         Industry = "media"
	IndustryNonprofit     Industry = "nonprofit"
	IndustryOther         Industry = "other"
)

// Valid reports whether i is a known industry.
func (i Industry) Valid() bool {
	switch i {
	case IndustryTechnology, IndustryHealthcare, IndustryFinance, IndustryEducation,
		IndustryRetail, IndustryManufacturing, IndustryConsulting, IndustryMedia,
		IndustryNonprofit, IndustryOther:
		return true
	}
	return false
}

// Company is a directory entry. Any authenticated user may create or edit
// any company; the directory carries no ownership.
type Company struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:200;uniqueIndex;not null"`

	// Slug is the URL identifier, normalized to lowercase hyphenated
	// [a-z0-9-] form before storage.
	Slug string `gorm:"size:200;uniqueIndex;not null"`

	Description string   `gorm:"type:text;not null"`
	Industry    Industry `gorm:"size:20;not null;default:technology"`
	Website     string   `gorm:"size:255"`

	// LogoPath references the stored logo blob; no content processing.
	LogoPath string `gorm:"size:255"`

	FoundedYear   *int
	EmployeeCount string `gorm:"size:50"`
	Headquarters  string `gorm:"size:200"`
	ContactEmail  string `gorm:"size:255"`
	ContactPhone  string `gorm:"size:20"`

	// SocialMedia maps platform names to profile URLs.
	SocialMedia map[string]string `gorm:"serializer:json"`

	IsVerified bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GalleryImage is one image of a company's gallery. Listings order
// featured-first, then newest-first.
type GalleryImage struct {
	ID uint `gorm:"primaryKey"`

	CompanyID uint `gorm:"index;not null"`

	ImagePath  string `gorm:"size:255;not null"`
	Caption    string `gorm:"size:200"`
	IsFeatured bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
}
