package usecase

import "errors"

var (
	// ErrCompanyNotFound は会社が見つからない場合に返されます。
	ErrCompanyNotFound = errors.New("company not found")
	// ErrCompanyExists は名前またはスラッグが既に使われている場合に返されます。
	ErrCompanyExists = errors.New("a company with this name or slug already exists")
	// ErrInvalidIndustry は不正な業種値の場合に返されます。
	ErrInvalidIndustry = errors.New("invalid industry")
	// ErrEmptySlug はスラッグの正規化で有効な文字が残らない場合に返されます。
	ErrEmptySlug = errors.New("slug must contain at least one letter or digit")
	// ErrImageNotFound はギャラリー画像が見つからない場合に返されます。
	ErrImageNotFound = errors.New("gallery image not found")
	// ErrImageTooLarge は画像が上限サイズを超える場合に返されます。
	ErrImageTooLarge = errors.New("image file size must be less than 10MB")
	// ErrImageType は許可されていない画像形式の場合に返されます。
	ErrImageType = errors.New("please upload a valid image file (JPG, PNG, GIF, WebP)")
)
