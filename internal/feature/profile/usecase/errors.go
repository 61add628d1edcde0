// Package usecase implements the business logic for the profile feature.
package usecase

import "errors"

var (
	// ErrProfileNotFound is returned when no profile exists for a user.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileAlreadyExists is returned when a second profile is inserted for the same user.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrPictureTooLarge is returned when a profile picture exceeds the size limit.
	ErrPictureTooLarge = errors.New("image file size must be less than 10MB")

	// ErrPictureType is returned for profile pictures that are not images.
	ErrPictureType = errors.New("please upload a valid image file (JPG, PNG, GIF, WebP)")
)
