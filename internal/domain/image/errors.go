package image

import "errors"

var (
	ErrImageNotFound = errors.New("image not found")
	ErrForbidden     = errors.New("you do not own this image")
	ErrFileMissing   = errors.New("file missing from storage")
)
