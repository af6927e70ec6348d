package adapter

import "errors"

var (
	ErrUploadFailed            = errors.New("image upload failed")
	ErrImageHostNotConfigured  = errors.New("image host is not configured")
	ErrUnsupportedImageHost    = errors.New("unsupported image host")
	ErrInvalidImageHostAddress = errors.New("invalid image host address")
)
