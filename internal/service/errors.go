package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidPagination   = errors.New("skip and limit must not be negative")

	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInactiveUser     = errors.New("user is inactive")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to data of a different user")
	ErrNotSuperuser                          = errors.New("the user doesn't have enough privileges")

	ErrEmptyImage    = errors.New("image is empty")
	ErrNotAnImage    = errors.New("uploaded file is not an image")
	ErrImageTooLarge = errors.New("image is too large")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
