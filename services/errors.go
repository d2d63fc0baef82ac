package services

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed login, whatever the cause.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrRoomUnavailable    = errors.New("room type is not available")
	ErrConflict           = errors.New("record already exists")
)
