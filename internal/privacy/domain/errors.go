package domain

import "errors"

var (
	ErrInvalidEnum    = errors.New("value is not one of the allowed options")
	ErrInvalidHandle  = errors.New("handle must be 3-30 letters, digits, '_', '-' or '.'")
	ErrInvalidName    = errors.New("real name must be 1-100 characters")
	ErrDisplayTooLong = errors.New("display name must be at most 50 characters")
)
