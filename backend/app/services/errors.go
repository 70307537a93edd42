package services

import "errors"

var (
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned for unknown usernames and for wrong
	// passwords alike, so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCardNotFound       = errors.New("card not found")
	ErrCardForbidden      = errors.New("you can only modify your own cards")
	ErrValidation         = errors.New("validation failed")
)
