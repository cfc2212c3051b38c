package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrAdminRequired      = errors.New("admin privilege required")
)
