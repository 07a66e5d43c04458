package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAccountLocked      = errors.New("account locked")
	ErrUserNotFound       = errors.New("user not found")

	// Missing vs invalid refresh tokens map to different statuses
	// (400 vs 401); everything else that is wrong with a presented
	// token or code collapses into ErrInvalidToken on purpose.
	ErrMissingRefreshToken = errors.New("missing refresh token")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrInvalidToken        = errors.New("invalid or expired token")
)
