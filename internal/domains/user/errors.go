package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Service-level errors
var (
	// ErrInvalidCredentials is returned for both unknown username and wrong
	// password so the caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
