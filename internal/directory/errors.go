package directory

import "errors"

var (
	// ErrUserNotFound indicates no account exists for the given email
	ErrUserNotFound = errors.New("user not found")

	// ErrSourceInvalid indicates the directory source was present but
	// empty or malformed
	ErrSourceInvalid = errors.New("user source is empty or invalid")
)
