package auth

import "errors"

var (
	// ErrEmptyPassword indicates the password argument was empty.
	// Rejected before any credential work is done.
	ErrEmptyPassword = errors.New("argument password is empty, can not log in")

	// ErrNoSession indicates no structurally valid, unexpired session
	// token was presented
	ErrNoSession = errors.New("no active session")
)

// InvalidCredentialsMessage is the single externally visible failure
// message for both unknown accounts and wrong passwords, so response
// content does not reveal which accounts exist.
const InvalidCredentialsMessage = "Invalid credentials"
