// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by id,
	// username or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the requested username is already
	// registered, ignoring case.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when the requested email is already
	// registered, ignoring case.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. Callers must not reveal which.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
