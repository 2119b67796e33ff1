// Package usecase implements the business logic for the posts feature.
package usecase

import "errors"

var (
	// ErrPostNotFound is returned when a post cannot be found by id.
	ErrPostNotFound = errors.New("post not found")

	// ErrNotOwner is returned when a caller tries to mutate a post they
	// did not create.
	ErrNotOwner = errors.New("not the post owner")
)
