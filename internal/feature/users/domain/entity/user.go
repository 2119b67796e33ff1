// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered user.
// Username and email are unique across all users, compared
// case-insensitively; the repository enforces this with a lowered lookup
// plus a database unique index.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the public display name, 1-50 characters.
	Username string `gorm:"uniqueIndex;size:50;not null"`

	// Email is the address used for login, 1-120 characters.
	Email string `gorm:"uniqueIndex;size:120;not null"`

	// Password is the argon2id digest of the user's password.
	// Plaintext is never stored and the digest is never serialized to
	// clients.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
