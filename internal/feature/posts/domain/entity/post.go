// Package entity defines the domain entities for the posts feature.
package entity

import (
	"time"

	userentity "blog_backend/internal/feature/users/domain/entity"
)

// Post represents a piece of content created by a user.
// UserID is set once at creation and never changes; only the owning user
// may update or delete the post.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint `gorm:"primaryKey"`

	// Title is the post title, 1-100 characters.
	Title string `gorm:"size:100;not null"`

	// Content is the post body, 1-100 characters.
	Content string `gorm:"size:100;not null"`

	// CreatedAt is the timestamp when the post was created. Immutable.
	CreatedAt time.Time

	// UserID references the owning user.
	UserID uint `gorm:"index;not null"`

	// Author is the owning user, preloaded for responses.
	Author userentity.User `gorm:"foreignKey:UserID"`
}
