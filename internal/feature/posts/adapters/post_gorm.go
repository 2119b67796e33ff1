// Package adapters provides the repository implementations for the posts
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/usecase"
)

// postGorm is the gorm implementation of the PostRepository interface.
type postGorm struct {
	db *gorm.DB
}

// Compile-time check that postGorm implements PostRepository.
var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostGorm creates a new postGorm instance over the given connection.
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// Create inserts the post.
func (r *postGorm) Create(ctx context.Context, p *entity.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID retrieves a post with its author preloaded.
func (r *postGorm) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var p entity.Post
	if err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListAll returns every post with authors preloaded.
func (r *postGorm) ListAll(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.WithContext(ctx).Preload("Author").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByUser returns the posts created by the given user.
func (r *postGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.WithContext(ctx).Preload("Author").Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update persists title and content changes. CreatedAt and UserID are
// immutable, so the update is limited to the two mutable columns.
func (r *postGorm) Update(ctx context.Context, p *entity.Post) error {
	return r.db.WithContext(ctx).Model(&entity.Post{}).Where("id = ?", p.ID).
		Updates(map[string]interface{}{"title": p.Title, "content": p.Content}).Error
}

// Delete removes the post with the given id.
func (r *postGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Post{}, id).Error
}
