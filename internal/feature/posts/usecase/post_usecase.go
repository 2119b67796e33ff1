package usecase

import (
	"context"

	"blog_backend/internal/feature/posts/domain/entity"
)

// PostRepository abstracts the persistence layer for post entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type PostRepository interface {
	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a post with its author preloaded.
	// It returns ErrPostNotFound if no such post exists.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// ListAll returns every post with authors preloaded.
	ListAll(ctx context.Context) ([]entity.Post, error)

	// ListByUser returns the posts created by the given user.
	ListByUser(ctx context.Context, userID uint) ([]entity.Post, error)

	// Update persists changes to title and content only.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes the post with the given id.
	Delete(ctx context.Context, id uint) error
}

// PostPatch is a partial update: only fields that are present are applied
// to the target post, absent fields are left untouched.
type PostPatch struct {
	Title   *string
	Content *string
}

type postUsecase struct {
	posts PostRepository
}

// NewPostUsecase creates a new postUsecase instance.
func NewPostUsecase(posts PostRepository) *postUsecase {
	return &postUsecase{posts: posts}
}

// Create stores a new post owned by the caller. Ownership is bound to the
// authenticated user directly, so no authorization check is needed here.
func (u *postUsecase) Create(ctx context.Context, callerID uint, title, content string) (*entity.Post, error) {
	post := &entity.Post{Title: title, Content: content, UserID: callerID}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	// Re-read so the response carries the author association.
	return u.posts.FindByID(ctx, post.ID)
}

// Get returns the post with the given id. Reads are public.
func (u *postUsecase) Get(ctx context.Context, id uint) (*entity.Post, error) {
	return u.posts.FindByID(ctx, id)
}

// ListAll returns every post.
func (u *postUsecase) ListAll(ctx context.Context) ([]entity.Post, error) {
	return u.posts.ListAll(ctx)
}

// ListByUser returns the posts created by the given user.
func (u *postUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.Post, error) {
	return u.posts.ListByUser(ctx, userID)
}

// Update replaces the title and content of the post. The post must exist
// (ErrPostNotFound) and belong to the caller (ErrNotOwner); the 404 check
// runs first so a non-owner learns nothing beyond the post's existence,
// which is public anyway.
func (u *postUsecase) Update(ctx context.Context, callerID, id uint, title, content string) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, ErrNotOwner
	}

	post.Title = title
	post.Content = content
	if err := u.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Patch applies a partial update to the post, overwriting only the fields
// present in the patch. Same existence and ownership rules as Update.
func (u *postUsecase) Patch(ctx context.Context, callerID, id uint, patch PostPatch) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, ErrNotOwner
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if err := u.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post. Same existence and ownership rules as Update.
func (u *postUsecase) Delete(ctx context.Context, callerID, id uint) error {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return ErrNotOwner
	}
	return u.posts.Delete(ctx, id)
}
