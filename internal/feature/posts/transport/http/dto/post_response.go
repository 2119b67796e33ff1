package dto

import (
	"time"

	"blog_backend/internal/feature/posts/domain/entity"
)

// AuthorResp is the public author shape embedded in post responses.
type AuthorResp struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// PostResp is the response shape for a single post.
type PostResp struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	UserID     uint       `json:"user_id"`
	DatePosted time.Time  `json:"date_posted"`
	Author     AuthorResp `json:"author"`
}

// NewPostResp maps a post entity to its response shape.
func NewPostResp(p *entity.Post) PostResp {
	return PostResp{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		UserID:     p.UserID,
		DatePosted: p.CreatedAt,
		Author:     AuthorResp{ID: p.Author.ID, Username: p.Author.Username},
	}
}

// NewPostList maps a slice of post entities to response shapes.
func NewPostList(posts []entity.Post) []PostResp {
	out := make([]PostResp, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostResp(&posts[i]))
	}
	return out
}
