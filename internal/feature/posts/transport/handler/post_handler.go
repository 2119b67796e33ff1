// Package handler provides the HTTP handlers for the posts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/transport/http/dto"
	"blog_backend/internal/feature/posts/usecase"
	jwtauth "blog_backend/internal/platform/jwt"
)

// PostUsecase defines the post operations the handler depends on.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type PostUsecase interface {
	Create(ctx context.Context, callerID uint, title, content string) (*entity.Post, error)
	Get(ctx context.Context, id uint) (*entity.Post, error)
	ListAll(ctx context.Context) ([]entity.Post, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Post, error)
	Update(ctx context.Context, callerID, id uint, title, content string) (*entity.Post, error)
	Patch(ctx context.Context, callerID, id uint, patch usecase.PostPatch) (*entity.Post, error)
	Delete(ctx context.Context, callerID, id uint) error
}

// PostHandler handles HTTP requests for post CRUD.
// Reads are public; mutations sit behind AuthRequired and the usecase
// enforces ownership.
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// List handles GET /posts.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("list posts failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewPostList(posts))
}

// ListByUser handles GET /users/:id/posts.
func (h *PostHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	posts, err := h.posts.ListByUser(c.Request.Context(), uint(userID))
	if err != nil {
		slog.Error("list user posts failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewPostList(posts))
}

// Create handles POST /posts. The owner is always the authenticated
// caller; the request body carries no user id.
func (h *PostHandler) Create(c *gin.Context) {
	caller, ok := jwtauth.CurrentUser(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
		return
	}

	var req dto.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create post validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), caller.ID, req.Title, req.Content)
	if err != nil {
		slog.Error("create post failed", "error", err, "user_id", caller.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	slog.Info("post created", "post_id", post.ID, "user_id", caller.ID)
	c.JSON(http.StatusCreated, dto.NewPostResp(post))
}

// Get handles GET /posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := h.posts.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		slog.Error("get post failed", "error", err, "post_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewPostResp(post))
}

// Update handles PUT /posts/:id. Full replace; owner only.
func (h *PostHandler) Update(c *gin.Context) {
	caller, ok := jwtauth.CurrentUser(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req dto.UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Update(c.Request.Context(), caller.ID, uint(id), req.Title, req.Content)
	if err != nil {
		h.mutationError(c, err, uint(id), caller.ID)
		return
	}
	c.JSON(http.StatusOK, dto.NewPostResp(post))
}

// Patch handles PATCH /posts/:id. Partial update; owner only.
func (h *PostHandler) Patch(c *gin.Context) {
	caller, ok := jwtauth.CurrentUser(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req dto.PatchPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Patch(c.Request.Context(), caller.ID, uint(id), usecase.PostPatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.mutationError(c, err, uint(id), caller.ID)
		return
	}
	c.JSON(http.StatusOK, dto.NewPostResp(post))
}

// Delete handles DELETE /posts/:id. Owner only.
func (h *PostHandler) Delete(c *gin.Context) {
	caller, ok := jwtauth.CurrentUser(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.posts.Delete(c.Request.Context(), caller.ID, uint(id)); err != nil {
		h.mutationError(c, err, uint(id), caller.ID)
		return
	}

	slog.Info("post deleted", "post_id", id, "user_id", caller.ID)
	c.Status(http.StatusNoContent)
}

// mutationError maps usecase errors from update/patch/delete to HTTP
// responses. The existence check runs before the ownership check, so a
// missing post is always 404 regardless of who asks.
func (h *PostHandler) mutationError(c *gin.Context, err error, postID, callerID uint) {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	case errors.Is(err, usecase.ErrNotOwner):
		slog.Warn("post mutation forbidden", "post_id", postID, "user_id", callerID)
		c.JSON(http.StatusForbidden, gin.H{"error": "not the post owner"})
	default:
		slog.Error("post mutation failed", "error", err, "post_id", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
