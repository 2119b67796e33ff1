package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/usecase"
	userentity "blog_backend/internal/feature/users/domain/entity"
	jwtauth "blog_backend/internal/platform/jwt"
)

// mockPostUsecase is a mock implementation of the PostUsecase interface.
type mockPostUsecase struct {
	CreateFunc     func(ctx context.Context, callerID uint, title, content string) (*entity.Post, error)
	GetFunc        func(ctx context.Context, id uint) (*entity.Post, error)
	ListAllFunc    func(ctx context.Context) ([]entity.Post, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.Post, error)
	UpdateFunc     func(ctx context.Context, callerID, id uint, title, content string) (*entity.Post, error)
	PatchFunc      func(ctx context.Context, callerID, id uint, patch usecase.PostPatch) (*entity.Post, error)
	DeleteFunc     func(ctx context.Context, callerID, id uint) error
}

func (m *mockPostUsecase) Create(ctx context.Context, callerID uint, title, content string) (*entity.Post, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, callerID, title, content)
	}
	return &entity.Post{ID: 1, Title: title, Content: content, UserID: callerID}, nil
}

func (m *mockPostUsecase) Get(ctx context.Context, id uint) (*entity.Post, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrPostNotFound
}

func (m *mockPostUsecase) ListAll(ctx context.Context) ([]entity.Post, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPostUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.Post, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPostUsecase) Update(ctx context.Context, callerID, id uint, title, content string) (*entity.Post, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, callerID, id, title, content)
	}
	return nil, usecase.ErrPostNotFound
}

func (m *mockPostUsecase) Patch(ctx context.Context, callerID, id uint, patch usecase.PostPatch) (*entity.Post, error) {
	if m.PatchFunc != nil {
		return m.PatchFunc(ctx, callerID, id, patch)
	}
	return nil, usecase.ErrPostNotFound
}

func (m *mockPostUsecase) Delete(ctx context.Context, callerID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, callerID, id)
	}
	return usecase.ErrPostNotFound
}

// asUser stands in for AuthRequired and stores the caller in the context.
func asUser(user *userentity.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtauth.ContextUser, user)
	}
}

var caller = &userentity.User{ID: 7, Username: "alice", Email: "alice@example.com"}

func TestPostHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("owner is bound to the caller", func(t *testing.T) {
		handler := NewPostHandler(&mockPostUsecase{
			CreateFunc: func(ctx context.Context, callerID uint, title, content string) (*entity.Post, error) {
				assert.Equal(t, uint(7), callerID)
				return &entity.Post{
					ID: 1, Title: title, Content: content, UserID: callerID,
					Author: *caller,
				}, nil
			},
		})

		router := gin.New()
		router.POST("/posts", asUser(caller), handler.Create)

		body, _ := json.Marshal(gin.H{"title": "hello", "content": "world"})
		req, _ := http.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(7), resp["user_id"])
		assert.Equal(t, "alice", resp["author"].(map[string]interface{})["username"])
	})

	t.Run("validation: title longer than 100 chars", func(t *testing.T) {
		handler := NewPostHandler(&mockPostUsecase{})

		router := gin.New()
		router.POST("/posts", asUser(caller), handler.Create)

		long := make([]byte, 101)
		for i := range long {
			long[i] = 'x'
		}
		body, _ := json.Marshal(gin.H{"title": string(long), "content": "ok"})
		req, _ := http.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("401 without a resolved user", func(t *testing.T) {
		handler := NewPostHandler(&mockPostUsecase{})

		router := gin.New()
		router.POST("/posts", handler.Create)

		body, _ := json.Marshal(gin.H{"title": "t", "content": "c"})
		req, _ := http.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPostHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewPostHandler(&mockPostUsecase{
		GetFunc: func(ctx context.Context, id uint) (*entity.Post, error) {
			if id == 1 {
				return &entity.Post{ID: 1, Title: "t", Content: "c", UserID: 7, Author: *caller}, nil
			}
			return nil, usecase.ErrPostNotFound
		},
	})
	router := gin.New()
	router.GET("/posts/:id", handler.Get)

	t.Run("found", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/posts/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing id is 404", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/posts/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostHandler_Patch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("applies only present fields", func(t *testing.T) {
		handler := NewPostHandler(&mockPostUsecase{
			PatchFunc: func(ctx context.Context, callerID, id uint, patch usecase.PostPatch) (*entity.Post, error) {
				require.NotNil(t, patch.Title)
				assert.Nil(t, patch.Content, "absent field must stay nil")
				return &entity.Post{ID: id, Title: *patch.Title, Content: "old", UserID: callerID, Author: *caller}, nil
			},
		})

		router := gin.New()
		router.PATCH("/posts/:id", asUser(caller), handler.Patch)

		body, _ := json.Marshal(gin.H{"title": "patched"})
		req, _ := http.NewRequest(http.MethodPatch, "/posts/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "patched")
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		handler := NewPostHandler(&mockPostUsecase{
			PatchFunc: func(ctx context.Context, callerID, id uint, patch usecase.PostPatch) (*entity.Post, error) {
				return nil, usecase.ErrNotOwner
			},
		})

		router := gin.New()
		router.PATCH("/posts/:id", asUser(caller), handler.Patch)

		body, _ := json.Marshal(gin.H{"title": "patched"})
		req, _ := http.NewRequest(http.MethodPatch, "/posts/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPostHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(t *testing.T, deleteErr error) *httptest.ResponseRecorder {
		t.Helper()
		handler := NewPostHandler(&mockPostUsecase{
			DeleteFunc: func(ctx context.Context, callerID, id uint) error {
				return deleteErr
			},
		})

		router := gin.New()
		router.DELETE("/posts/:id", asUser(caller), handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/posts/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("owner delete is 204", func(t *testing.T) {
		w := run(t, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("non-owner is 403", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, run(t, usecase.ErrNotOwner).Code)
	})

	t.Run("missing post is 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, run(t, usecase.ErrPostNotFound).Code)
	})
}
