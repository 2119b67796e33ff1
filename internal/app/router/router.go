// Package router builds the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	posthandler "blog_backend/internal/feature/posts/transport/handler"
	userhandler "blog_backend/internal/feature/users/transport/handler"
	"blog_backend/internal/platform/http/handler"
	"blog_backend/internal/platform/middleware"
)

// NewRouter wires handlers into a gin engine. Public routes (reads,
// registration, login) are registered directly; mutating post routes and
// the private profile sit behind the identity-resolving auth middleware.
func NewRouter(userH *userhandler.UserHandler, postH *posthandler.PostHandler,
	authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	// Public routes
	r.POST("/users", userH.Register)
	r.POST("/users/token", userH.Login)
	r.GET("/users/:id", userH.GetByID)
	r.GET("/users/:id/posts", postH.ListByUser)
	r.GET("/posts", postH.List)
	r.GET("/posts/:id", postH.Get)

	// Routes requiring a valid bearer token
	auth := r.Group("/")
	auth.Use(authRequired)
	{
		auth.GET("/users/me", userH.Me)
		auth.POST("/posts", postH.Create)
		auth.PUT("/posts/:id", postH.Update)
		auth.PATCH("/posts/:id", postH.Patch)
		auth.DELETE("/posts/:id", postH.Delete)
	}

	return r
}
