package jwtauth

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/users/domain/entity"
)

const (
	// ContextUser is the gin context key holding the resolved *entity.User.
	ContextUser = "currentUser"
	// ContextUserID is the gin context key holding the resolved user id.
	ContextUserID = "userID"
)

// TokenVerifier verifies a bearer token and returns its subject.
// The interface is defined here, on the consumer side of the Manager.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder loads the user record a verified token refers to.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that resolves the authenticated
// caller from the Authorization header and stores it in the context.
// Missing header, invalid token, non-numeric subject and a subject whose
// user row no longer exists all abort with the same 401; the response
// carries a WWW-Authenticate challenge and never explains which check
// failed.
func AuthRequired(verifier TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		sub, err := verifier.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// A well-signed token can still carry a forged or corrupted
		// subject; treat it exactly like a bad signature.
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// The user may have been deleted after the token was issued.
		user, err := users.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired, if any.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
}
