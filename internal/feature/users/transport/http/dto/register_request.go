// Package dto defines data transfer objects for the users feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for POST /users.
// It uses Gin's binding tags for validation (required, email format,
// length limits).
type RegisterReq struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required,min=8"`
}
