// Package dto defines data transfer objects for the posts feature's HTTP
// transport layer.
package dto

// CreatePostReq represents the request body for POST /posts.
// Ownership is bound to the authenticated caller; the body carries no
// user id.
type CreatePostReq struct {
	Title   string `json:"title" binding:"required,min=1,max=100"`
	Content string `json:"content" binding:"required,min=1,max=100"`
}

// UpdatePostReq represents the request body for PUT /posts/:id.
// A full update: both fields are required.
type UpdatePostReq struct {
	Title   string `json:"title" binding:"required,min=1,max=100"`
	Content string `json:"content" binding:"required,min=1,max=100"`
}

// PatchPostReq represents the request body for PATCH /posts/:id.
// All fields are optional; absent fields leave the post untouched.
type PatchPostReq struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=100"`
	Content *string `json:"content" binding:"omitempty,min=1,max=100"`
}
