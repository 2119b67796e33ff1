package dto

// LoginForm represents the form-encoded body for POST /users/token.
// The username field carries the email address, following the OAuth2
// password-grant form convention.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
