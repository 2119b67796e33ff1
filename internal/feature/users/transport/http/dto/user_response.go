package dto

import "blog_backend/internal/feature/users/domain/entity"

// TokenResp is the successful login response.
type TokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserPublic is the profile shape anyone may see.
type UserPublic struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// UserPrivate is the profile shape returned to the account owner.
// The password digest is never part of any response.
type UserPrivate struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUserPublic maps a user entity to its public profile.
func NewUserPublic(u *entity.User) UserPublic {
	return UserPublic{ID: u.ID, Username: u.Username}
}

// NewUserPrivate maps a user entity to its private profile.
func NewUserPrivate(u *entity.User) UserPrivate {
	return UserPrivate{ID: u.ID, Username: u.Username, Email: u.Email}
}
