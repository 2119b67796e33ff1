package usecase

import (
	"context"
	"errors"
	"fmt"

	"blog_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUsernameTaken or
	// ErrEmailTaken when a unique constraint is violated.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by username, ignoring case.
	// It returns ErrUserNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a user by email, ignoring case.
	// It returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher abstracts the one-way credential hashing algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// TokenIssuer creates a signed bearer token for a user id.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

// dummyDigest is a well-formed argon2id digest that matches no password.
// Login verifies against it when the email is unknown so that lookups for
// existing and missing accounts take comparable time.
const dummyDigest = "$argon2id$v=19$m=65536,t=1,p=4$c29tZXNhbHRzb21lc2FsdA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

type userUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewUserUsecase creates a new userUsecase instance.
func NewUserUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *userUsecase {
	return &userUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user with a hashed password. Username and email
// uniqueness is checked case-insensitively before the insert; the
// database unique index closes the remaining race window and the adapter
// maps that violation to the same errors.
func (u *userUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by email and returns a signed bearer token.
// The password is verified even when the email is unknown so response
// timing does not reveal whether the account exists, and both failure
// modes collapse into ErrInvalidCredentials.
func (u *userUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	digest := dummyDigest
	if err == nil {
		digest = user.Password
	}
	ok := u.hasher.Verify(password, digest)

	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.Issue(user.ID)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to issue token: %w", tokenErr)
	}

	return token, nil
}

// GetByID returns the user with the given id.
func (u *userUsecase) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}
