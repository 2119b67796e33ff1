// Package jwtauth issues and verifies the signed bearer tokens used for
// authentication, and provides the Gin middleware that resolves the
// current caller from one.
package jwtauth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure. Bad
// signature, missing claims, expiry and malformed input are deliberately
// indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid token")

// Manager signs and verifies HS256 tokens with a process-wide secret.
// Tokens are stateless: valid iff the signature checks out, the subject
// claim is present and the expiry is in the future. There is no refresh,
// revocation or rotation.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager with the given signing secret and default
// token lifetime.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token for the given user with the default TTL.
func (m *Manager) Issue(userID uint) (string, error) {
	return m.IssueWithTTL(userID, m.ttl)
}

// IssueWithTTL creates a signed token for the given user that expires at
// now + ttl. The subject claim carries the user id serialized as a string.
func (m *Manager) IssueWithTTL(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and returns its subject.
// Both the exp and sub claims must be present. Any failure yields
// ErrInvalidToken.
func (m *Manager) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC signing is accepted.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
