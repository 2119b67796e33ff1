package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager(testSecret, 30*time.Minute)

	token, err := m.Issue(42)
	require.NoError(t, err, "failed to issue token")
	require.NotEmpty(t, token)

	// Compact JWS: header.payload.signature
	assert.Len(t, splitToken(token), 3, "token is not a three-segment JWS")

	sub, err := m.Verify(token)
	require.NoError(t, err, "failed to verify freshly issued token")
	assert.Equal(t, "42", sub, "subject should round-trip as a string")
}

func TestManager_VerifyExpired(t *testing.T) {
	m := NewManager(testSecret, 30*time.Minute)

	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{"zero ttl", 0},
		{"negative ttl", -time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := m.IssueWithTTL(42, tt.ttl)
			require.NoError(t, err)

			_, err = m.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken, "expired token should not verify")
		})
	}
}

func TestManager_VerifyTampered(t *testing.T) {
	m := NewManager(testSecret, 30*time.Minute)

	token, err := m.Issue(42)
	require.NoError(t, err)

	// Flipping any single character must break verification.
	for _, pos := range []int{0, len(token) / 2, len(token) - 1} {
		tampered := []byte(token)
		if tampered[pos] == 'A' {
			tampered[pos] = 'B'
		} else {
			tampered[pos] = 'A'
		}

		_, err := m.Verify(string(tampered))
		assert.ErrorIs(t, err, ErrInvalidToken, "tampered token at position %d should not verify", pos)
	}
}

func TestManager_VerifyWrongSecret(t *testing.T) {
	issuer := NewManager(testSecret, 30*time.Minute)
	verifier := NewManager("a-different-secret", 30*time.Minute)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyMissingClaims(t *testing.T) {
	m := NewManager(testSecret, 30*time.Minute)

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing exp", jwt.MapClaims{"sub": "42"}},
		{"missing sub", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}},
		{"non-string sub", jwt.MapClaims{"sub": 42, "exp": time.Now().Add(time.Hour).Unix()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, verr := m.Verify(token)
			assert.ErrorIs(t, verr, ErrInvalidToken)
		})
	}
}

func TestManager_VerifyRejectsUnsignedToken(t *testing.T) {
	m := NewManager(testSecret, 30*time.Minute)

	claims := jwt.MapClaims{"sub": "42", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, verr := m.Verify(token)
	assert.ErrorIs(t, verr, ErrInvalidToken, "alg=none token should not verify")
}

func TestManager_VerifyMalformed(t *testing.T) {
	m := NewManager(testSecret, 30*time.Minute)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "malformed token %q should not verify", token)
	}
}

func splitToken(token string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			parts = append(parts, token[start:i])
			start = i + 1
		}
	}
	return append(parts, token[start:])
}
