// Package hash provides one-way password hashing with argon2id.
package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Params controls the argon2id cost. MemoryKiB is in KiB as the argon2
// API expects.
type Params struct {
	Time       uint32
	MemoryKiB  uint32
	Threads    uint8
	SaltLength uint32
	KeyLength  uint32
}

// DefaultParams returns the recommended cost for interactive logins.
func DefaultParams() Params {
	return Params{
		Time:       1,
		MemoryKiB:  64 * 1024,
		Threads:    4,
		SaltLength: 16,
		KeyLength:  32,
	}
}

// Argon2Hasher hashes passwords with argon2id and a random per-hash salt.
// Digests use the PHC string format, so Verify can recover the parameters
// a digest was created with even after the configured cost changes.
type Argon2Hasher struct {
	params Params
}

// NewArgon2Hasher creates a hasher with the given parameters.
func NewArgon2Hasher(params Params) *Argon2Hasher {
	return &Argon2Hasher{params: params}
}

// Hash derives an argon2id digest from the plaintext password.
// The only error path is the system RNG failing, which is not expected.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, h.params.KeyLength)

	digest := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return digest, nil
}

// Verify reports whether the plaintext password matches the stored digest.
// The comparison is constant time. A malformed digest is simply a mismatch;
// callers never learn why verification failed.
func (h *Argon2Hasher) Verify(password, digest string) bool {
	salt, key, params, err := decodeDigest(digest)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, params.Time, params.MemoryKiB, params.Threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, derived) == 1
}

// decodeDigest parses a PHC-formatted argon2id digest:
// $argon2id$v=19$m=65536,t=1,p=4$<b64 salt>$<b64 key>
func decodeDigest(digest string) (salt, key []byte, params Params, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, params, fmt.Errorf("malformed digest")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, params, fmt.Errorf("malformed version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, params, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.MemoryKiB, &params.Time, &params.Threads); err != nil {
		return nil, nil, params, fmt.Errorf("malformed parameters: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("malformed salt: %w", err)
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, fmt.Errorf("malformed key: %w", err)
	}
	return salt, key, params, nil
}
