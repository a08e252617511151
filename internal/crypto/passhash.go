// Package crypto implements salted password hashing and verification.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (tuned for interactive login latency).
const (
	argonTime    uint32 = 3         // iterations
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32

	saltLen = 16
)

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// GenerateSalt returns a fresh 16-byte salt encoded as base64 text.
func GenerateSalt() (string, error) {
	b, err := RandBytes(saltLen)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// HashPassword returns the Argon2id hash of password under salt, as base64
// text. Deterministic for the same (password, salt) pair.
func HashPassword(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.StdEncoding.EncodeToString(key)
}

// VerifyPassword reports whether password hashes to expected under salt.
// Comparison is constant-time. Malformed or empty inputs yield false,
// never an error.
func VerifyPassword(password, expected, salt string) bool {
	if expected == "" || salt == "" {
		return false
	}
	got := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1
}
