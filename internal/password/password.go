// Package password implements salted password derivation and verification.
package password

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id parameters.
const (
	argonTime    = 1         // iterations
	argonMemory  = 64 * 1024 // 64 MB
	argonThreads = 4         // parallelism
	argonKeyLen  = 32        // derived key length in bytes

	// SaltLength is the number of random bytes in a per-user salt.
	SaltLength = 16
)

// GenerateSalt returns a fresh cryptographically random salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Hash derives a key from the password and salt. The derivation is
// deterministic: the same (password, salt) pair always yields the same hash.
func Hash(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// Verify re-derives the hash for the candidate password and compares it to
// the stored hash in constant time.
func Verify(password string, salt, hash []byte) bool {
	candidate := Hash(password, salt)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
