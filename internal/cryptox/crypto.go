// Package cryptox provides password hashing for the local credential store.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns a deterministic one-way digest of the password:
// sha256 rendered as 64 lowercase hex characters. Identical input produces
// identical output across runs and platforms.
//
// The digest is intentionally unsalted so that a locally stored hash can be
// recomputed and compared without any per-user state. This is a known
// weakness of the local-fallback mode; a production-grade backend should use
// a salted, memory-hard hash on its side instead.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password hashes to storedHash.
// The comparison is constant-time.
func VerifyPassword(password, storedHash string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
