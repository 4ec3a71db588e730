// Package cryptox implements the password-handling primitives for local
// accounts: an argon2id key derivation and a verifier that is safe to store.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// DeriveKey derives a 32-byte key from a password and salt using argon2id.
// The same (password, salt) pair always yields the same key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value persisted in the users
// table. The key itself is never stored.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifyPassword derives a candidate key from (password, salt) and compares
// its verifier against the stored one in constant time.
func VerifyPassword(password, salt, storedVerifier []byte) bool {
	candidate := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(storedVerifier, candidate) == 1
}
