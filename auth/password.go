package auth

import (
	"github.com/alexedwards/argon2id"
)

// HashPassword produces a salted argon2id digest in the standard encoded
// form. Only used when seeding the store, the plaintext never persists.
func HashPassword(plain string) (string, error) {
	return argon2id.CreateHash(plain, argon2id.DefaultParams)
}

// VerifyPassword reports whether plain matches the stored digest.
// The error return is for malformed digests, not for mismatches.
func VerifyPassword(plain, digest string) (bool, error) {
	return argon2id.ComparePasswordAndHash(plain, digest)
}
