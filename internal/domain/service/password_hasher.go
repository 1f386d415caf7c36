// Package service declares domain service interfaces implemented by the
// infrastructure layer.
package service

// PasswordHasher hashes and verifies admin account passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
