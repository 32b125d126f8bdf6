// Package auth provides password hashing and verification for the
// credential pipeline.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher defines the interface for hashing plaintext passwords.
type PasswordHasher interface {
	// Hash derives a one-way, salted hash from the plaintext password.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, or an error on failure (e.g.,
	// mismatch).
	Compare(hashedPassword, password string) error

	// CompareDummy performs a comparison that always fails but costs the
	// same as Compare. Callers use it on the unknown-account path to keep
	// response timing uniform.
	CompareDummy(password string)
}

// dummyHash is a bcrypt hash of an unguessable placeholder. When a login
// names an unknown account, the verifier still runs one compare against
// this hash so the response time does not reveal whether the account
// exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// BcryptVerifier implements PasswordHasher and PasswordVerifier using bcrypt.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a new BcryptVerifier with the given hashing
// cost. Costs outside bcrypt's supported range fall back to the default.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash implements the PasswordHasher interface using bcrypt.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare implements the PasswordVerifier interface using bcrypt.
// bcrypt's comparison is constant-time over the derived key.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// CompareDummy burns one bcrypt comparison against a fixed hash. Called on
// the unknown-account path so it costs the same as a real mismatch.
func (v *BcryptVerifier) CompareDummy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
