package mocks

import (
	"errors"

	"github.com/coursedeck/coursedeck-api/internal/service/auth"
)

// MockPasswordVerifier implements auth.PasswordHasher and
// auth.PasswordVerifier for testing without paying bcrypt's cost.
type MockPasswordVerifier struct {
	// ShouldSucceed controls whether Compare reports a match.
	ShouldSucceed bool

	// HashErr, when set, is returned by Hash.
	HashErr error

	// DummyCompareCalls counts timing-equalization comparisons.
	DummyCompareCalls int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)
var _ auth.PasswordHasher = (*MockPasswordVerifier)(nil)

// Hash returns a recognizable fake hash.
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

// CompareDummy implements auth.PasswordVerifier.
func (m *MockPasswordVerifier) CompareDummy(password string) {
	m.DummyCompareCalls++
}
