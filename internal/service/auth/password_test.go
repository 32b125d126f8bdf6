package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifierHashAndCompare(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; production cost comes from config.
	v := NewBcryptVerifier(bcrypt.MinCost)

	hash, err := v.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, v.Compare(hash, "correct horse battery staple"))
	assert.Error(t, v.Compare(hash, "wrong password"))
}

func TestBcryptVerifierHashesDiffer(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier(bcrypt.MinCost)

	first, err := v.Hash("samepassword")
	require.NoError(t, err)
	second, err := v.Hash("samepassword")
	require.NoError(t, err)

	// Salted hashing: same input, different outputs.
	assert.NotEqual(t, first, second)
}

func TestNewBcryptVerifierClampsInvalidCost(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier(99)
	assert.Equal(t, bcrypt.DefaultCost, v.cost)

	v = NewBcryptVerifier(0)
	assert.Equal(t, bcrypt.DefaultCost, v.cost)
}

func TestCompareDummyDoesNotPanic(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier(bcrypt.MinCost)
	v.CompareDummy("anything")
}
