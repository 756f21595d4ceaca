package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("hunter2pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2pass", hash)

	assert.True(t, hasher.Check("hunter2pass", hash))
	assert.False(t, hasher.Check("wrongpass99", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("hunter2pass")
	require.NoError(t, err)
	second, err := hasher.Hash("hunter2pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("hunter2pass", first))
	assert.True(t, hasher.Check("hunter2pass", second))
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("hunter2pass", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("hunter2pass", ""))
}

func TestNewBcryptHasherWithCost_OutOfRangeFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MaxCost + 1).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasherWithCost(-1).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
