package auth

import (
	"testing"

	"passport/config"

	"github.com/stretchr/testify/assert"
)

func testHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = cost

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	password := "password"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Round-trip: the same plaintext always verifies.
	assert.True(t, hasher.Check(password, hash))

	// A different plaintext never verifies.
	assert.False(t, hasher.Check("not-the-password", hash))
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	first, err := hasher.Hash("password")
	assert.NoError(t, err)
	second, err := hasher.Hash("password")
	assert.NoError(t, err)

	// The per-call salt makes every digest unique.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("password", first))
	assert.True(t, hasher.Check("password", second))
}

func TestBcryptHasher_CheckAgainstGarbage(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(4))

	assert.False(t, hasher.Check("password", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("password", ""))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(99))

	hash, err := hasher.Hash("password")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("password", hash))
}
