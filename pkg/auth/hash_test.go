package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashService(t *testing.T) {
	service := &HashService{}

	t.Run("round trip", func(t *testing.T) {
		hash, err := service.HashKey("super-secret-key")
		assert.NoError(t, err)
		assert.NotEqual(t, "super-secret-key", hash)
		assert.True(t, service.CompareKey(hash, "super-secret-key"))
	})

	t.Run("mismatch", func(t *testing.T) {
		hash, err := service.HashKey("super-secret-key")
		assert.NoError(t, err)
		assert.False(t, service.CompareKey(hash, "wrong-key"))
	})

	t.Run("empty key", func(t *testing.T) {
		hash, err := service.HashKey("")
		assert.Error(t, err)
		assert.Empty(t, hash)
	})

	t.Run("malformed hash", func(t *testing.T) {
		assert.False(t, service.CompareKey("not-a-bcrypt-hash", "key"))
	})
}
