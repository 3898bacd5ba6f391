package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService_HashAndCompare(t *testing.T) {
	service := NewPasswordService()

	t.Run("Success_Argon2id", func(t *testing.T) {
		hashed, err := service.Hash("letmein42")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hashed, "$argon2id$"))
		assert.True(t, service.Compare("letmein42", hashed))
	})

	t.Run("Failure_WrongPassword", func(t *testing.T) {
		hashed, err := service.Hash("letmein42")
		require.NoError(t, err)
		assert.False(t, service.Compare("wrong", hashed))
	})

	t.Run("Success_UniqueSalts", func(t *testing.T) {
		h1, err := service.Hash("letmein42")
		require.NoError(t, err)
		h2, err := service.Hash("letmein42")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("Success_LegacyBcrypt", func(t *testing.T) {
		legacy, err := bcrypt.GenerateFromPassword([]byte("oldpassword1"), bcrypt.MinCost)
		require.NoError(t, err)
		assert.True(t, service.Compare("oldpassword1", string(legacy)))
		assert.False(t, service.Compare("oldpassword2", string(legacy)))
	})

	t.Run("Failure_GarbageHash", func(t *testing.T) {
		assert.False(t, service.Compare("letmein42", "not-a-hash"))
		assert.False(t, service.Compare("letmein42", ""))
	})
}
