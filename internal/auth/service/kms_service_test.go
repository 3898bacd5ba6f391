package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"gocloud.dev/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestKMSService_OpenKeeper(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, keeper.Close())
		}()

		_, ok := keeper.(*secrets.Keeper)
		assert.True(t, ok, "keeper should be *secrets.Keeper")
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})
}

func TestResolveSigningSecret(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_PlainSecret", func(t *testing.T) {
		secret, err := ResolveSigningSecret(ctx, kmsService, "plain-secret", "")
		require.NoError(t, err)
		assert.Equal(t, []byte("plain-secret"), secret)
	})

	t.Run("Success_WrappedSecret", func(t *testing.T) {
		keyURI := generateLocalSecretsURI(t)
		wrapped, err := WrapSigningSecret(ctx, kmsService, []byte("wrapped-secret"), keyURI)
		require.NoError(t, err)
		assert.NotEqual(t, "wrapped-secret", wrapped)

		secret, err := ResolveSigningSecret(ctx, kmsService, wrapped, keyURI)
		require.NoError(t, err)
		assert.Equal(t, []byte("wrapped-secret"), secret)
	})

	t.Run("Error_EmptySecret", func(t *testing.T) {
		secret, err := ResolveSigningSecret(ctx, kmsService, "", "")
		assert.ErrorIs(t, err, ErrEmptySigningSecret)
		assert.Nil(t, secret)
	})

	t.Run("Error_NotBase64", func(t *testing.T) {
		secret, err := ResolveSigningSecret(ctx, kmsService, "%%%", generateLocalSecretsURI(t))
		assert.Error(t, err)
		assert.Nil(t, secret)
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		wrapped, err := WrapSigningSecret(ctx, kmsService, []byte("wrapped-secret"), generateLocalSecretsURI(t))
		require.NoError(t, err)

		secret, err := ResolveSigningSecret(ctx, kmsService, wrapped, generateLocalSecretsURI(t))
		assert.Error(t, err)
		assert.Nil(t, secret)
	})
}
