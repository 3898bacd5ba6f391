package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/echo/internal/errors"
)

func TestUpdateUserInput_Apply(t *testing.T) {
	avatar := "https://cdn.example.com/old.png"

	t.Run("Success_PartialUpdate", func(t *testing.T) {
		user := &User{Username: "alice", AvatarURL: &avatar}
		newName := "alice2"

		(&UpdateUserInput{Username: &newName}).Apply(user)

		assert.Equal(t, "alice2", user.Username)
		assert.Equal(t, &avatar, user.AvatarURL)
	})

	t.Run("Success_AvatarOnly", func(t *testing.T) {
		user := &User{Username: "alice"}
		newAvatar := "https://cdn.example.com/new.png"

		(&UpdateUserInput{AvatarURL: &newAvatar}).Apply(user)

		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, newAvatar, *user.AvatarURL)
	})

	t.Run("Success_Empty", func(t *testing.T) {
		user := &User{Username: "alice"}
		(&UpdateUserInput{}).Apply(user)
		assert.Equal(t, "alice", user.Username)
		assert.Nil(t, user.AvatarURL)
	})
}

func TestUserErrors(t *testing.T) {
	assert.True(t, apperrors.Is(ErrUserNotFound, apperrors.ErrNotFound))
	assert.True(t, apperrors.Is(ErrUsernameTaken, apperrors.ErrConflict))
}
