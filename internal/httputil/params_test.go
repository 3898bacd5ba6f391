package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUIDParam(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "song_id", Value: id.String()}}

		parsed, err := ParseUUIDParam(c, "song_id")
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("Error_InvalidUUID", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "song_id", Value: "not-a-uuid"}}

		parsed, err := ParseUUIDParam(c, "song_id")
		assert.Error(t, err)
		assert.Equal(t, uuid.Nil, parsed)
		assert.Contains(t, err.Error(), "invalid song_id parameter")
	})
}
