package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	albumDomain "github.com/allisson/echo/internal/album/domain"
	"github.com/allisson/echo/internal/album/http/dto"
	usecaseMocks "github.com/allisson/echo/internal/album/usecase/mocks"
	songDomain "github.com/allisson/echo/internal/song/domain"
	songDTO "github.com/allisson/echo/internal/song/http/dto"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRouter(uc *usecaseMocks.MockAlbumUseCase) *gin.Engine {
	handler := NewAlbumHandler(uc, createTestLogger())

	router := gin.New()
	router.GET("/albums", handler.ListHandler)
	router.POST("/albums", handler.CreateHandler)
	router.GET("/albums/:album_id", handler.GetHandler)
	router.PUT("/albums/:album_id", handler.UpdateHandler)
	router.DELETE("/albums/:album_id", handler.DeleteHandler)
	router.GET("/albums/:album_id/songs", handler.ListSongsHandler)
	return router
}

func newAlbum() *albumDomain.Album {
	now := time.Now().UTC()
	return &albumDomain.Album{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Kind of Blue",
		ArtistID:  uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestAlbumHandler_List(t *testing.T) {
	uc := &usecaseMocks.MockAlbumUseCase{}
	album := newAlbum()
	uc.On("List", mock.Anything, albumDomain.ListFilter{Query: "kind", Limit: 50}).
		Return([]*albumDomain.Album{album}, nil).
		Once()

	w := httptest.NewRecorder()
	setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums?q=kind", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListAlbumsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, album.Name, resp.Data[0].Name)
}

func TestAlbumHandler_Create(t *testing.T) {
	t.Run("Success_Created", func(t *testing.T) {
		uc := &usecaseMocks.MockAlbumUseCase{}
		album := newAlbum()
		uc.On("Create", mock.Anything, &albumDomain.AlbumInput{Name: album.Name, ArtistID: album.ArtistID}).
			Return(album, nil).
			Once()

		body := fmt.Sprintf(`{"name":%q,"artist_id":%q}`, album.Name, album.ArtistID.String())
		w := httptest.NewRecorder()
		setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/albums", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("Error_Validation", func(t *testing.T) {
		uc := &usecaseMocks.MockAlbumUseCase{}

		w := httptest.NewRecorder()
		setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/albums", bytes.NewBufferString(`{}`)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAlbumHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &usecaseMocks.MockAlbumUseCase{}
		album := newAlbum()
		uc.On("Get", mock.Anything, album.ID).Return(album, nil).Once()

		w := httptest.NewRecorder()
		setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums/"+album.ID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		uc := &usecaseMocks.MockAlbumUseCase{}
		id := uuid.Must(uuid.NewV7())
		uc.On("Get", mock.Anything, id).Return(nil, albumDomain.ErrAlbumNotFound).Once()

		w := httptest.NewRecorder()
		setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAlbumHandler_UpdateAndDelete(t *testing.T) {
	uc := &usecaseMocks.MockAlbumUseCase{}
	album := newAlbum()
	uc.On("Update", mock.Anything, album.ID, mock.Anything).Return(album, nil).Once()
	uc.On("Delete", mock.Anything, album.ID).Return(nil).Once()
	router := setupRouter(uc)

	body := fmt.Sprintf(`{"name":"Kind of Blue (Legacy)","artist_id":%q}`, album.ArtistID.String())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/albums/"+album.ID.String(), bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/albums/"+album.ID.String(), nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	uc.AssertExpectations(t)
}

func TestAlbumHandler_ListSongs(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &usecaseMocks.MockAlbumUseCase{}
		albumID := uuid.Must(uuid.NewV7())
		song := &songDomain.Song{ID: uuid.Must(uuid.NewV7()), Title: "So What", AlbumID: &albumID}
		uc.On("ListSongs", mock.Anything, albumID, 0, 50).Return([]*songDomain.Song{song}, nil).Once()

		w := httptest.NewRecorder()
		setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums/"+albumID.String()+"/songs", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp songDTO.ListSongsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		require.NotNil(t, resp.Data[0].AlbumID)
		assert.Equal(t, albumID.String(), *resp.Data[0].AlbumID)
	})

	t.Run("Error_AlbumNotFound", func(t *testing.T) {
		uc := &usecaseMocks.MockAlbumUseCase{}
		albumID := uuid.Must(uuid.NewV7())
		uc.On("ListSongs", mock.Anything, albumID, 0, 50).Return(nil, albumDomain.ErrAlbumNotFound).Once()

		w := httptest.NewRecorder()
		setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums/"+albumID.String()+"/songs", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
