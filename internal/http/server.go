// Package http provides the API and metrics HTTP servers.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	albumHTTP "github.com/allisson/echo/internal/album/http"
	authDomain "github.com/allisson/echo/internal/auth/domain"
	authHTTP "github.com/allisson/echo/internal/auth/http"
	authService "github.com/allisson/echo/internal/auth/service"
	authUseCase "github.com/allisson/echo/internal/auth/usecase"
	favoriteHTTP "github.com/allisson/echo/internal/favorite/http"
	"github.com/allisson/echo/internal/metrics"
	playlistHTTP "github.com/allisson/echo/internal/playlist/http"
	songHTTP "github.com/allisson/echo/internal/song/http"
	userHTTP "github.com/allisson/echo/internal/user/http"
)

// Server is the public API server.
type Server struct {
	listener
}

// AuthDependencies are the collaborators of the session middleware.
type AuthDependencies struct {
	Routes         *authDomain.RouteTable
	TokenService   authService.TokenService
	SessionUseCase authUseCase.SessionUseCase
	AdminGate      authUseCase.AdminGate
	Decisions      metrics.AuthDecisionRecorder
}

// Handlers groups the resource handlers mounted on the router.
type Handlers struct {
	Session  *authHTTP.SessionHandler
	User     *userHTTP.UserHandler
	Song     *songHTTP.SongHandler
	Album    *albumHTTP.AlbumHandler
	Playlist *playlistHTTP.PlaylistHandler
	Favorite *favoriteHTTP.FavoriteHandler
}

// RouterOptions holds the optional middleware settings.
type RouterOptions struct {
	CORSEnabled      bool
	CORSAllowOrigins string
	// MetricsProvider enables the HTTP metrics middleware when non-nil.
	MetricsProvider  *metrics.Provider
	MetricsNamespace string
}

// NewServer creates the API server. SetupRouter must be called before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{listener: newListener("http server", host, port, logger)}
}

// SetupRouter builds the gin engine. Every route, including unknown ones, passes
// through the session middleware before reaching a handler.
func (s *Server) SetupRouter(opts RouterOptions, auth AuthDependencies, handlers Handlers) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(opts.CORSEnabled, opts.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if opts.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(opts.MetricsProvider.MeterProvider(), opts.MetricsNamespace))
	}

	router.Use(authHTTP.SessionMiddleware(
		auth.Routes,
		auth.TokenService,
		auth.SessionUseCase,
		auth.AdminGate,
		auth.Decisions,
		s.logger,
	))

	router.GET("/health", s.healthHandler)

	sessions := router.Group("/sessions")
	{
		sessions.POST("", handlers.Session.LoginHandler)
		sessions.GET("/current", handlers.Session.CurrentHandler)
		sessions.DELETE("/current", handlers.Session.LogoutHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", handlers.User.CreateHandler)
		users.GET("/:user_id", handlers.User.GetHandler)
		users.PATCH("/:user_id", handlers.User.UpdateHandler)

		playlists := users.Group("/:user_id/playlists")
		playlists.GET("", handlers.Playlist.ListHandler)
		playlists.POST("", handlers.Playlist.CreateHandler)
		playlists.GET("/:playlist_id", handlers.Playlist.GetHandler)
		playlists.PUT("/:playlist_id", handlers.Playlist.UpdateHandler)
		playlists.DELETE("/:playlist_id", handlers.Playlist.DeleteHandler)
		playlists.GET("/:playlist_id/songs", handlers.Playlist.ListSongsHandler)
		playlists.POST("/:playlist_id/songs", handlers.Playlist.AddSongHandler)
		playlists.DELETE("/:playlist_id/songs/:song_id", handlers.Playlist.RemoveSongHandler)

		favorites := users.Group("/:user_id/favorites/songs")
		favorites.GET("", handlers.Favorite.ListHandler)
		favorites.POST("", handlers.Favorite.AddHandler)
		favorites.DELETE("/:song_id", handlers.Favorite.RemoveHandler)
	}

	songs := router.Group("/songs")
	{
		songs.GET("", handlers.Song.ListHandler)
		songs.POST("", handlers.Song.CreateHandler)
		songs.GET("/:song_id", handlers.Song.GetHandler)
		songs.PUT("/:song_id", handlers.Song.UpdateHandler)
		songs.DELETE("/:song_id", handlers.Song.DeleteHandler)
	}

	albums := router.Group("/albums")
	{
		albums.GET("", handlers.Album.ListHandler)
		albums.POST("", handlers.Album.CreateHandler)
		albums.GET("/:album_id", handlers.Album.GetHandler)
		albums.PUT("/:album_id", handlers.Album.UpdateHandler)
		albums.DELETE("/:album_id", handlers.Album.DeleteHandler)
		albums.GET("/:album_id/songs", handlers.Album.ListSongsHandler)
	}

	s.server.Handler = router
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
