package app

import (
	"fmt"

	albumHTTP "github.com/allisson/echo/internal/album/http"
	albumRepository "github.com/allisson/echo/internal/album/repository"
	albumUseCase "github.com/allisson/echo/internal/album/usecase"
	authUseCase "github.com/allisson/echo/internal/auth/usecase"
	"github.com/allisson/echo/internal/database"
	favoriteHTTP "github.com/allisson/echo/internal/favorite/http"
	favoriteRepository "github.com/allisson/echo/internal/favorite/repository"
	favoriteUseCase "github.com/allisson/echo/internal/favorite/usecase"
	"github.com/allisson/echo/internal/http"
	playlistHTTP "github.com/allisson/echo/internal/playlist/http"
	playlistRepository "github.com/allisson/echo/internal/playlist/repository"
	playlistUseCase "github.com/allisson/echo/internal/playlist/usecase"
	songHTTP "github.com/allisson/echo/internal/song/http"
	songRepositoryPkg "github.com/allisson/echo/internal/song/repository"
	songUseCase "github.com/allisson/echo/internal/song/usecase"
	userHTTP "github.com/allisson/echo/internal/user/http"
	userRepositoryPkg "github.com/allisson/echo/internal/user/repository"
	userUseCase "github.com/allisson/echo/internal/user/usecase"
)

// userRepository is served by one store for account management, login and the admin gate.
type userRepository interface {
	userUseCase.UserRepository
	authUseCase.UserRepository
	authUseCase.AdminLookup
}

// songRepository is served by one store for the catalog and album listings.
type songRepository interface {
	songUseCase.SongRepository
	albumUseCase.SongLister
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// SongRepository returns the song repository based on database driver.
func (c *Container) SongRepository() (songRepository, error) {
	var err error
	c.songRepoInit.Do(func() {
		c.songRepo, err = c.initSongRepository()
		if err != nil {
			c.initErrors["songRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["songRepo"]; exists {
		return nil, storedErr
	}
	return c.songRepo, nil
}

// AlbumRepository returns the album repository based on database driver.
func (c *Container) AlbumRepository() (albumUseCase.AlbumRepository, error) {
	var err error
	c.albumRepoInit.Do(func() {
		c.albumRepo, err = c.initAlbumRepository()
		if err != nil {
			c.initErrors["albumRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["albumRepo"]; exists {
		return nil, storedErr
	}
	return c.albumRepo, nil
}

// PlaylistRepository returns the playlist repository based on database driver.
func (c *Container) PlaylistRepository() (playlistUseCase.PlaylistRepository, error) {
	var err error
	c.playlistRepoInit.Do(func() {
		c.playlistRepo, err = c.initPlaylistRepository()
		if err != nil {
			c.initErrors["playlistRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["playlistRepo"]; exists {
		return nil, storedErr
	}
	return c.playlistRepo, nil
}

// FavoriteRepository returns the favorite repository based on database driver.
func (c *Container) FavoriteRepository() (favoriteUseCase.FavoriteRepository, error) {
	var err error
	c.favoriteRepoInit.Do(func() {
		c.favoriteRepo, err = c.initFavoriteRepository()
		if err != nil {
			c.initErrors["favoriteRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["favoriteRepo"]; exists {
		return nil, storedErr
	}
	return c.favoriteRepo, nil
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (userUseCase.UserUseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// SongUseCase returns the song use case.
func (c *Container) SongUseCase() (songUseCase.SongUseCase, error) {
	var err error
	c.songUseCaseInit.Do(func() {
		c.songUseCase, err = c.initSongUseCase()
		if err != nil {
			c.initErrors["songUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["songUseCase"]; exists {
		return nil, storedErr
	}
	return c.songUseCase, nil
}

// AlbumUseCase returns the album use case.
func (c *Container) AlbumUseCase() (albumUseCase.AlbumUseCase, error) {
	var err error
	c.albumUseCaseInit.Do(func() {
		c.albumUseCase, err = c.initAlbumUseCase()
		if err != nil {
			c.initErrors["albumUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["albumUseCase"]; exists {
		return nil, storedErr
	}
	return c.albumUseCase, nil
}

// PlaylistUseCase returns the playlist use case.
func (c *Container) PlaylistUseCase() (playlistUseCase.PlaylistUseCase, error) {
	var err error
	c.playlistUseCaseInit.Do(func() {
		c.playlistUseCase, err = c.initPlaylistUseCase()
		if err != nil {
			c.initErrors["playlistUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["playlistUseCase"]; exists {
		return nil, storedErr
	}
	return c.playlistUseCase, nil
}

// FavoriteUseCase returns the favorite use case.
func (c *Container) FavoriteUseCase() (favoriteUseCase.FavoriteUseCase, error) {
	var err error
	c.favoriteUseCaseInit.Do(func() {
		c.favoriteUseCase, err = c.initFavoriteUseCase()
		if err != nil {
			c.initErrors["favoriteUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["favoriteUseCase"]; exists {
		return nil, storedErr
	}
	return c.favoriteUseCase, nil
}

func (c *Container) initUserRepository() (userRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return userRepositoryPkg.NewPostgreSQLUserRepository(db), nil
	case database.DriverMySQL:
		return userRepositoryPkg.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initSongRepository() (songRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for song repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return songRepositoryPkg.NewPostgreSQLSongRepository(db), nil
	case database.DriverMySQL:
		return songRepositoryPkg.NewMySQLSongRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAlbumRepository() (albumUseCase.AlbumRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for album repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return albumRepository.NewPostgreSQLAlbumRepository(db), nil
	case database.DriverMySQL:
		return albumRepository.NewMySQLAlbumRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initPlaylistRepository() (playlistUseCase.PlaylistRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for playlist repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return playlistRepository.NewPostgreSQLPlaylistRepository(db), nil
	case database.DriverMySQL:
		return playlistRepository.NewMySQLPlaylistRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initFavoriteRepository() (favoriteUseCase.FavoriteRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for favorite repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return favoriteRepository.NewPostgreSQLFavoriteRepository(db), nil
	case database.DriverMySQL:
		return favoriteRepository.NewMySQLFavoriteRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUseCase.UserUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	baseUseCase := userUseCase.NewUserUseCase(txManager, userRepo, c.PasswordService())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUseCase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initSongUseCase() (songUseCase.SongUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for song use case: %w", err)
	}

	songRepo, err := c.SongRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get song repository for song use case: %w", err)
	}

	baseUseCase := songUseCase.NewSongUseCase(txManager, songRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for song use case: %w", err)
		}
		return songUseCase.NewSongUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initAlbumUseCase() (albumUseCase.AlbumUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for album use case: %w", err)
	}

	albumRepo, err := c.AlbumRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get album repository for album use case: %w", err)
	}

	songRepo, err := c.SongRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get song repository for album use case: %w", err)
	}

	baseUseCase := albumUseCase.NewAlbumUseCase(txManager, albumRepo, songRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for album use case: %w", err)
		}
		return albumUseCase.NewAlbumUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initPlaylistUseCase() (playlistUseCase.PlaylistUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for playlist use case: %w", err)
	}

	playlistRepo, err := c.PlaylistRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist repository for playlist use case: %w", err)
	}

	baseUseCase := playlistUseCase.NewPlaylistUseCase(txManager, playlistRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for playlist use case: %w", err)
		}
		return playlistUseCase.NewPlaylistUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initFavoriteUseCase() (favoriteUseCase.FavoriteUseCase, error) {
	favoriteRepo, err := c.FavoriteRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite repository for favorite use case: %w", err)
	}

	baseUseCase := favoriteUseCase.NewFavoriteUseCase(favoriteRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for favorite use case: %w", err)
		}
		return favoriteUseCase.NewFavoriteUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// handlers builds the resource handlers mounted on the API router.
func (c *Container) handlers() (http.Handlers, error) {
	logger := c.Logger()

	sessionHandler, err := c.sessionHandler()
	if err != nil {
		return http.Handlers{}, err
	}

	users, err := c.UserUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get user use case for user handler: %w", err)
	}

	songs, err := c.SongUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get song use case for song handler: %w", err)
	}

	albums, err := c.AlbumUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get album use case for album handler: %w", err)
	}

	playlists, err := c.PlaylistUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get playlist use case for playlist handler: %w", err)
	}

	favorites, err := c.FavoriteUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get favorite use case for favorite handler: %w", err)
	}

	return http.Handlers{
		Session:  sessionHandler,
		User:     userHTTP.NewUserHandler(users, logger),
		Song:     songHTTP.NewSongHandler(songs, logger),
		Album:    albumHTTP.NewAlbumHandler(albums, logger),
		Playlist: playlistHTTP.NewPlaylistHandler(playlists, logger),
		Favorite: favoriteHTTP.NewFavoriteHandler(favorites, logger),
	}, nil
}
