// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	albumUseCase "github.com/allisson/echo/internal/album/usecase"
	authDomain "github.com/allisson/echo/internal/auth/domain"
	authService "github.com/allisson/echo/internal/auth/service"
	authUseCase "github.com/allisson/echo/internal/auth/usecase"
	"github.com/allisson/echo/internal/config"
	"github.com/allisson/echo/internal/database"
	favoriteUseCase "github.com/allisson/echo/internal/favorite/usecase"
	"github.com/allisson/echo/internal/http"
	"github.com/allisson/echo/internal/metrics"
	playlistUseCase "github.com/allisson/echo/internal/playlist/usecase"
	songUseCase "github.com/allisson/echo/internal/song/usecase"
	userUseCase "github.com/allisson/echo/internal/user/usecase"
)

// startupTimeout bounds the blocking work done while wiring components, such as the
// first database ping and unwrapping the signing secret through a KMS.
const startupTimeout = 30 * time.Second

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Managers
	txManager database.TxManager

	// Metrics
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	authDecisions   metrics.AuthDecisionRecorder

	// Services
	kmsService      authService.KMSService
	passwordService authService.PasswordService
	tokenService    authService.TokenService

	// Repositories
	sessionRepo  authUseCase.SessionRepository
	userRepo     userRepository
	songRepo     songRepository
	albumRepo    albumUseCase.AlbumRepository
	playlistRepo playlistUseCase.PlaylistRepository
	favoriteRepo favoriteUseCase.FavoriteRepository

	// Use Cases
	sessionUseCase  authUseCase.SessionUseCase
	adminGate       authUseCase.AdminGate
	userUseCase     userUseCase.UserUseCase
	songUseCase     songUseCase.SongUseCase
	albumUseCase    albumUseCase.AlbumUseCase
	playlistUseCase playlistUseCase.PlaylistUseCase
	favoriteUseCase favoriteUseCase.FavoriteUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	authDecisionsInit   sync.Once
	kmsServiceInit      sync.Once
	passwordServiceInit sync.Once
	tokenServiceInit    sync.Once
	sessionRepoInit     sync.Once
	userRepoInit        sync.Once
	songRepoInit        sync.Once
	albumRepoInit       sync.Once
	playlistRepoInit    sync.Once
	favoriteRepoInit    sync.Once
	sessionUseCaseInit  sync.Once
	adminGateInit       sync.Once
	userUseCaseInit     sync.Once
	songUseCaseInit     sync.Once
	albumUseCaseInit    sync.Once
	playlistUseCaseInit sync.Once
	favoriteUseCaseInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the OpenTelemetry provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the use case metrics recorder. It is a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// AuthDecisionRecorder returns the recorder for session middleware decisions.
func (c *Container) AuthDecisionRecorder() (metrics.AuthDecisionRecorder, error) {
	var err error
	c.authDecisionsInit.Do(func() {
		c.authDecisions, err = c.initAuthDecisionRecorder()
		if err != nil {
			c.initErrors["authDecisions"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authDecisions"]; exists {
		return nil, storedErr
	}
	return c.authDecisions, nil
}

// HTTPServer returns the API server with its router set up.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics and readiness server.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	switch c.config.DBDriver {
	case database.DriverPostgres, database.DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := database.Connect(ctx, database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

func (c *Container) initAuthDecisionRecorder() (metrics.AuthDecisionRecorder, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for auth decisions: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpAuthDecisionRecorder(), nil
	}
	return metrics.NewAuthDecisionRecorder(provider.MeterProvider(), c.config.MetricsNamespace)
}

// initHTTPServer creates the API server and mounts every handler behind the session middleware.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	auth, err := c.authDependencies()
	if err != nil {
		return nil, err
	}

	handlers, err := c.handlers()
	if err != nil {
		return nil, err
	}

	server := http.NewServer(c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(http.RouterOptions{
		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,
		MetricsProvider:  provider,
		MetricsNamespace: c.config.MetricsNamespace,
	}, auth, handlers)

	return server, nil
}

func (c *Container) authDependencies() (http.AuthDependencies, error) {
	tokenService, err := c.TokenService()
	if err != nil {
		return http.AuthDependencies{}, fmt.Errorf("failed to get token service for http server: %w", err)
	}

	sessionUseCase, err := c.SessionUseCase()
	if err != nil {
		return http.AuthDependencies{}, fmt.Errorf("failed to get session use case for http server: %w", err)
	}

	adminGate, err := c.AdminGate()
	if err != nil {
		return http.AuthDependencies{}, fmt.Errorf("failed to get admin gate for http server: %w", err)
	}

	decisions, err := c.AuthDecisionRecorder()
	if err != nil {
		return http.AuthDependencies{}, fmt.Errorf("failed to get auth decision recorder for http server: %w", err)
	}

	return http.AuthDependencies{
		Routes:         authDomain.DefaultRouteTable(),
		TokenService:   tokenService,
		SessionUseCase: sessionUseCase,
		AdminGate:      adminGate,
		Decisions:      decisions,
	}, nil
}

// initMetricsServer creates the metrics server. /metrics is only mounted when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for metrics server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider, db), nil
}
