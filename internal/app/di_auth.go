package app

import (
	"context"
	"fmt"

	authHTTP "github.com/allisson/echo/internal/auth/http"
	authRepository "github.com/allisson/echo/internal/auth/repository"
	authService "github.com/allisson/echo/internal/auth/service"
	authUseCase "github.com/allisson/echo/internal/auth/usecase"
	"github.com/allisson/echo/internal/database"
)

// KMSService returns the KMS service used to unwrap the signing secret.
func (c *Container) KMSService() authService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = authService.NewKMSService()
	})
	return c.kmsService
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the bearer token service. The signing secret is unwrapped
// through the KMS when JWT_SECRET_KMS_KEY_URI is set.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = c.initTokenService()
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// SessionRepository returns the session repository based on database driver.
func (c *Container) SessionRepository() (authUseCase.SessionRepository, error) {
	var err error
	c.sessionRepoInit.Do(func() {
		c.sessionRepo, err = c.initSessionRepository()
		if err != nil {
			c.initErrors["sessionRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionRepo"]; exists {
		return nil, storedErr
	}
	return c.sessionRepo, nil
}

// SessionUseCase returns the session use case.
func (c *Container) SessionUseCase() (authUseCase.SessionUseCase, error) {
	var err error
	c.sessionUseCaseInit.Do(func() {
		c.sessionUseCase, err = c.initSessionUseCase()
		if err != nil {
			c.initErrors["sessionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionUseCase"]; exists {
		return nil, storedErr
	}
	return c.sessionUseCase, nil
}

// AdminGate returns the admin gate backed by the user repository.
func (c *Container) AdminGate() (authUseCase.AdminGate, error) {
	var err error
	c.adminGateInit.Do(func() {
		var userRepo userRepository
		userRepo, err = c.UserRepository()
		if err != nil {
			err = fmt.Errorf("failed to get user repository for admin gate: %w", err)
			c.initErrors["adminGate"] = err
			return
		}
		c.adminGate = authUseCase.NewAdminGate(userRepo)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminGate"]; exists {
		return nil, storedErr
	}
	return c.adminGate, nil
}

func (c *Container) initTokenService() (authService.TokenService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	secret, err := authService.ResolveSigningSecret(
		ctx,
		c.KMSService(),
		c.config.JWTSecret,
		c.config.JWTSecretKMSKeyURI,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token signing secret: %w", err)
	}
	return authService.NewTokenService(secret)
}

// initSessionRepository creates the session repository based on the database driver.
func (c *Container) initSessionRepository() (authUseCase.SessionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for session repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return authRepository.NewPostgreSQLSessionRepository(db), nil
	case database.DriverMySQL:
		return authRepository.NewMySQLSessionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSessionUseCase creates the session use case with all its dependencies.
func (c *Container) initSessionUseCase() (authUseCase.SessionUseCase, error) {
	sessionRepo, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for session use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for session use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for session use case: %w", err)
	}

	baseUseCase := authUseCase.NewSessionUseCase(c.config, sessionRepo, userRepo, c.PasswordService(), tokenService)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for session use case: %w", err)
		}
		return authUseCase.NewSessionUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) sessionHandler() (*authHTTP.SessionHandler, error) {
	sessionUseCase, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for session handler: %w", err)
	}
	return authHTTP.NewSessionHandler(sessionUseCase, c.Logger()), nil
}
