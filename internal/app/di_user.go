package app

import (
	"fmt"

	userHTTP "github.com/jo4ovms/psychology-project/internal/user/http"
	userRepository "github.com/jo4ovms/psychology-project/internal/user/repository"
	userService "github.com/jo4ovms/psychology-project/internal/user/service"
	userUsecase "github.com/jo4ovms/psychology-project/internal/user/usecase"
)

// UserRepository returns the user repository for the configured database driver.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	return lazy(c, &c.userRepoInit, "userRepo", &c.userRepo, c.initUserRepository)
}

// UserUseCase returns the user use case decorated with business metrics.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	return lazy(c, &c.userUseCaseInit, "userUseCase", &c.userUseCase, c.initUserUseCase)
}

// UserHandler returns a new user HTTP handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	useCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for user handler: %w", err)
	}
	return userHTTP.NewUserHandler(useCase, c.Logger()), nil
}

func (c *Container) initUserRepository() (userUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initUserUseCase() (userUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for user use case: %w", err)
	}

	passwordService, err := userService.NewPasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to create password service for user use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
	}

	useCase := userUsecase.NewUserUseCase(txManager, userRepo, outboxRepo, passwordService)
	return userUsecase.NewUserUseCaseWithMetrics(useCase, businessMetrics), nil
}
