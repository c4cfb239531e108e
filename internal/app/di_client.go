package app

import (
	"fmt"

	clientHTTP "github.com/jo4ovms/psychology-project/internal/client/http"
	clientRepository "github.com/jo4ovms/psychology-project/internal/client/repository"
	clientUsecase "github.com/jo4ovms/psychology-project/internal/client/usecase"
)

// ClientRepository returns the client repository for the configured database driver.
func (c *Container) ClientRepository() (clientUsecase.ClientRepository, error) {
	return lazy(c, &c.clientRepoInit, "clientRepo", &c.clientRepo, c.initClientRepository)
}

// ClientUseCase returns the client use case decorated with business metrics.
func (c *Container) ClientUseCase() (clientUsecase.UseCase, error) {
	return lazy(c, &c.clientUseCaseInit, "clientUseCase", &c.clientUseCase, c.initClientUseCase)
}

// ClientHandler returns a new client HTTP handler.
func (c *Container) ClientHandler() (*clientHTTP.ClientHandler, error) {
	useCase, err := c.ClientUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get client use case for client handler: %w", err)
	}
	return clientHTTP.NewClientHandler(useCase, c.Logger()), nil
}

func (c *Container) initClientRepository() (clientUsecase.ClientRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for client repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return clientRepository.NewMySQLClientRepository(db), nil
	case "postgres":
		return clientRepository.NewPostgreSQLClientRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initClientUseCase() (clientUsecase.UseCase, error) {
	clientRepo, err := c.ClientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get client repository for client use case: %w", err)
	}

	cipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for client use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for client use case: %w", err)
	}

	useCase := clientUsecase.NewClientUseCase(clientRepo, cipher)
	return clientUsecase.NewClientUseCaseWithMetrics(useCase, businessMetrics), nil
}
