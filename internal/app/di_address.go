package app

import (
	"fmt"

	addressHTTP "github.com/jo4ovms/psychology-project/internal/address/http"
	addressRepository "github.com/jo4ovms/psychology-project/internal/address/repository"
	addressUsecase "github.com/jo4ovms/psychology-project/internal/address/usecase"
)

// AddressRepository returns the address repository for the configured database driver.
func (c *Container) AddressRepository() (addressUsecase.AddressRepository, error) {
	return lazy(c, &c.addressRepoInit, "addressRepo", &c.addressRepo, c.initAddressRepository)
}

// AddressUseCase returns the address use case decorated with business metrics.
func (c *Container) AddressUseCase() (addressUsecase.UseCase, error) {
	return lazy(c, &c.addressUseCaseInit, "addressUseCase", &c.addressUseCase, c.initAddressUseCase)
}

// AddressHandler returns a new address HTTP handler.
func (c *Container) AddressHandler() (*addressHTTP.AddressHandler, error) {
	useCase, err := c.AddressUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get address use case for address handler: %w", err)
	}
	return addressHTTP.NewAddressHandler(useCase, c.Logger()), nil
}

func (c *Container) initAddressRepository() (addressUsecase.AddressRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for address repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return addressRepository.NewMySQLAddressRepository(db), nil
	case "postgres":
		return addressRepository.NewPostgreSQLAddressRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAddressUseCase() (addressUsecase.UseCase, error) {
	addressRepo, err := c.AddressRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get address repository for address use case: %w", err)
	}

	clientRepo, err := c.ClientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get client repository for address use case: %w", err)
	}

	cipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for address use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for address use case: %w", err)
	}

	useCase := addressUsecase.NewAddressUseCase(addressRepo, clientRepo, cipher)
	return addressUsecase.NewAddressUseCaseWithMetrics(useCase, businessMetrics), nil
}
