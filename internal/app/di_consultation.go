package app

import (
	"fmt"

	consultationHTTP "github.com/jo4ovms/psychology-project/internal/consultation/http"
	consultationRepository "github.com/jo4ovms/psychology-project/internal/consultation/repository"
	consultationUsecase "github.com/jo4ovms/psychology-project/internal/consultation/usecase"
)

// ConsultationRepository returns the consultation repository for the configured database driver.
func (c *Container) ConsultationRepository() (consultationUsecase.ConsultationRepository, error) {
	return lazy(c, &c.consultationRepoInit, "consultationRepo", &c.consultationRepo, c.initConsultationRepository)
}

// ConsultationUseCase returns the consultation use case decorated with business metrics.
func (c *Container) ConsultationUseCase() (consultationUsecase.UseCase, error) {
	return lazy(c, &c.consultationUseCaseInit, "consultationUseCase", &c.consultationUseCase, c.initConsultationUseCase)
}

// ConsultationHandler returns a new consultation HTTP handler.
func (c *Container) ConsultationHandler() (*consultationHTTP.ConsultationHandler, error) {
	useCase, err := c.ConsultationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation use case for consultation handler: %w", err)
	}
	return consultationHTTP.NewConsultationHandler(useCase, c.Logger()), nil
}

func (c *Container) initConsultationRepository() (consultationUsecase.ConsultationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for consultation repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return consultationRepository.NewMySQLConsultationRepository(db), nil
	case "postgres":
		return consultationRepository.NewPostgreSQLConsultationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initConsultationUseCase() (consultationUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for consultation use case: %w", err)
	}

	consultationRepo, err := c.ConsultationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation repository for consultation use case: %w", err)
	}

	clientRepo, err := c.ClientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get client repository for consultation use case: %w", err)
	}

	appointmentRepo, err := c.AppointmentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment repository for consultation use case: %w", err)
	}

	cipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for consultation use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for consultation use case: %w", err)
	}

	useCase := consultationUsecase.NewConsultationUseCase(txManager, consultationRepo, clientRepo, appointmentRepo, cipher)
	return consultationUsecase.NewConsultationUseCaseWithMetrics(useCase, businessMetrics), nil
}
