package app

import (
	"fmt"

	appointmentHTTP "github.com/jo4ovms/psychology-project/internal/appointment/http"
	appointmentRepository "github.com/jo4ovms/psychology-project/internal/appointment/repository"
	appointmentUsecase "github.com/jo4ovms/psychology-project/internal/appointment/usecase"
)

// AppointmentRepository returns the appointment repository for the configured database driver.
func (c *Container) AppointmentRepository() (appointmentUsecase.AppointmentRepository, error) {
	return lazy(c, &c.appointmentRepoInit, "appointmentRepo", &c.appointmentRepo, c.initAppointmentRepository)
}

// AppointmentUseCase returns the appointment use case decorated with business metrics.
func (c *Container) AppointmentUseCase() (appointmentUsecase.UseCase, error) {
	return lazy(c, &c.appointmentUseCaseInit, "appointmentUseCase", &c.appointmentUseCase, c.initAppointmentUseCase)
}

// AppointmentHandler returns a new appointment HTTP handler.
func (c *Container) AppointmentHandler() (*appointmentHTTP.AppointmentHandler, error) {
	useCase, err := c.AppointmentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment use case for appointment handler: %w", err)
	}
	return appointmentHTTP.NewAppointmentHandler(useCase, c.Logger()), nil
}

func (c *Container) initAppointmentRepository() (appointmentUsecase.AppointmentRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for appointment repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return appointmentRepository.NewMySQLAppointmentRepository(db), nil
	case "postgres":
		return appointmentRepository.NewPostgreSQLAppointmentRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAppointmentUseCase() (appointmentUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for appointment use case: %w", err)
	}

	appointmentRepo, err := c.AppointmentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment repository for appointment use case: %w", err)
	}

	clientRepo, err := c.ClientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get client repository for appointment use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for appointment use case: %w", err)
	}

	cipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for appointment use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for appointment use case: %w", err)
	}

	useCase := appointmentUsecase.NewAppointmentUseCase(txManager, appointmentRepo, clientRepo, outboxRepo, cipher)
	return appointmentUsecase.NewAppointmentUseCaseWithMetrics(useCase, businessMetrics), nil
}
