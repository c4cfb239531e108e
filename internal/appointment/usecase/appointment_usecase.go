package usecase

import (
	"context"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	cryptoService "github.com/jo4ovms/psychology-project/internal/crypto/service"
	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
	outboxDomain "github.com/jo4ovms/psychology-project/internal/outbox/domain"
)

// AppointmentUseCase schedules sessions between a practitioner and a patient.
// Scheduling writes the appointment and its appointment.scheduled outbox event in
// one transaction. Completed and cancelled appointments keep their status.
type AppointmentUseCase struct {
	txManager       database.TxManager
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	outboxRepo      OutboxEventRepository
	cipher          cryptoService.FieldCipher
}

// NewAppointmentUseCase wires the repositories, the transaction manager and the
// field cipher used for appointment notes.
func NewAppointmentUseCase(
	txManager database.TxManager,
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	outboxRepo OutboxEventRepository,
	cipher cryptoService.FieldCipher,
) UseCase {
	return &AppointmentUseCase{
		txManager:       txManager,
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		outboxRepo:      outboxRepo,
		cipher:          cipher,
	}
}

// Create schedules an appointment with a client of userID and emits an
// appointment.scheduled event in the same transaction.
func (uc *AppointmentUseCase) Create(
	ctx context.Context,
	userID int64,
	input domain.AppointmentInput,
) (*domain.Appointment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.clientRepo.GetByID(ctx, userID, input.ClientID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusScheduled
	}

	appointment := &domain.Appointment{UserID: userID, Status: status}
	if err := uc.apply(appointment, input); err != nil {
		return nil, err
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.appointmentRepo.Create(ctx, appointment); err != nil {
			return err
		}

		event, err := outboxDomain.NewOutboxEvent(
			outboxDomain.EventTypeAppointmentScheduled,
			outboxDomain.AppointmentScheduledPayload{
				AppointmentID:   appointment.ID,
				UserID:          appointment.UserID,
				ClientID:        appointment.ClientID,
				ScheduledAt:     appointment.ScheduledAt,
				DurationMinutes: appointment.DurationMinutes,
			},
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal event payload")
		}

		if err := uc.outboxRepo.Create(ctx, event); err != nil {
			return apperrors.Wrap(err, "failed to create outbox event")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

// Get retrieves an appointment of userID and decrypts its notes.
func (uc *AppointmentUseCase) Get(ctx context.Context, userID, id int64) (*domain.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	uc.decrypt(appointment)
	return appointment, nil
}

// List retrieves the appointments of userID matching filter ordered by ScheduledAt.
func (uc *AppointmentUseCase) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Appointment, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.ErrInvalidWindow
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	appointments, err := uc.appointmentRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	for _, appointment := range appointments {
		uc.decrypt(appointment)
	}
	return appointments, nil
}

// Update replaces an appointment. Changing the status of a completed or cancelled
// appointment is rejected; other fields stay editable.
func (uc *AppointmentUseCase) Update(
	ctx context.Context,
	userID, id int64,
	input domain.AppointmentInput,
) (*domain.Appointment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	appointment, err := uc.appointmentRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Status != "" && input.Status != appointment.Status {
		if appointment.Status.IsTerminal() {
			return nil, domain.ErrTerminalStatus
		}
		appointment.Status = input.Status
	}

	if input.ClientID != appointment.ClientID {
		if _, err := uc.clientRepo.GetByID(ctx, userID, input.ClientID); err != nil {
			return nil, err
		}
	}

	if err := uc.apply(appointment, input); err != nil {
		return nil, err
	}

	if err := uc.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Delete removes an appointment of userID.
func (uc *AppointmentUseCase) Delete(ctx context.Context, userID, id int64) error {
	return uc.appointmentRepo.Delete(ctx, userID, id)
}

func (uc *AppointmentUseCase) apply(appointment *domain.Appointment, input domain.AppointmentInput) error {
	notes, err := cryptoService.EncryptOptional(uc.cipher, input.Notes, appointment.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to encrypt appointment notes")
	}

	appointment.ClientID = input.ClientID
	appointment.ScheduledAt = input.ScheduledAt.UTC()
	appointment.DurationMinutes = input.DurationMinutes
	appointment.NotesEncrypted = notes
	appointment.Notes = nil
	if !notes.IsEmpty() {
		appointment.Notes = input.Notes
	}
	return nil
}

func (uc *AppointmentUseCase) decrypt(appointment *domain.Appointment) {
	appointment.Notes = cryptoService.DecryptOptional(uc.cipher, appointment.NotesEncrypted, appointment.UserID)
}
