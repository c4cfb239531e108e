package usecase

import (
	"context"
	"strings"

	appointmentDomain "github.com/jo4ovms/psychology-project/internal/appointment/domain"
	"github.com/jo4ovms/psychology-project/internal/consultation/domain"
	cryptoService "github.com/jo4ovms/psychology-project/internal/crypto/service"
	"github.com/jo4ovms/psychology-project/internal/database"
	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// ConsultationUseCase records session notes. Summary and observations are
// encrypted per user, and linking an appointment completes it inside the same
// transaction.
type ConsultationUseCase struct {
	txManager        database.TxManager
	consultationRepo ConsultationRepository
	clientRepo       ClientRepository
	appointmentRepo  AppointmentRepository
	cipher           cryptoService.FieldCipher
}

// NewConsultationUseCase returns a ConsultationUseCase.
func NewConsultationUseCase(
	txManager database.TxManager,
	consultationRepo ConsultationRepository,
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	cipher cryptoService.FieldCipher,
) UseCase {
	return &ConsultationUseCase{
		txManager:        txManager,
		consultationRepo: consultationRepo,
		clientRepo:       clientRepo,
		appointmentRepo:  appointmentRepo,
		cipher:           cipher,
	}
}

// Create records a session with a client of userID. A referenced appointment must
// belong to the same client and is marked completed in the same transaction.
func (uc *ConsultationUseCase) Create(
	ctx context.Context,
	userID int64,
	input domain.ConsultationInput,
) (*domain.Consultation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.clientRepo.GetByID(ctx, userID, input.ClientID); err != nil {
		return nil, err
	}

	complete, err := uc.checkAppointment(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	consultation := &domain.Consultation{UserID: userID}
	if err := uc.apply(consultation, input); err != nil {
		return nil, err
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.consultationRepo.Create(ctx, consultation); err != nil {
			return err
		}
		return uc.completeAppointment(ctx, userID, input.AppointmentID, complete)
	})
	if err != nil {
		return nil, err
	}

	return consultation, nil
}

// Get retrieves a consultation of userID and decrypts its clinical fields.
func (uc *ConsultationUseCase) Get(ctx context.Context, userID, id int64) (*domain.Consultation, error) {
	consultation, err := uc.consultationRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	uc.decrypt(consultation)
	return consultation, nil
}

// List retrieves the consultations of userID, newest session first.
func (uc *ConsultationUseCase) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Consultation, error) {
	consultations, err := uc.consultationRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	for _, consultation := range consultations {
		uc.decrypt(consultation)
	}
	return consultations, nil
}

// Update replaces a consultation. Linking a different appointment validates and
// completes it the same way Create does.
func (uc *ConsultationUseCase) Update(
	ctx context.Context,
	userID, id int64,
	input domain.ConsultationInput,
) (*domain.Consultation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	consultation, err := uc.consultationRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.ClientID != consultation.ClientID {
		if _, err := uc.clientRepo.GetByID(ctx, userID, input.ClientID); err != nil {
			return nil, err
		}
	}

	complete := false
	if !sameID(input.AppointmentID, consultation.AppointmentID) || input.ClientID != consultation.ClientID {
		if complete, err = uc.checkAppointment(ctx, userID, input); err != nil {
			return nil, err
		}
	}

	if err := uc.apply(consultation, input); err != nil {
		return nil, err
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.consultationRepo.Update(ctx, consultation); err != nil {
			return err
		}
		return uc.completeAppointment(ctx, userID, input.AppointmentID, complete)
	})
	if err != nil {
		return nil, err
	}

	return consultation, nil
}

// Delete removes a consultation of userID. The linked appointment keeps its status.
func (uc *ConsultationUseCase) Delete(ctx context.Context, userID, id int64) error {
	return uc.consultationRepo.Delete(ctx, userID, id)
}

// checkAppointment validates the appointment referenced by input and reports
// whether it still has to be marked completed.
func (uc *ConsultationUseCase) checkAppointment(
	ctx context.Context,
	userID int64,
	input domain.ConsultationInput,
) (bool, error) {
	if input.AppointmentID == nil {
		return false, nil
	}

	appointment, err := uc.appointmentRepo.GetByID(ctx, userID, *input.AppointmentID)
	if err != nil {
		return false, err
	}

	if appointment.ClientID != input.ClientID {
		return false, domain.ErrAppointmentMismatch
	}
	if appointment.Status == appointmentDomain.StatusCancelled {
		return false, domain.ErrAppointmentCancelled
	}
	return appointment.Status != appointmentDomain.StatusCompleted, nil
}

func (uc *ConsultationUseCase) completeAppointment(
	ctx context.Context,
	userID int64,
	appointmentID *int64,
	complete bool,
) error {
	if !complete || appointmentID == nil {
		return nil
	}
	err := uc.appointmentRepo.UpdateStatus(ctx, userID, *appointmentID, appointmentDomain.StatusCompleted)
	if err != nil {
		return apperrors.Wrap(err, "failed to complete appointment")
	}
	return nil
}

func (uc *ConsultationUseCase) apply(consultation *domain.Consultation, input domain.ConsultationInput) error {
	summaryText := strings.TrimSpace(input.Summary)
	summary, err := uc.cipher.Encrypt(summaryText, consultation.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to encrypt consultation summary")
	}

	observations, err := cryptoService.EncryptOptional(uc.cipher, input.Observations, consultation.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to encrypt consultation observations")
	}

	consultation.ClientID = input.ClientID
	consultation.AppointmentID = input.AppointmentID
	consultation.SessionDate = input.SessionDate.UTC()
	consultation.SummaryEncrypted = summary
	consultation.Summary = &summaryText
	consultation.ObservationsEncrypted = observations
	consultation.Observations = nil
	if !observations.IsEmpty() {
		consultation.Observations = input.Observations
	}
	return nil
}

func (uc *ConsultationUseCase) decrypt(consultation *domain.Consultation) {
	consultation.Summary = cryptoService.DecryptOptional(
		uc.cipher, consultation.SummaryEncrypted, consultation.UserID)
	consultation.Observations = cryptoService.DecryptOptional(
		uc.cipher, consultation.ObservationsEncrypted, consultation.UserID)
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
