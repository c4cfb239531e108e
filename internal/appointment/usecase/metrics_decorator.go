package usecase

import (
	"context"
	"time"

	"github.com/jo4ovms/psychology-project/internal/appointment/domain"
	"github.com/jo4ovms/psychology-project/internal/metrics"
)

const metricsDomain = "appointments"

// appointmentUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type appointmentUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewAppointmentUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewAppointmentUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &appointmentUseCaseWithMetrics{next: useCase, metrics: m}
}

func (a *appointmentUseCaseWithMetrics) Create(
	ctx context.Context,
	userID int64,
	input domain.AppointmentInput,
) (*domain.Appointment, error) {
	start := time.Now()
	appointment, err := a.next.Create(ctx, userID, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "appointment_create", start, err)
	return appointment, err
}

func (a *appointmentUseCaseWithMetrics) Get(ctx context.Context, userID, id int64) (*domain.Appointment, error) {
	start := time.Now()
	appointment, err := a.next.Get(ctx, userID, id)
	metrics.Observe(ctx, a.metrics, metricsDomain, "appointment_get", start, err)
	return appointment, err
}

func (a *appointmentUseCaseWithMetrics) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Appointment, error) {
	start := time.Now()
	appointments, err := a.next.List(ctx, userID, filter)
	metrics.Observe(ctx, a.metrics, metricsDomain, "appointment_list", start, err)
	return appointments, err
}

func (a *appointmentUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, id int64,
	input domain.AppointmentInput,
) (*domain.Appointment, error) {
	start := time.Now()
	appointment, err := a.next.Update(ctx, userID, id, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "appointment_update", start, err)
	return appointment, err
}

func (a *appointmentUseCaseWithMetrics) Delete(ctx context.Context, userID, id int64) error {
	start := time.Now()
	err := a.next.Delete(ctx, userID, id)
	metrics.Observe(ctx, a.metrics, metricsDomain, "appointment_delete", start, err)
	return err
}
