package usecase

import (
	"context"
	"time"

	"github.com/jo4ovms/psychology-project/internal/consultation/domain"
	"github.com/jo4ovms/psychology-project/internal/metrics"
)

const metricsDomain = "consultations"

// consultationUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type consultationUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewConsultationUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewConsultationUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &consultationUseCaseWithMetrics{next: useCase, metrics: m}
}

func (c *consultationUseCaseWithMetrics) Create(
	ctx context.Context,
	userID int64,
	input domain.ConsultationInput,
) (*domain.Consultation, error) {
	start := time.Now()
	consultation, err := c.next.Create(ctx, userID, input)
	metrics.Observe(ctx, c.metrics, metricsDomain, "consultation_create", start, err)
	return consultation, err
}

func (c *consultationUseCaseWithMetrics) Get(ctx context.Context, userID, id int64) (*domain.Consultation, error) {
	start := time.Now()
	consultation, err := c.next.Get(ctx, userID, id)
	metrics.Observe(ctx, c.metrics, metricsDomain, "consultation_get", start, err)
	return consultation, err
}

func (c *consultationUseCaseWithMetrics) List(
	ctx context.Context,
	userID int64,
	filter domain.ListFilter,
) ([]*domain.Consultation, error) {
	start := time.Now()
	consultations, err := c.next.List(ctx, userID, filter)
	metrics.Observe(ctx, c.metrics, metricsDomain, "consultation_list", start, err)
	return consultations, err
}

func (c *consultationUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, id int64,
	input domain.ConsultationInput,
) (*domain.Consultation, error) {
	start := time.Now()
	consultation, err := c.next.Update(ctx, userID, id, input)
	metrics.Observe(ctx, c.metrics, metricsDomain, "consultation_update", start, err)
	return consultation, err
}

func (c *consultationUseCaseWithMetrics) Delete(ctx context.Context, userID, id int64) error {
	start := time.Now()
	err := c.next.Delete(ctx, userID, id)
	metrics.Observe(ctx, c.metrics, metricsDomain, "consultation_delete", start, err)
	return err
}
