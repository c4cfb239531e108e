package usecase

import (
	"context"
	"time"

	"github.com/jo4ovms/psychology-project/internal/client/domain"
	"github.com/jo4ovms/psychology-project/internal/metrics"
)

const metricsDomain = "clients"

// clientUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type clientUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewClientUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewClientUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &clientUseCaseWithMetrics{next: useCase, metrics: m}
}

func (c *clientUseCaseWithMetrics) Create(
	ctx context.Context,
	userID int64,
	input domain.ClientInput,
) (*domain.Client, error) {
	start := time.Now()
	client, err := c.next.Create(ctx, userID, input)
	metrics.Observe(ctx, c.metrics, metricsDomain, "client_create", start, err)
	return client, err
}

func (c *clientUseCaseWithMetrics) Get(ctx context.Context, userID, id int64) (*domain.Client, error) {
	start := time.Now()
	client, err := c.next.Get(ctx, userID, id)
	metrics.Observe(ctx, c.metrics, metricsDomain, "client_get", start, err)
	return client, err
}

func (c *clientUseCaseWithMetrics) List(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*domain.Client, error) {
	start := time.Now()
	clients, err := c.next.List(ctx, userID, offset, limit)
	metrics.Observe(ctx, c.metrics, metricsDomain, "client_list", start, err)
	return clients, err
}

func (c *clientUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, id int64,
	input domain.ClientInput,
) (*domain.Client, error) {
	start := time.Now()
	client, err := c.next.Update(ctx, userID, id, input)
	metrics.Observe(ctx, c.metrics, metricsDomain, "client_update", start, err)
	return client, err
}

func (c *clientUseCaseWithMetrics) Delete(ctx context.Context, userID, id int64) error {
	start := time.Now()
	err := c.next.Delete(ctx, userID, id)
	metrics.Observe(ctx, c.metrics, metricsDomain, "client_delete", start, err)
	return err
}
