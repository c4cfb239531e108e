package usecase

import (
	"context"
	"time"

	"github.com/jo4ovms/psychology-project/internal/address/domain"
	"github.com/jo4ovms/psychology-project/internal/metrics"
)

const metricsDomain = "addresses"

// addressUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type addressUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewAddressUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewAddressUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &addressUseCaseWithMetrics{next: useCase, metrics: m}
}

func (a *addressUseCaseWithMetrics) Create(
	ctx context.Context,
	userID, clientID int64,
	input domain.AddressInput,
) (*domain.Address, error) {
	start := time.Now()
	address, err := a.next.Create(ctx, userID, clientID, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "address_create", start, err)
	return address, err
}

func (a *addressUseCaseWithMetrics) Get(ctx context.Context, userID, clientID, id int64) (*domain.Address, error) {
	start := time.Now()
	address, err := a.next.Get(ctx, userID, clientID, id)
	metrics.Observe(ctx, a.metrics, metricsDomain, "address_get", start, err)
	return address, err
}

func (a *addressUseCaseWithMetrics) List(ctx context.Context, userID, clientID int64) ([]*domain.Address, error) {
	start := time.Now()
	addresses, err := a.next.List(ctx, userID, clientID)
	metrics.Observe(ctx, a.metrics, metricsDomain, "address_list", start, err)
	return addresses, err
}

func (a *addressUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, clientID, id int64,
	input domain.AddressInput,
) (*domain.Address, error) {
	start := time.Now()
	address, err := a.next.Update(ctx, userID, clientID, id, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "address_update", start, err)
	return address, err
}

func (a *addressUseCaseWithMetrics) Delete(ctx context.Context, userID, clientID, id int64) error {
	start := time.Now()
	err := a.next.Delete(ctx, userID, clientID, id)
	metrics.Observe(ctx, a.metrics, metricsDomain, "address_delete", start, err)
	return err
}
