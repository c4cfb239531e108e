package usecase

import (
	"context"
	"time"

	"github.com/jo4ovms/psychology-project/internal/metrics"
	"github.com/jo4ovms/psychology-project/internal/user/domain"
)

const metricsDomain = "users"

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for user registration.
func (u *userUseCaseWithMetrics) Register(
	ctx context.Context,
	input domain.RegisterUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_register", start, err)
	return user, err
}

// Get records metrics for user retrieval.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, id int64) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, id)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_get", start, err)
	return user, err
}

// List records metrics for user listing.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, offset, limit)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_list", start, err)
	return users, err
}

// Update records metrics for user updates.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	input domain.UpdateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, id, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_update", start, err)
	return user, err
}

// Delete records metrics for user deletion.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_delete", start, err)
	return err
}
