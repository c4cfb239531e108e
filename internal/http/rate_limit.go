package http

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Limiter sweep cadence and how long a quiet key keeps its bucket.
const (
	limiterSweepInterval = 5 * time.Minute
	limiterMaxIdle       = time.Hour
)

// quota is a token bucket owned by one practitioner or one anonymous caller.
type quota struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// quotaStore hands out one bucket per rate limit key.
type quotaStore struct {
	mu     sync.Mutex
	quotas map[string]*quota
	limit  rate.Limit
	burst  int
	now    func() time.Time
}

func newQuotaStore(rps float64, burst int) *quotaStore {
	return &quotaStore{
		quotas: make(map[string]*quota),
		limit:  rate.Limit(rps),
		burst:  burst,
		now:    time.Now,
	}
}

// RateLimitMiddleware gives every practitioner in the /v1/users/:user_id tree their
// own token bucket, and every caller outside it a bucket keyed by client IP. A
// rejected request gets 429 and, when the bucket can refill, a Retry-After header.
// Idle buckets are swept until ctx is cancelled.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newQuotaStore(rps, burst)
	go store.sweepEvery(ctx, limiterSweepInterval, limiterMaxIdle)

	return func(c *gin.Context) {
		key := rateLimitKey(c)
		delay, ok := store.take(key)
		if ok {
			c.Next()
			return
		}

		attrs := []any{slog.String("key", key)}
		if seconds, refills := retryAfterSeconds(delay); refills {
			c.Header("Retry-After", strconv.Itoa(seconds))
			attrs = append(attrs, slog.Int("retry_after", seconds))
		}
		logger.Debug("rate limit exceeded", attrs...)

		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":   "rate_limit_exceeded",
			"message": "too many requests",
		})
	}
}

// rateLimitKey prefers the practitioner id from the route over the client address.
func rateLimitKey(c *gin.Context) string {
	if userID := c.Param("user_id"); userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}

// take spends one token from key's bucket. When the bucket is empty it returns how
// long the caller would have to wait, rate.InfDuration if the bucket never refills.
func (s *quotaStore) take(key string) (time.Duration, bool) {
	now := s.now()

	s.mu.Lock()
	q, found := s.quotas[key]
	if !found {
		q = &quota{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.quotas[key] = q
	}
	q.lastSeen = now
	s.mu.Unlock()

	reservation := q.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return 0, true
	}
	reservation.CancelAt(now)
	return delay, false
}

// retryAfterSeconds rounds delay up to whole seconds. It reports false for a bucket
// that will never hold a token again.
func retryAfterSeconds(delay time.Duration) (int, bool) {
	if delay == rate.InfDuration {
		return 0, false
	}
	return max(1, int(math.Ceil(delay.Seconds()))), true
}

func (s *quotaStore) sweepEvery(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(s.now().Add(-maxIdle))
		}
	}
}

// sweep drops buckets last used before cutoff.
func (s *quotaStore) sweep(cutoff time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, q := range s.quotas {
		if q.lastSeen.Before(cutoff) {
			delete(s.quotas, key)
		}
	}
}
