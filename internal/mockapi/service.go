// Package mockapi implements the collaborator services the user form
// depends on: the location list and the name-validity check.
package mockapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vcrobe/userform/internal/mockapi/storage"
)

const anonymousClient = "anonymous"

// Service answers location and name-validity requests.
type Service struct {
	registry storage.Registry
	limiter  *ClientLimiter
	metrics  *Metrics
	latency  time.Duration
	log      *zap.SugaredLogger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLatency delays every name check by d to mimic a remote round trip.
func WithLatency(d time.Duration) Option {
	return func(s *Service) { s.latency = d }
}

// WithLimiter rate-limits name checks per client key.
func WithLimiter(l *ClientLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

// WithMetrics records request counters.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService creates a Service over registry.
func NewService(registry storage.Registry, log *zap.SugaredLogger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Service{
		registry: registry,
		log:      log,
		metrics:  NewMetrics(nil),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Locations returns the selectable locations in display order.
func (s *Service) Locations(ctx context.Context) ([]string, error) {
	s.metrics.LocationRequests.Inc()
	locations, err := s.registry.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

// CheckName reports whether name is available. Only the empty name is
// rejected; any other name, whitespace included, is decided by the registry's
// normalized lookup. clientKey identifies the caller for rate limiting;
// callers without one share a single bucket.
func (s *Service) CheckName(ctx context.Context, name, clientKey string) (bool, error) {
	start := s.now()
	defer func() { s.metrics.CheckLatency.Observe(s.now().Sub(start).Seconds()) }()

	if name == "" {
		s.metrics.NameChecks.WithLabelValues(resultError).Inc()
		return false, ErrInvalidName
	}
	if !s.limiter.Allow(limiterKey(clientKey), start) {
		s.metrics.NameChecks.WithLabelValues(resultLimited).Inc()
		return false, ErrRateLimited
	}

	if err := s.wait(ctx); err != nil {
		s.metrics.NameChecks.WithLabelValues(resultError).Inc()
		return false, err
	}

	taken, err := s.registry.IsNameTaken(ctx, name)
	if err != nil {
		s.metrics.NameChecks.WithLabelValues(resultError).Inc()
		return false, fmt.Errorf("look up name: %w", err)
	}

	if taken {
		s.metrics.NameChecks.WithLabelValues(resultTaken).Inc()
		s.log.Debugw("name taken", "client", clientKey)
		return false, nil
	}
	s.metrics.NameChecks.WithLabelValues(resultValid).Inc()
	return true, nil
}

func limiterKey(clientKey string) string {
	if key := strings.TrimSpace(clientKey); key != "" {
		return key
	}
	return anonymousClient
}

func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
