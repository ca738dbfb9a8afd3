package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stayflow/pkg/domain"
)

// Service exposes the entity services of the front desk: transactional CRUD,
// status transitions, and the derived queries the boards are built from.
// Persistence failures on read paths are logged and surfaced as empty
// results; mutations return typed errors for the API layer to translate.
type Service struct {
	store   PersistentStore
	log     *zap.Logger
	metrics MetricsRecorder
	nowFn   func() time.Time
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithLogger attaches a structured logger used at the service boundary.
func WithLogger(log *zap.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics attaches an operation metrics recorder.
func WithMetrics(rec MetricsRecorder) ServiceOption {
	return func(s *Service) {
		if rec != nil {
			s.metrics = rec
		}
	}
}

// WithClock overrides the service clock; intended for tests.
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.nowFn = fn
		}
	}
}

// NewService constructs a service backed by the supplied store.
func NewService(store PersistentStore, opts ...ServiceOption) *Service {
	s := &Service{
		store: store,
		log:   zap.NewNop(),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying storage implementation.
func (s *Service) Store() PersistentStore {
	return s.store
}

func (s *Service) now() time.Time {
	return s.nowFn()
}

// observe reports an operation outcome to the attached recorder.
func (s *Service) observe(ctx context.Context, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.Observe(ctx, operation, err == nil, time.Since(start))
}

// logMutationError records a failed write at the service boundary. Missing
// identities are expected front-desk noise and log at warn; rule blocks and
// persistence failures log at error.
func (s *Service) logMutationError(operation string, id int, err error) {
	switch {
	case domain.IsNotFound(err):
		s.log.Warn(operation+" target missing", zap.Int("id", id))
	default:
		s.log.Error(operation+" failed", zap.Int("id", id), zap.Error(err))
	}
}

// view runs a read against the store; failures are logged and reported so
// callers can fall back to an empty result instead of propagating the error.
func (s *Service) view(ctx context.Context, operation string, fn func(domain.TransactionView)) bool {
	start := time.Now()
	err := s.store.View(ctx, func(v domain.TransactionView) error {
		fn(v)
		return nil
	})
	s.observe(ctx, operation, start, err)
	if err != nil {
		s.log.Error("read failed", zap.String("operation", operation), zap.Error(err))
		return false
	}
	return true
}
