package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"vital-be/apperrors"
	"vital-be/metrics"
	"vital-be/stores"
)

// StoreTimeout bounds a single background store round trip.
const StoreTimeout = 10 * time.Second

// Policy holds workflow switches where observed behaviour was inconsistent.
type Policy struct {
	// AllowResubmissionAfterRejection lets a PDO raise a new request once the previous one
	// for the same issue was rejected. Off by default: any earlier request blocks the issue.
	AllowResubmissionAfterRejection bool
	// RequireCommentOnReject makes the TDO comment mandatory for rejections.
	RequireCommentOnReject bool
}

type serviceConfig struct {
	logger      *zap.Logger
	metrics     *metrics.Metrics
	policy      Policy
	now         func() time.Time
	authorities stores.AuthorityStore
}

type Option func(*serviceConfig)

func WithLogger(logger *zap.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithPolicy(p Policy) Option {
	return func(c *serviceConfig) {
		c.policy = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *serviceConfig) {
		c.now = now
	}
}

// WithPerformanceStats lets services bump the advisory counters on authority records.
func WithPerformanceStats(authorities stores.AuthorityStore) Option {
	return func(c *serviceConfig) {
		c.authorities = authorities
	}
}

func newConfig(opts []Option) serviceConfig {
	cfg := serviceConfig{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}

// translateStoreErr converts store failures into apperrors. Errors that already carry a kind
// (including those returned from Execute validators) pass through unchanged.
func translateStoreErr(err error, notFound string, kind apperrors.Kind, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, stores.ErrNotFound) {
		return apperrors.NotFound(notFound)
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return apperrors.Wrap(err, kind, message)
}

// bumpStat increments an advisory counter; failures are logged and otherwise ignored.
func (c serviceConfig) bumpStat(uid, stat string) {
	if c.authorities == nil || uid == "" {
		return
	}
	ctx, cancel := contextWithTimeout()
	defer cancel()
	if err := c.authorities.IncrementStat(ctx, uid, stat); err != nil {
		c.logger.Warn("failed to update performance stats",
			zap.String("uid", uid), zap.String("stat", stat), zap.Error(err))
	}
}

func contextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), StoreTimeout)
}
