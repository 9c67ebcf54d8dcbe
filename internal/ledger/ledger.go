// Package ledger is the commission distribution engine: it writes commissions,
// drives them through their state machine, drains the settlement backlog and
// serves ledger reads. Atomicity is delegated to Storage; every Storage write
// is one transaction.
package ledger

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/iskorotkov/referral-ledger/internal/domain"
	"github.com/iskorotkov/referral-ledger/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type Storage interface {
	CreateCommissions(ctx context.Context, cs []domain.NewCommission) ([]domain.Commission, error)
	UpdateCommission(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Change, error)
	DeleteCommission(ctx context.Context, id uuid.UUID) (domain.Commission, error)
	ClaimQueued(ctx context.Context, batchSize int, lease time.Duration) ([]domain.Commission, error)
	ReleaseClaim(ctx context.Context, id uuid.UUID) (bool, error)
	Commission(ctx context.Context, id uuid.UUID) (domain.Commission, error)
	ListCommissions(ctx context.Context, f domain.Filter) ([]domain.Commission, int64, error)
	UserStats(ctx context.Context, userID uuid.UUID) (domain.Stats, error)
	UserEarnings(ctx context.Context, userID uuid.UUID) (domain.Earnings, error)
}

// Cache holds per-user stats. Implementations must tolerate Invalidate of
// users that were never cached.
type Cache interface {
	Stats(ctx context.Context, userID uuid.UUID) (domain.Stats, bool, error)
	StoreStats(ctx context.Context, stats domain.Stats) error
	Invalidate(ctx context.Context, userIDs ...uuid.UUID) error
}

const (
	DefaultBatchSize   = 100
	DefaultMaxAttempts = 5
	DefaultClaimLease  = 5 * time.Minute
)

type Option func(*Ledger)

func WithCache(c Cache) Option {
	return func(l *Ledger) {
		l.cache = c
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Ledger) {
		l.metrics = m
	}
}

// WithDrainPolicy sets how many claims an item gets before it is marked
// FAILED and how long a claim may stay PROCESSING before it can be reclaimed.
func WithDrainPolicy(maxAttempts int, claimLease time.Duration) Option {
	return func(l *Ledger) {
		if maxAttempts > 0 {
			l.maxAttempts = maxAttempts
		}
		if claimLease > 0 {
			l.claimLease = claimLease
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func New(s Storage, opts ...Option) *Ledger {
	l := &Ledger{
		s:           s,
		cache:       noCache{},
		validate:    newValidator(),
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
		claimLease:  DefaultClaimLease,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.metrics == nil {
		l.metrics = metrics.New(prometheus.NewRegistry())
	}
	return l
}

type Ledger struct {
	s           Storage
	cache       Cache
	metrics     *metrics.Metrics
	validate    *validator.Validate
	now         func() time.Time
	maxAttempts int
	claimLease  time.Duration
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindTransient:
		return "transient"
	default:
		return "internal"
	}
}

// KindOf classifies err so callers never have to match error messages.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return KindNotFound
	case errors.Is(err, domain.ErrValidation):
		return KindValidation
	case errors.Is(err, domain.ErrTransient):
		return KindTransient
	default:
		return KindInternal
	}
}

type noCache struct{}

func (noCache) Stats(context.Context, uuid.UUID) (domain.Stats, bool, error) {
	return domain.Stats{}, false, nil
}

func (noCache) StoreStats(context.Context, domain.Stats) error {
	return nil
}

func (noCache) Invalidate(context.Context, ...uuid.UUID) error {
	return nil
}
