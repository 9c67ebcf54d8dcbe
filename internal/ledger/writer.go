package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/iskorotkov/referral-ledger/internal/domain"
)

// CreateCommission records one commission, its notification and, when it is
// created SETTLED, the recipient's balance credit, all in one transaction.
func (l *Ledger) CreateCommission(ctx context.Context, c domain.NewCommission) (domain.Commission, error) {
	created, err := l.CreateCommissions(ctx, []domain.NewCommission{c})
	if err != nil {
		return domain.Commission{}, err
	}

	return created[0], nil
}

// CreateCommissions records several commissions atomically: either all of
// them are written or none.
func (l *Ledger) CreateCommissions(ctx context.Context, cs []domain.NewCommission) ([]domain.Commission, error) {
	if len(cs) == 0 {
		return nil, fmt.Errorf("%w: no commissions", domain.ErrValidation)
	}

	cs = slices.Clone(cs)
	for i := range cs {
		if cs[i].Status == domain.StatusUnknown {
			cs[i].Status = domain.StatusPending
		}

		if err := l.validateNew(cs[i]); err != nil {
			return nil, err
		}
	}

	created, err := l.s.CreateCommissions(ctx, cs)
	if err != nil {
		return nil, fmt.Errorf("create commissions: %w", err)
	}

	recipients := make([]uuid.UUID, 0, len(created))
	for _, c := range created {
		l.metrics.CommissionsCreated.WithLabelValues(c.Type.String(), c.Status.String()).Inc()
		if c.Status == domain.StatusSettled {
			l.recordSettled(c)
		}

		recipients = append(recipients, c.RecipientUserID)
	}
	l.invalidate(ctx, recipients...)

	return created, nil
}

func (l *Ledger) validateNew(c domain.NewCommission) error {
	if err := l.validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if !c.Type.IsAType() || c.Type == domain.TypeUnknown {
		return fmt.Errorf("%w: unknown type %v", domain.ErrValidation, c.Type)
	}

	if c.Status != domain.StatusPending && c.Status != domain.StatusSettled {
		return fmt.Errorf("%w: commissions start PENDING or SETTLED, got %v", domain.ErrValidation, c.Status)
	}

	return validateAmount(c.Amount)
}

func (l *Ledger) recordSettled(c domain.Commission) {
	l.metrics.CommissionsSettled.WithLabelValues(c.Type.String()).Inc()
	l.metrics.SettledAmount.Add(c.Amount.InexactFloat64())
}

// invalidate drops cached stats. Failures only make stats stale until the TTL.
func (l *Ledger) invalidate(ctx context.Context, userIDs ...uuid.UUID) {
	if err := l.cache.Invalidate(ctx, userIDs...); err != nil && !errors.Is(err, context.Canceled) {
		slog.WarnContext(ctx, "failed to invalidate stats cache", "users", userIDs, "error", err)
	}
}
