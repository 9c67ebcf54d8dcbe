package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/iskorotkov/referral-ledger/internal/domain"
)

// UpdateCommission applies a partial update. On the edge into SETTLED the
// recipient is credited with the amount as loaded, exactly once; settling an
// already SETTLED commission is a successful no-op.
func (l *Ledger) UpdateCommission(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Commission, error) {
	if patch.Status != nil && (!patch.Status.IsAStatus() || *patch.Status == domain.StatusUnknown) {
		return domain.Commission{}, fmt.Errorf("%w: unknown status %v", domain.ErrValidation, *patch.Status)
	}
	if patch.Status != nil && !patch.Status.Patchable() {
		return domain.Commission{}, fmt.Errorf("%w: %v is entered by draining only", domain.ErrInvalidTransition, *patch.Status)
	}
	if patch.Type != nil && (!patch.Type.IsAType() || *patch.Type == domain.TypeUnknown) {
		return domain.Commission{}, fmt.Errorf("%w: unknown type %v", domain.ErrValidation, *patch.Type)
	}
	if patch.Amount != nil {
		if err := validateAmount(*patch.Amount); err != nil {
			return domain.Commission{}, err
		}
	}

	change, err := l.s.UpdateCommission(ctx, id, patch)
	if err != nil {
		return domain.Commission{}, fmt.Errorf("update commission %v: %w", id, err)
	}

	switch {
	case change.Settled:
		l.recordSettled(change.Next)
		slog.InfoContext(ctx, "commission settled",
			"commission_id", id,
			"recipient", change.Next.RecipientUserID,
			"amount", change.Credit)
	case change.Failed:
		l.metrics.CommissionsFailed.Inc()
		slog.WarnContext(ctx, "commission failed", "commission_id", id)
	}

	if !change.Noop {
		l.invalidate(ctx, change.Next.RecipientUserID)
	}

	return change.Next, nil
}

func (l *Ledger) Settle(ctx context.Context, id uuid.UUID) (domain.Commission, error) {
	settled := domain.StatusSettled
	return l.UpdateCommission(ctx, id, domain.Patch{Status: &settled})
}

// DeleteCommission is an administrative delete. Settled commissions are
// reversed out of the recipient's balance in the same transaction.
func (l *Ledger) DeleteCommission(ctx context.Context, id uuid.UUID) (domain.Commission, error) {
	deleted, err := l.s.DeleteCommission(ctx, id)
	if err != nil {
		return domain.Commission{}, fmt.Errorf("delete commission %v: %w", id, err)
	}

	slog.InfoContext(ctx, "commission deleted",
		"commission_id", id,
		"status", deleted.Status,
		"amount", deleted.Amount)
	l.invalidate(ctx, deleted.RecipientUserID)

	return deleted, nil
}
