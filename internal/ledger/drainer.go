package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iskorotkov/referral-ledger/internal/domain"
)

// DrainPending claims up to batchSize of the oldest queued commissions and
// settles each one in its own transaction. A failing item never aborts the
// batch: it is released for a later retry, or marked FAILED once it has used
// up its attempts. Claims older than the lease are reclaimed. Only a failure to claim is returned as an error.
func (l *Ledger) DrainPending(ctx context.Context, batchSize int) (domain.DrainResult, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	start := l.now()
	defer func() {
		l.metrics.DrainDuration.Observe(l.now().Sub(start).Seconds())
	}()

	claimed, err := l.s.ClaimQueued(ctx, batchSize, l.claimLease)
	if err != nil {
		return domain.DrainResult{}, fmt.Errorf("claim queued commissions: %w", err)
	}

	result := domain.DrainResult{
		Attempted: len(claimed),
		Outcomes:  make([]domain.DrainOutcome, 0, len(claimed)),
	}
	for _, c := range claimed {
		result.Outcomes = append(result.Outcomes, l.drainOne(ctx, c))
	}

	if result.Attempted > 0 {
		slog.InfoContext(ctx, "drained commissions",
			"attempted", result.Attempted,
			"failed", result.Failed())
	}

	return result, nil
}

func (l *Ledger) drainOne(ctx context.Context, c domain.Commission) domain.DrainOutcome {
	settled, err := l.Settle(ctx, c.CommissionID)
	if err == nil {
		l.metrics.DrainItems.WithLabelValues("settled").Inc()
		return domain.DrainOutcome{
			CommissionID: c.CommissionID,
			Status:       settled.Status,
		}
	}

	slog.ErrorContext(ctx, "failed to settle commission",
		"commission_id", c.CommissionID,
		"attempts", c.Attempts,
		"error", err)

	outcome := domain.DrainOutcome{
		CommissionID: c.CommissionID,
		Status:       c.Status,
		Err:          err,
	}

	// The claim must be resolved even when the batch context is done.
	cleanup := context.WithoutCancel(ctx)

	if !retryable(ctx, err) && c.Attempts >= l.maxAttempts {
		failed := domain.StatusFailed
		updated, ferr := l.UpdateCommission(cleanup, c.CommissionID, domain.Patch{Status: &failed})
		if ferr == nil {
			l.metrics.DrainItems.WithLabelValues("failed").Inc()
			outcome.Status = updated.Status
			return outcome
		}

		slog.ErrorContext(ctx, "failed to mark commission failed", "commission_id", c.CommissionID, "error", ferr)
	}

	released, rerr := l.s.ReleaseClaim(cleanup, c.CommissionID)
	if rerr != nil {
		// Still PROCESSING; reclaimable once the claim lease expires.
		slog.ErrorContext(ctx, "failed to release claim", "commission_id", c.CommissionID, "error", rerr)
		return outcome
	}
	if !released {
		l.metrics.DrainItems.WithLabelValues("lost_claim").Inc()
		current, cerr := l.s.Commission(cleanup, c.CommissionID)
		if cerr != nil {
			slog.ErrorContext(ctx, "failed to reload commission", "commission_id", c.CommissionID, "error", cerr)
			return outcome
		}
		slog.WarnContext(ctx, "claim lost before release",
			"commission_id", c.CommissionID,
			"status", current.Status)
		outcome.Status = current.Status
		return outcome
	}

	outcome.Status = domain.StatusPending
	l.metrics.DrainItems.WithLabelValues("released").Inc()
	return outcome
}

// retryable reports whether a settle failure says nothing about the item
// itself: transient storage errors and errors caused by the batch running out
// of time.
func retryable(ctx context.Context, err error) bool {
	return KindOf(err) == KindTransient ||
		ctx.Err() != nil ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
