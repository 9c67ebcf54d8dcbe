package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/iskorotkov/referral-ledger/internal/domain"
)

// List returns a page of commissions, newest first.
func (l *Ledger) List(ctx context.Context, f domain.Filter) (domain.Page, error) {
	f = f.Normalize()
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return domain.Page{}, fmt.Errorf("%w: end date before start date", domain.ErrValidation)
	}

	commissions, total, err := l.s.ListCommissions(ctx, f)
	if err != nil {
		return domain.Page{}, fmt.Errorf("list commissions: %w", err)
	}

	return domain.Page{
		Commissions: commissions,
		Pagination:  domain.NewPagination(f, total),
	}, nil
}

func (l *Ledger) Commission(ctx context.Context, id uuid.UUID) (domain.Commission, error) {
	c, err := l.s.Commission(ctx, id)
	if err != nil {
		return domain.Commission{}, fmt.Errorf("get commission %v: %w", id, err)
	}

	return c, nil
}

func (l *Ledger) UserStats(ctx context.Context, userID uuid.UUID) (domain.Stats, error) {
	cached, ok, err := l.cache.Stats(ctx, userID)
	switch {
	case err != nil:
		l.metrics.CacheRequests.WithLabelValues("error").Inc()
		slog.WarnContext(ctx, "failed to read stats cache", "user_id", userID, "error", err)
	case ok:
		l.metrics.CacheRequests.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		l.metrics.CacheRequests.WithLabelValues("miss").Inc()
	}

	stats, err := l.s.UserStats(ctx, userID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("get stats of %v: %w", userID, err)
	}

	if err := l.cache.StoreStats(ctx, stats); err != nil {
		slog.WarnContext(ctx, "failed to store stats cache", "user_id", userID, "error", err)
	}

	return stats, nil
}

// Reconcile compares the settled ledger total with the balance projection.
// The two reads are not one snapshot, so a settlement landing in between
// shows up as a transient mismatch.
func (l *Ledger) Reconcile(ctx context.Context, userID uuid.UUID) (domain.Reconciliation, error) {
	earnings, err := l.s.UserEarnings(ctx, userID)
	if err != nil {
		return domain.Reconciliation{}, fmt.Errorf("get earnings of %v: %w", userID, err)
	}

	stats, err := l.s.UserStats(ctx, userID)
	if err != nil {
		return domain.Reconciliation{}, fmt.Errorf("get stats of %v: %w", userID, err)
	}

	r := domain.Reconciliation{
		UserID:        userID,
		LedgerTotal:   stats.TotalAmount,
		TotalEarnings: earnings.TotalEarnings,
		Balance:       earnings.Balance,
	}
	if !r.Consistent() {
		slog.WarnContext(ctx, "ledger and balance disagree",
			"user_id", userID,
			"ledger_total", r.LedgerTotal,
			"total_earnings", r.TotalEarnings)
	}

	return r, nil
}
