package storage

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iskorotkov/referral-ledger/internal/db"
	"github.com/iskorotkov/referral-ledger/internal/domain"
	"github.com/iskorotkov/referral-ledger/internal/transform"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ConnectionPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Querier interface {
	WithTx(tx pgx.Tx) *db.Queries
	CommissionByID(ctx context.Context, commissionID uuid.UUID) (db.Commission, error)
	ListCommissions(ctx context.Context, arg db.ListCommissionsParams) ([]db.Commission, error)
	CountCommissions(ctx context.Context, arg db.CountCommissionsParams) (int64, error)
	CommissionStats(ctx context.Context, recipientUserID uuid.UUID) (db.CommissionStatsRow, error)
	ClaimQueued(ctx context.Context, arg db.ClaimQueuedParams) ([]db.Commission, error)
	ReleaseClaim(ctx context.Context, commissionID uuid.UUID) (int64, error)
	UserEarnings(ctx context.Context, userID uuid.UUID) (db.UserEarningsRow, error)
	UserNotifications(ctx context.Context, arg db.UserNotificationsParams) ([]db.Notification, error)
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	CreatePackage(ctx context.Context, arg db.CreatePackageParams) (db.Package, error)
}

func NewCommissions(c ConnectionPool, q Querier) *Commissions {
	return &Commissions{
		c:   c,
		q:   q,
		now: time.Now,
	}
}

// Commissions is the ledger store. Every write that touches more than one row
// runs in a single transaction.
type Commissions struct {
	c   ConnectionPool
	q   Querier
	now func() time.Time
}

func (s *Commissions) CreateCommissions(ctx context.Context, cs []domain.NewCommission) ([]domain.Commission, error) {
	created := make([]domain.Commission, 0, len(cs))

	err := s.inTx(ctx, func(qtx *db.Queries) error {
		for _, c := range cs {
			commission, err := s.createCommission(ctx, qtx, c)
			if err != nil {
				return err
			}

			created = append(created, commission)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Commissions) createCommission(ctx context.Context, qtx *db.Queries, c domain.NewCommission) (domain.Commission, error) {
	if c.CommissionID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domain.Commission{}, fmt.Errorf("generate commission id: %w", err)
		}
		c.CommissionID = id
	}

	if _, err := qtx.LockUser(ctx, c.RecipientUserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Commission{}, fmt.Errorf("%w: recipient %v", domain.ErrNotFound, c.RecipientUserID)
		}
		return domain.Commission{}, classify("lock recipient", err)
	}

	var settledAt *time.Time
	if c.Status == domain.StatusSettled {
		now := s.now().UTC()
		settledAt = &now
	}

	row, err := qtx.InsertCommission(ctx, transform.NewCommissionToPgx(c, settledAt))
	if err != nil {
		return domain.Commission{}, classify("insert commission", err)
	}

	commission, err := transform.CommissionFromPgx(row)
	if err != nil {
		return domain.Commission{}, fmt.Errorf("transform commission: %w", err)
	}

	if err := s.attachProjections(ctx, qtx, &commission); err != nil {
		return domain.Commission{}, err
	}

	if err := s.notify(ctx, qtx, domain.CreatedNotification(commission)); err != nil {
		return domain.Commission{}, err
	}

	if c.Status == domain.StatusSettled {
		if err := s.adjustEarnings(ctx, qtx, commission.RecipientUserID, commission.Amount); err != nil {
			return domain.Commission{}, err
		}
	}

	return commission, nil
}

// UpdateCommission applies patch to the locked row and performs the side
// effects of the resulting transition in the same transaction.
func (s *Commissions) UpdateCommission(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Change, error) {
	var change domain.Change

	err := s.inTx(ctx, func(qtx *db.Queries) error {
		row, err := qtx.LockCommission(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: commission %v", domain.ErrNotFound, id)
			}
			return classify("lock commission", err)
		}

		current, err := transform.CommissionFromPgx(row)
		if err != nil {
			return fmt.Errorf("transform commission: %w", err)
		}

		change, err = current.Apply(patch, s.now().UTC())
		if err != nil {
			return err
		}
		if change.Noop {
			return nil
		}

		updated, err := qtx.UpdateCommission(ctx, transform.UpdateToPgx(current, change.Next))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: commission %v left %v", domain.ErrConflict, id, current.Status)
			}
			return classify("update commission", err)
		}

		change.Next, err = transform.CommissionFromPgx(updated)
		if err != nil {
			return fmt.Errorf("transform commission: %w", err)
		}

		switch {
		case change.Settled:
			if err := s.adjustEarnings(ctx, qtx, current.RecipientUserID, change.Credit); err != nil {
				return err
			}
			return s.notify(ctx, qtx, domain.ProcessedNotification(change.Next))
		case change.Failed:
			return s.notify(ctx, qtx, domain.FailedNotification(change.Next))
		}

		return nil
	})
	if err != nil {
		return domain.Change{}, err
	}

	return change, nil
}

// ClaimQueued moves up to batchSize of the oldest PENDING commissions (and
// PROCESSING ones claimed longer than lease ago) to PROCESSING and returns
// them oldest first. Rows locked by a concurrent claim are skipped. Claim age
// is measured by the database clock, the same one that sets claimed_at.
func (s *Commissions) ClaimQueued(ctx context.Context, batchSize int, lease time.Duration) ([]domain.Commission, error) {
	rows, err := s.q.ClaimQueued(ctx, db.ClaimQueuedParams{
		Lease:     pgtype.Interval{Microseconds: lease.Microseconds(), Valid: true},
		BatchSize: int32(batchSize),
	})
	if err != nil {
		return nil, classify("claim commissions", err)
	}

	claimed, err := transform.CommissionsFromPgx(rows)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(claimed, func(a, b domain.Commission) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.CommissionID.String(), b.CommissionID.String())
	})

	return claimed, nil
}

// ReleaseClaim returns a PROCESSING commission to PENDING. It reports false
// when the commission was no longer PROCESSING.
func (s *Commissions) ReleaseClaim(ctx context.Context, id uuid.UUID) (bool, error) {
	released, err := s.q.ReleaseClaim(ctx, id)
	if err != nil {
		return false, classify("release claim", err)
	}

	return released > 0, nil
}

// DeleteCommission removes a commission after re-verifying it under lock.
// A SETTLED commission has its balance effect reversed.
func (s *Commissions) DeleteCommission(ctx context.Context, id uuid.UUID) (domain.Commission, error) {
	var deleted domain.Commission

	err := s.inTx(ctx, func(qtx *db.Queries) error {
		row, err := qtx.LockCommission(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: commission %v", domain.ErrNotFound, id)
			}
			return classify("lock commission", err)
		}

		deleted, err = transform.CommissionFromPgx(row)
		if err != nil {
			return fmt.Errorf("transform commission: %w", err)
		}

		if deleted.Status == domain.StatusSettled {
			if err := s.adjustEarnings(ctx, qtx, deleted.RecipientUserID, deleted.Amount.Neg()); err != nil {
				return err
			}
		}

		removed, err := qtx.DeleteCommission(ctx, id)
		if err != nil {
			return classify("delete commission", err)
		}
		if removed == 0 {
			return fmt.Errorf("%w: commission %v", domain.ErrNotFound, id)
		}

		return nil
	})
	if err != nil {
		return domain.Commission{}, err
	}

	return deleted, nil
}

func (s *Commissions) Commission(ctx context.Context, id uuid.UUID) (domain.Commission, error) {
	row, err := s.q.CommissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Commission{}, fmt.Errorf("%w: commission %v", domain.ErrNotFound, id)
		}
		return domain.Commission{}, classify("fetch commission", err)
	}

	commission, err := transform.CommissionFromPgx(row)
	if err != nil {
		return domain.Commission{}, fmt.Errorf("transform commission: %w", err)
	}

	return commission, nil
}

func (s *Commissions) ListCommissions(ctx context.Context, f domain.Filter) ([]domain.Commission, int64, error) {
	listParams, countParams := transform.FilterToPgx(f)

	total, err := s.q.CountCommissions(ctx, countParams)
	if err != nil {
		return nil, 0, classify("count commissions", err)
	}

	rows, err := s.q.ListCommissions(ctx, listParams)
	if err != nil {
		return nil, 0, classify("list commissions", err)
	}

	commissions, err := transform.CommissionsFromPgx(rows)
	if err != nil {
		return nil, 0, err
	}

	return commissions, total, nil
}

func (s *Commissions) UserStats(ctx context.Context, userID uuid.UUID) (domain.Stats, error) {
	row, err := s.q.CommissionStats(ctx, userID)
	if err != nil {
		return domain.Stats{}, classify("fetch stats", err)
	}

	stats := transform.StatsFromPgx(row)
	stats.UserID = userID
	return stats, nil
}

func (s *Commissions) UserEarnings(ctx context.Context, userID uuid.UUID) (domain.Earnings, error) {
	row, err := s.q.UserEarnings(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Earnings{}, fmt.Errorf("%w: user %v", domain.ErrNotFound, userID)
		}
		return domain.Earnings{}, classify("fetch earnings", err)
	}

	return transform.EarningsFromPgx(row), nil
}

func (s *Commissions) Notifications(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	rows, err := s.q.UserNotifications(ctx, db.UserNotificationsParams{
		UserID: userID,
		Limit:  int32(limit),
	})
	if err != nil {
		return nil, classify("fetch notifications", err)
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, r := range rows {
		notifications = append(notifications, transform.NotificationFromPgx(r))
	}

	return notifications, nil
}

func (s *Commissions) inTx(ctx context.Context, fn func(qtx *db.Queries) error) error {
	pgxTx, err := s.c.Begin(ctx)
	if err != nil {
		return classify("begin pgx tx", err)
	}
	defer func() {
		if err := pgxTx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(s.q.WithTx(pgxTx)); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return classify("commit pgx tx", err)
	}

	return nil
}

func (s *Commissions) attachProjections(ctx context.Context, qtx *db.Queries, c *domain.Commission) error {
	recipient, err := qtx.UserSummary(ctx, c.RecipientUserID)
	if err != nil {
		return classify("fetch recipient", err)
	}
	c.Recipient = transform.UserRefFromPgx(recipient)

	if c.SourceUserID != nil {
		source, err := qtx.UserSummary(ctx, *c.SourceUserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: source user %v", domain.ErrNotFound, *c.SourceUserID)
			}
			return classify("fetch source user", err)
		}
		c.Source = transform.UserRefFromPgx(source)
	}

	if c.PackageID != nil {
		pkg, err := qtx.PackageSummary(ctx, *c.PackageID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: package %v", domain.ErrNotFound, *c.PackageID)
			}
			return classify("fetch package", err)
		}
		c.Package = transform.PackageRefFromPgx(pkg)
	}

	return nil
}

func (s *Commissions) notify(ctx context.Context, qtx *db.Queries, n domain.Notification) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate notification id: %w", err)
	}
	n.NotificationID = id

	if _, err := qtx.InsertNotification(ctx, transform.NotificationToPgx(n)); err != nil {
		return classify("insert notification", err)
	}

	return nil
}

func (s *Commissions) adjustEarnings(ctx context.Context, qtx *db.Queries, userID uuid.UUID, amount decimal.Decimal) error {
	updated, err := qtx.AdjustEarnings(ctx, db.AdjustEarningsParams{
		UserID: userID,
		Amount: amount,
	})
	if err != nil {
		return classify("adjust earnings", err)
	}
	if updated == 0 {
		return fmt.Errorf("%w: user %v", domain.ErrNotFound, userID)
	}

	return nil
}

func classify(op string, err error) error {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		switch {
		case pgerr.Code == "23505":
			return fmt.Errorf("%w: %v", domain.ErrAlreadyExists, err)
		case pgerr.Code == "23503":
			return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
		case pgerr.Code == "23514" && strings.HasPrefix(pgerr.ConstraintName, "users_"):
			return fmt.Errorf("%w: %v", domain.ErrNegativeBalance, err)
		case pgerr.Code == "23514", pgerr.Code == "22003":
			return fmt.Errorf("%w: %s: %v", domain.ErrValidation, op, err)
		case pgerr.Code == "40001", pgerr.Code == "40P01", pgerr.Code == "55P03",
			strings.HasPrefix(pgerr.Code, "08"):
			return fmt.Errorf("%w: %s: %v", domain.ErrTransient, op, err)
		}
	}

	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %v", domain.ErrTransient, op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
