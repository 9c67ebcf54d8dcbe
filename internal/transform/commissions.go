package transform

import (
	"errors"
	"fmt"
	"time"

	"github.com/iskorotkov/referral-ledger/internal/db"
	"github.com/iskorotkov/referral-ledger/internal/domain"
)

var (
	ErrInvalidType   = errors.New("invalid type")
	ErrInvalidStatus = errors.New("invalid status")
)

func CommissionFromPgx(c db.Commission) (domain.Commission, error) {
	commissionType, err := domain.TypeString(c.Type)
	if err != nil {
		return domain.Commission{}, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}

	status, err := domain.StatusString(c.Status)
	if err != nil {
		return domain.Commission{}, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	return domain.Commission{
		CreatedAt:       c.CreatedAt,
		SettledAt:       c.SettledAt,
		ClaimedAt:       c.ClaimedAt,
		CommissionID:    c.CommissionID,
		RecipientUserID: c.RecipientUserID,
		SourceUserID:    c.SourceUserID,
		PackageID:       c.PackageID,
		Type:            commissionType,
		Status:          status,
		Amount:          c.Amount,
		Description:     c.Description,
		Attempts:        int(c.Attempts),
	}, nil
}

func CommissionsFromPgx(rows []db.Commission) ([]domain.Commission, error) {
	commissions := make([]domain.Commission, 0, len(rows))
	for _, r := range rows {
		c, err := CommissionFromPgx(r)
		if err != nil {
			return nil, fmt.Errorf("transform commission %v: %w", r.CommissionID, err)
		}

		commissions = append(commissions, c)
	}

	return commissions, nil
}

func NewCommissionToPgx(c domain.NewCommission, settledAt *time.Time) db.InsertCommissionParams {
	return db.InsertCommissionParams{
		CommissionID:    c.CommissionID,
		RecipientUserID: c.RecipientUserID,
		SourceUserID:    c.SourceUserID,
		PackageID:       c.PackageID,
		Type:            c.Type.String(),
		Status:          c.Status.String(),
		Amount:          c.Amount,
		Description:     c.Description,
		SettledAt:       settledAt,
	}
}

// UpdateToPgx builds a compare-and-swap update of prev into next.
func UpdateToPgx(prev, next domain.Commission) db.UpdateCommissionParams {
	return db.UpdateCommissionParams{
		Type:           next.Type.String(),
		Amount:         next.Amount,
		Description:    next.Description,
		Status:         next.Status.String(),
		SettledAt:      next.SettledAt,
		ClaimedAt:      next.ClaimedAt,
		CommissionID:   prev.CommissionID,
		ExpectedStatus: prev.Status.String(),
	}
}

func filterValues(f domain.Filter) (typ, status *string) {
	if f.Type != nil {
		s := f.Type.String()
		typ = &s
	}
	if f.Status != nil {
		s := f.Status.String()
		status = &s
	}
	return typ, status
}

func FilterToPgx(f domain.Filter) (db.ListCommissionsParams, db.CountCommissionsParams) {
	typ, status := filterValues(f)

	return db.ListCommissionsParams{
			RecipientUserID: f.UserID,
			Type:            typ,
			Status:          status,
			StartDate:       f.StartDate,
			EndDate:         f.EndDate,
			PageLimit:       int32(f.Limit),
			PageOffset:      int32(f.Offset()),
		}, db.CountCommissionsParams{
			RecipientUserID: f.UserID,
			Type:            typ,
			Status:          status,
			StartDate:       f.StartDate,
			EndDate:         f.EndDate,
		}
}

func NotificationToPgx(n domain.Notification) db.InsertNotificationParams {
	return db.InsertNotificationParams{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           n.Type,
	}
}

func NotificationFromPgx(n db.Notification) domain.Notification {
	return domain.Notification{
		CreatedAt:      n.CreatedAt,
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           n.Type,
	}
}
