package transform

import (
	"github.com/iskorotkov/referral-ledger/internal/db"
	"github.com/iskorotkov/referral-ledger/internal/domain"
)

func UserRefFromPgx(u db.UserSummaryRow) *domain.UserRef {
	return &domain.UserRef{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

func PackageRefFromPgx(p db.PackageSummaryRow) *domain.PackageRef {
	return &domain.PackageRef{
		PackageID: p.PackageID,
		Name:      p.Name,
		Price:     p.Price,
	}
}

func EarningsFromPgx(e db.UserEarningsRow) domain.Earnings {
	return domain.Earnings{
		UserID:        e.UserID,
		TotalEarnings: e.TotalEarnings,
		Balance:       e.Balance,
	}
}

func StatsFromPgx(s db.CommissionStatsRow) domain.Stats {
	return domain.Stats{
		Total:         s.Total,
		Pending:       s.Pending,
		Processing:    s.Processing,
		Settled:       s.Settled,
		Failed:        s.Failed,
		TotalAmount:   s.SettledAmount,
		PendingAmount: s.PendingAmount,
	}
}
