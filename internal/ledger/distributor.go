package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iskorotkov/referral-ledger/internal/calc"
	"github.com/iskorotkov/referral-ledger/internal/domain"
)

// RecordPurchase writes the DIRECT commissions of a package purchase for
// every upline, in one transaction. Uplines deeper than the rate table earn
// nothing and get no record.
func (l *Ledger) RecordPurchase(ctx context.Context, p domain.Purchase) ([]domain.Commission, error) {
	if err := l.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := validateAmount(p.Price); err != nil {
		return nil, err
	}

	buyer := p.BuyerUserID
	cs := make([]domain.NewCommission, 0, len(p.Uplines))
	for _, u := range p.Uplines {
		if u.UserID == buyer {
			return nil, fmt.Errorf("%w: buyer %v is its own upline", domain.ErrValidation, buyer)
		}

		amount := calc.Direct(p.Price, u.Level)
		if amount.IsZero() {
			slog.DebugContext(ctx, "upline earns nothing", "user_id", u.UserID, "level", u.Level)
			continue
		}

		cs = append(cs, domain.NewCommission{
			RecipientUserID: u.UserID,
			SourceUserID:    &buyer,
			PackageID:       p.PackageID,
			Type:            domain.TypeDirect,
			Status:          domain.StatusPending,
			Amount:          amount,
			Description:     fmt.Sprintf("Level %d referral commission", u.Level),
		})
	}

	if len(cs) == 0 {
		return nil, nil
	}

	return l.CreateCommissions(ctx, cs)
}

// RecordMatching writes a MATCHING bonus for a user's team volume.
func (l *Ledger) RecordMatching(ctx context.Context, b domain.MatchingBonus) (domain.Commission, error) {
	if err := l.validate.Struct(b); err != nil {
		return domain.Commission{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	description := b.Description
	if description == "" {
		description = fmt.Sprintf("Matching bonus on team volume %s", b.TeamVolume.StringFixed(2))
	}

	return l.CreateCommission(ctx, domain.NewCommission{
		RecipientUserID: b.UserID,
		SourceUserID:    b.SourceUserID,
		Type:            domain.TypeMatching,
		Status:          domain.StatusPending,
		Amount:          calc.Matching(b.TeamVolume, b.UserLevel),
		Description:     description,
	})
}
