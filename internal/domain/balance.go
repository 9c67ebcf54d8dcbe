package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Earnings is the denormalized balance projection of a user.
type Earnings struct {
	UserID        uuid.UUID
	TotalEarnings decimal.Decimal
	Balance       decimal.Decimal
}

// Reconciliation compares the ledger with the balance projection.
type Reconciliation struct {
	UserID        uuid.UUID
	LedgerTotal   decimal.Decimal // Sum of SETTLED amounts.
	TotalEarnings decimal.Decimal
	Balance       decimal.Decimal
}

func (r Reconciliation) Consistent() bool {
	return r.LedgerTotal.Equal(r.TotalEarnings)
}
