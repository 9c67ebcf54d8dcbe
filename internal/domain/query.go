package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter enumerates every recognized list filter. Nil fields do not restrict.
type Filter struct {
	Page      int
	Limit     int
	UserID    *uuid.UUID // Restrict to a recipient.
	Type      *Type
	Status    *Status
	StartDate *time.Time // Inclusive lower bound on CreatedAt.
	EndDate   *time.Time // Inclusive upper bound on CreatedAt.
}

// Normalize applies defaults and clamps page and limit to positive values.
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Pagination struct {
	Page  int
	Limit int
	Total int64
	Pages int64
}

func NewPagination(f Filter, total int64) Pagination {
	limit := int64(f.Limit)
	return Pagination{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}
}

type Page struct {
	Commissions []Commission
	Pagination  Pagination
}

type Stats struct {
	UserID        uuid.UUID
	Total         int64
	Pending       int64
	Processing    int64
	Settled       int64
	Failed        int64
	TotalAmount   decimal.Decimal // Sum of SETTLED amounts.
	PendingAmount decimal.Decimal
}

// SettlementRate is settled/total*100, or 0 without commissions.
func (s Stats) SettlementRate() decimal.Decimal {
	if s.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(s.Settled * 100).Div(decimal.NewFromInt(s.Total)).Round(2)
}
