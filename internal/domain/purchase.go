package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Upline is a referrer of the buyer at the given depth (1 = direct referrer).
type Upline struct {
	UserID uuid.UUID `validate:"required"`
	Level  int       `validate:"gte=1"`
}

type Purchase struct {
	BuyerUserID uuid.UUID       `validate:"required"`
	PackageID   *uuid.UUID
	Price       decimal.Decimal `validate:"gt=0"`
	Uplines     []Upline        `validate:"dive"`
}

type MatchingBonus struct {
	UserID       uuid.UUID       `validate:"required"`
	SourceUserID *uuid.UUID
	TeamVolume   decimal.Decimal `validate:"gte=0"`
	UserLevel    int             `validate:"gte=1"`
	Description  string          `validate:"max=500"`
}
