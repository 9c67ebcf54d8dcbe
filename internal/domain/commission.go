package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/dmarkham/enumer -type=Type -trimprefix=Type -transform=upper -json -text -yaml -sql
//go:generate go run github.com/dmarkham/enumer -type=Status -trimprefix=Status -transform=upper -json -text -yaml -sql

const (
	TypeUnknown Type = iota
	TypeDirect
	TypeMatching
	TypeLevel
)

type Type int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusProcessing
	StatusSettled
	StatusFailed
)

type Status int

// Terminal reports whether no further transition is allowed out of s.
func (s Status) Terminal() bool {
	return s == StatusSettled || s == StatusFailed
}

// CanTransitionTo reports whether the state machine allows s -> next.
// Staying in the same state is not a transition. Handing a PROCESSING claim
// back to PENDING is not part of the machine; only the claim owner does it.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusSettled || next == StatusFailed
	case StatusProcessing:
		return next == StatusSettled || next == StatusFailed
	default:
		return false
	}
}

// Patchable reports whether s may be requested by a Patch. PROCESSING is
// entered only by a drain claim, which also stamps the claim time.
func (s Status) Patchable() bool {
	return s == StatusPending || s == StatusSettled || s == StatusFailed
}

type UserRef struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

type PackageRef struct {
	PackageID uuid.UUID
	Name      string
	Price     decimal.Decimal
}

type Commission struct {
	CreatedAt       time.Time
	SettledAt       *time.Time // Set once, on the transition into SETTLED.
	ClaimedAt       *time.Time
	CommissionID    uuid.UUID
	RecipientUserID uuid.UUID
	SourceUserID    *uuid.UUID
	PackageID       *uuid.UUID
	Type            Type
	Status          Status
	Amount          decimal.Decimal
	Description     string
	Attempts        int

	// Projections attached by the writer for the caller's convenience.
	Recipient *UserRef
	Source    *UserRef
	Package   *PackageRef
}

type NewCommission struct {
	CommissionID    uuid.UUID
	RecipientUserID uuid.UUID       `validate:"required"`
	SourceUserID    *uuid.UUID
	PackageID       *uuid.UUID
	Type            Type            `validate:"required"`
	Status          Status          `validate:"required"`
	Amount          decimal.Decimal `validate:"gte=0"`
	Description     string          `validate:"max=500"`
}

// Patch is a partial update: nil fields keep their current value.
type Patch struct {
	Amount      *decimal.Decimal
	Type        *Type
	Description *string
	Status      *Status
}

func (p Patch) Empty() bool {
	return p.Amount == nil && p.Type == nil && p.Description == nil && p.Status == nil
}

// Change is the outcome of applying a Patch to a commission.
type Change struct {
	Next Commission
	// Noop is set when the patch leaves the stored row untouched.
	Noop bool
	// Settled is set on the edge into SETTLED. The recipient must be credited
	// with Credit exactly once, in the same transaction as the status write.
	Settled bool
	Credit  decimal.Decimal
	// Failed is set on the edge into FAILED.
	Failed bool
}

// Apply computes the next state of c under p. It never credits the patched
// amount: settlement is always against the amount as loaded.
func (c Commission) Apply(p Patch, now time.Time) (Change, error) {
	next := c

	editsFields := (p.Amount != nil && !p.Amount.Equal(c.Amount)) ||
		(p.Type != nil && *p.Type != c.Type) ||
		(p.Description != nil && *p.Description != c.Description)

	if editsFields && c.Status != StatusPending {
		return Change{}, fmt.Errorf("%w: status is %v", ErrNotEditable, c.Status)
	}

	if p.Amount != nil {
		if p.Amount.IsNegative() {
			return Change{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
		}
		next.Amount = *p.Amount
	}
	if p.Type != nil {
		if !p.Type.IsAType() || *p.Type == TypeUnknown {
			return Change{}, fmt.Errorf("%w: unknown type %v", ErrValidation, *p.Type)
		}
		next.Type = *p.Type
	}
	if p.Description != nil {
		next.Description = *p.Description
	}

	if p.Status != nil && !p.Status.Patchable() {
		return Change{}, fmt.Errorf("%w: %v cannot be requested", ErrInvalidTransition, *p.Status)
	}

	var change Change
	if p.Status != nil && *p.Status != c.Status {
		if !c.Status.CanTransitionTo(*p.Status) {
			return Change{}, fmt.Errorf("%w: %v -> %v", ErrInvalidTransition, c.Status, *p.Status)
		}

		next.Status = *p.Status
		switch next.Status {
		case StatusSettled:
			if !next.Amount.Equal(c.Amount) {
				return Change{}, fmt.Errorf("%w: amount cannot change while settling", ErrValidation)
			}
			settledAt := now
			next.SettledAt = &settledAt
			change.Settled = true
			change.Credit = c.Amount
		case StatusFailed:
			change.Failed = true
		}
	}

	change.Next = next
	change.Noop = !editsFields && next.Status == c.Status
	return change, nil
}
