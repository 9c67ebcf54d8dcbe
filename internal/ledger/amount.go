package ledger

import (
	"fmt"

	"github.com/iskorotkov/referral-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Amounts are stored as numeric(20,2).
const amountScale = 2

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}

	if !amount.Equal(amount.Truncate(amountScale)) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", domain.ErrValidation, amount, amountScale)
	}

	return nil
}
