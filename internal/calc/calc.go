// Package calc maps purchases and team volume to commission amounts using
// fixed rate tables. Everything here is pure.
package calc

import "github.com/shopspring/decimal"

// TableVersion identifies the rate tables below. Bump it with any rate change.
const TableVersion = 1

var (
	directRates = map[int]decimal.Decimal{
		1: decimal.RequireFromString("0.10"),
		2: decimal.RequireFromString("0.05"),
		3: decimal.RequireFromString("0.03"),
	}
	matchingRates = map[int]decimal.Decimal{
		1: decimal.RequireFromString("0.05"),
		2: decimal.RequireFromString("0.07"),
		3: decimal.RequireFromString("0.10"),
	}
)

// Direct returns the commission for a package purchase made by a referral
// at the given depth. Unknown levels earn zero.
func Direct(packagePrice decimal.Decimal, level int) decimal.Decimal {
	return apply(directRates, packagePrice, level)
}

// Matching returns the bonus for a team's volume given the recipient's level.
// Unknown levels earn zero.
func Matching(teamVolume decimal.Decimal, userLevel int) decimal.Decimal {
	return apply(matchingRates, teamVolume, userLevel)
}

// DirectLevels is the deepest referral level that earns a direct commission.
func DirectLevels() int {
	return len(directRates)
}

func apply(table map[int]decimal.Decimal, base decimal.Decimal, level int) decimal.Decimal {
	rate, ok := table[level]
	if !ok || base.IsNegative() {
		return decimal.Zero
	}
	return base.Mul(rate).RoundBank(2)
}
