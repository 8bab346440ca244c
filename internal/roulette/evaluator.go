package roulette

import (
	"github.com/shopspring/decimal"
)

// Wager is one bet of a slip as it is evaluated at settlement. Multiplier is
// the value frozen when the slip was sold.
type Wager struct {
	Target     Target
	Amount     decimal.Decimal
	Multiplier decimal.Decimal
}

// IsWinner is pure: the same wager and result always give the same answer.
func IsWinner(w Wager, number int, color Color) bool {
	return w.Target.Contains(number, color)
}

// Payout returns amount * multiplier for a winning wager and zero otherwise.
func Payout(w Wager, won bool) decimal.Decimal {
	if !won {
		return decimal.Zero
	}
	return PotentialReturn(w.Amount, w.Multiplier)
}

// PotentialReturn is what a winning wager credits, stake included.
func PotentialReturn(amount, multiplier decimal.Decimal) decimal.Decimal {
	return amount.Mul(multiplier.Round(2)).Round(2)
}

// SettleWagers sums the payouts of all winning wagers of a slip.
func SettleWagers(wagers []Wager, number int, color Color) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wagers {
		total = total.Add(Payout(w, IsWinner(w, number, color)))
	}
	return total.Round(2)
}

// Multipliers include the returned stake: an even-money win on 10 credits 20.
var defaultMultipliers = map[Kind]int64{
	KindStraight:  36,
	KindSplit:     18,
	KindStreet:    12,
	KindCorner:    9,
	KindBasket:    7,
	KindLine:      6,
	KindDozen:     3,
	KindColumn:    3,
	KindSnake:     3,
	KindEvenMoney: 2,
}

// DefaultMultiplier is the house odds table. Sales always use it.
func DefaultMultiplier(kind Kind) (decimal.Decimal, bool) {
	m, ok := defaultMultipliers[kind]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(m), true
}
