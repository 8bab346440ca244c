package roulette

import (
	"fmt"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/shopspring/decimal"
)

// WagerFromBet rebuilds the evaluated form of a stored bet.
func WagerFromBet(b domain.Bet) (Wager, error) {
	target, err := UnmarshalTarget(b.Target)
	if err != nil {
		return Wager{}, fmt.Errorf("bet %d: %w", b.ID, err)
	}
	return Wager{
		Target:     target,
		Amount:     decimal.NewFromFloat(b.Amount),
		Multiplier: decimal.NewFromFloat(b.Multiplier),
	}, nil
}

// EvaluateBets returns the total payout of a slip on number. A slip is won
// only when that total is positive.
func EvaluateBets(bets []domain.Bet, number int) (bool, decimal.Decimal, error) {
	wagers := make([]Wager, 0, len(bets))
	for _, b := range bets {
		w, err := WagerFromBet(b)
		if err != nil {
			return false, decimal.Zero, err
		}
		wagers = append(wagers, w)
	}
	total := SettleWagers(wagers, number, ColorOf(number))
	return total.IsPositive(), total, nil
}
