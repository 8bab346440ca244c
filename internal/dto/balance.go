package dto

import "time"

type BalanceResponseDTO struct {
	Balance float64 `json:"balance" example:"500.5"`
}

type TransactionResponseDTO struct {
	ID           int       `json:"id" example:"17"`
	Amount       float64   `json:"amount" example:"-15"`
	BalanceAfter float64   `json:"balance_after" example:"85"`
	Type         string    `json:"type" example:"bet"`
	Reference    string    `json:"reference" example:"slip:9"`
	Description  string    `json:"description" example:"Bet on draw 42, slip 402400715098"`
	CreatedAt    time.Time `json:"created_at" example:"2024-05-01T12:01:00Z"`
}

type CommissionResponseDTO struct {
	Date            string  `json:"date" example:"2024-05-01"`
	TotalBets       float64 `json:"total_bets" example:"1250"`
	TotalCommission float64 `json:"total_commission" example:"50"`
}
