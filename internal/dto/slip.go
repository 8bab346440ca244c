package dto

import "time"

// BetRequestDTO carries Numbers for inside bets, Index (1..3) for dozens
// and columns, and Even for even-money bets. Multiplier may be omitted; when
// sent it must equal the house odds for the bet type.
type BetRequestDTO struct {
	Type       string  `json:"type" validate:"required" example:"corner"`
	Numbers    []int   `json:"numbers,omitempty" example:"8,9,11,12"`
	Index      int     `json:"index,omitempty" example:"0"`
	Even       string  `json:"even,omitempty" example:""`
	Amount     float64 `json:"amount" validate:"gt=0" example:"5"`
	Multiplier float64 `json:"multiplier,omitempty" validate:"gte=0" example:"9"`
}

type CreateSlipRequestDTO struct {
	DrawNumber int             `json:"draw_number" validate:"gte=1" example:"42"`
	Bets       []BetRequestDTO `json:"bets" validate:"required,min=1,max=50,dive"`
}

type CreateSlipResponseDTO struct {
	SlipID          int     `json:"slip_id" example:"9"`
	SlipNumber      string  `json:"slip_number" example:"402400715098"`
	DrawNumber      int     `json:"draw_number" example:"42"`
	TotalStake      float64 `json:"total_stake" example:"15"`
	PotentialPayout float64 `json:"potential_payout" example:"370"`
	Balance         float64 `json:"balance" example:"85"`
}

type BetResponseDTO struct {
	Type            string  `json:"type" example:"corner"`
	Description     string  `json:"description" example:"Corner (8,9,11,12)"`
	Amount          float64 `json:"amount" example:"5"`
	Multiplier      float64 `json:"multiplier" example:"9"`
	PotentialReturn float64 `json:"potential_return" example:"45"`
}

type SlipStatusResponseDTO struct {
	SlipNumber      string           `json:"slip_number" example:"402400715098"`
	DrawNumber      int              `json:"draw_number" example:"42"`
	Status          string           `json:"status" example:"won"`
	TotalStake      float64          `json:"total_stake" example:"15"`
	PotentialPayout float64          `json:"potential_payout" example:"370"`
	WinningNumber   *int             `json:"winning_number,omitempty" example:"17"`
	Payout          float64          `json:"payout" example:"350"`
	PaidOutAmount   float64          `json:"paid_out_amount" example:"0"`
	CreatedAt       time.Time        `json:"created_at" example:"2024-05-01T12:01:00Z"`
	SettledAt       *time.Time       `json:"settled_at,omitempty" example:"2024-05-01T12:03:05Z"`
	Bets            []BetResponseDTO `json:"bets"`
}

type CancelSlipResponseDTO struct {
	SlipNumber string  `json:"slip_number" example:"402400715098"`
	Refund     float64 `json:"refund" example:"15"`
	Balance    float64 `json:"balance" example:"100"`
}

type CashOutResponseDTO struct {
	SlipNumber    string  `json:"slip_number" example:"402400715098"`
	Status        string  `json:"status" example:"paid"`
	PaidOutAmount float64 `json:"paid_out_amount" example:"350"`
}
