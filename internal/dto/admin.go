package dto

type CreditRequestDTO struct {
	UserID      int     `json:"user_id" validate:"gte=1" example:"3"`
	Amount      float64 `json:"amount" validate:"ne=0" example:"100"`
	Type        string  `json:"type" validate:"oneof=admin voucher adjustment" example:"voucher"`
	Description string  `json:"description" validate:"max=255" example:"Float for the evening shift"`
}

type CreditResponseDTO struct {
	EntryID int     `json:"entry_id" example:"18"`
	Balance float64 `json:"balance" example:"185"`
}

type ForcedNumberRequestDTO struct {
	DrawNumber int  `json:"draw_number" validate:"gte=1" example:"42"`
	Number     *int `json:"number" validate:"required,gte=0,lte=36" example:"17"`
}

type ModeRequestDTO struct {
	Manual *bool `json:"manual" validate:"required" example:"true"`
}

type AdvanceResponseDTO struct {
	DrawNumber    *int                 `json:"draw_number,omitempty" example:"42"`
	WinningNumber *int                 `json:"winning_number,omitempty" example:"17"`
	State         DrawStateResponseDTO `json:"state"`
}

type GapsResponseDTO struct {
	Gaps []int `json:"gaps"`
}

type SettleResponseDTO struct {
	DrawNumber int     `json:"draw_number" example:"42"`
	Total      int     `json:"total" example:"12"`
	Won        int     `json:"won" example:"3"`
	Lost       int     `json:"lost" example:"9"`
	Skipped    int     `json:"skipped" example:"0"`
	Failed     int     `json:"failed" example:"0"`
	Payout     float64 `json:"payout" example:"410"`
}

type ReconcileResponseDTO struct {
	UserID           int     `json:"user_id" example:"3"`
	CashBalance      float64 `json:"cash_balance" example:"185"`
	LedgerSum        float64 `json:"ledger_sum" example:"185"`
	LastBalanceAfter float64 `json:"last_balance_after" example:"185"`
	Entries          int     `json:"entries" example:"14"`
	Consistent       bool    `json:"consistent" example:"true"`
}

type ModeResponseDTO struct {
	ManualMode     bool `json:"manual_mode" example:"true"`
	NextDrawNumber int  `json:"next_draw_number" example:"42"`
}
