package domain

import "time"

type Role string

const (
	RoleCashier Role = "cashier"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CashBalance  float64   `db:"cash_balance"`
	CreatedAt    time.Time `db:"created_at"`
}

// Phase is the position of the draw cycle stored in the draw_state row.
type Phase string

const (
	PhaseCountingDown Phase = "counting_down"
	PhaseDrawing      Phase = "drawing"
	PhaseSettling     Phase = "settling"
)

type DrawState struct {
	CurrentDrawNumber int       `db:"current_draw_number"`
	NextDrawNumber    int       `db:"next_draw_number"`
	CountdownDeadline time.Time `db:"countdown_deadline"`
	ManualMode        bool      `db:"manual_mode"`
	Phase             Phase     `db:"phase"`
	LastDrawNumber    *int      `db:"last_draw_number"`
	LastWinningNumber *int      `db:"last_winning_number"`
	Version           int64     `db:"version"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// CountdownSeconds returns the whole seconds left until the deadline, never negative.
func (s *DrawState) CountdownSeconds(now time.Time) int {
	left := s.CountdownDeadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

type Draw struct {
	DrawNumber    int       `db:"draw_number"`
	WinningNumber int       `db:"winning_number"`
	WinningColor  string    `db:"winning_color"`
	IsManual      bool      `db:"is_manual"`
	DrawnAt       time.Time `db:"drawn_at"`
}

type ForcedNumber struct {
	DrawNumber    int       `db:"draw_number"`
	WinningNumber int       `db:"winning_number"`
	CreatedBy     int       `db:"created_by"`
	CreatedAt     time.Time `db:"created_at"`
}

// Spin is one entry of the recent-spins projection.
type Spin struct {
	DrawNumber int       `json:"draw_number"`
	Number     int       `json:"number"`
	Color      string    `json:"color"`
	DrawnAt    time.Time `json:"drawn_at"`
}

type SlipStatus string

const (
	SlipStatusPending   SlipStatus = "pending"
	SlipStatusActive    SlipStatus = "active" // legacy alias of pending
	SlipStatusWon       SlipStatus = "won"
	SlipStatusLost      SlipStatus = "lost"
	SlipStatusPaid      SlipStatus = "paid"
	SlipStatusCancelled SlipStatus = "cancelled"
)

// IsOpen reports whether the slip still waits for settlement.
func (s SlipStatus) IsOpen() bool {
	return s == SlipStatusPending || s == SlipStatusActive
}

type Slip struct {
	ID              int        `db:"id"`
	SlipNumber      string     `db:"slip_number"`
	UserID          int        `db:"user_id"`
	DrawNumber      int        `db:"draw_number"`
	TotalStake      float64    `db:"total_stake"`
	PotentialPayout float64    `db:"potential_payout"`
	Status          SlipStatus `db:"status"`
	PaidOutAmount   float64    `db:"paid_out_amount"`
	WinningNumber   *int       `db:"winning_number"`
	CreatedAt       time.Time  `db:"created_at"`
	SettledAt       *time.Time `db:"settled_at"`
}

type Bet struct {
	ID              int     `db:"id"`
	SlipID          int     `db:"slip_id"`
	BetType         string  `db:"bet_type"`
	Target          []byte  `db:"target"`
	Amount          float64 `db:"amount"`
	Multiplier      float64 `db:"multiplier"`
	PotentialReturn float64 `db:"potential_return"`
}

type EntryType string

const (
	EntryBet        EntryType = "bet"
	EntryWin        EntryType = "win"
	EntryVoucher    EntryType = "voucher"
	EntryAdmin      EntryType = "admin"
	EntryRefund     EntryType = "refund"
	EntryAdjustment EntryType = "adjustment"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryBet, EntryWin, EntryVoucher, EntryAdmin, EntryRefund, EntryAdjustment:
		return true
	}
	return false
}

type LedgerEntry struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	SignedAmount float64   `db:"signed_amount"`
	BalanceAfter float64   `db:"balance_after"`
	Type         EntryType `db:"type"`
	ReferenceID  string    `db:"reference_id"`
	Description  string    `db:"description"`
	CreatedAt    time.Time `db:"created_at"`
}

type CommissionSummary struct {
	UserID          int       `db:"user_id"`
	Date            time.Time `db:"summary_date"`
	TotalBets       float64   `db:"total_bets"`
	TotalCommission float64   `db:"total_commission"`
}

// Reconciliation compares the cached account balance with the ledger.
type Reconciliation struct {
	UserID           int     `json:"user_id"`
	CashBalance      float64 `json:"cash_balance"`
	LedgerSum        float64 `json:"ledger_sum"`
	LastBalanceAfter float64 `json:"last_balance_after"`
	Entries          int     `json:"entries"`
	Consistent       bool    `json:"consistent"`
}
