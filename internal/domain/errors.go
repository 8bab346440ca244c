package domain

import "errors"

var (
	// ErrNotYetDrawn means no store has a result for the draw; callers retry later.
	ErrNotYetDrawn = errors.New("draw not yet drawn")
	// ErrAlreadySettled is a benign short-circuit for slips found in a terminal state.
	ErrAlreadySettled = errors.New("slip already settled")
	// ErrDataInconsistency is only logged; resolution proceeds by precedence.
	ErrDataInconsistency = errors.New("draw result sources disagree")

	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrConcurrentModification = errors.New("concurrent modification")

	ErrInvalidBet         = errors.New("invalid bet")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidEntryType   = errors.New("invalid ledger entry type")
	ErrInvalidNumber      = errors.New("winning number must be between 0 and 36")
	ErrDrawClosed         = errors.New("draw is closed for betting")
	ErrDrawAlreadyDrawn   = errors.New("draw already drawn")
	ErrSlipNotFound       = errors.New("slip not found")
	ErrSlipNotCancellable = errors.New("slip can not be cancelled")
	ErrSlipNotWon         = errors.New("slip is not a winning slip")
	ErrAccountNotFound    = errors.New("account not found")

	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
