package sliprepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const slipColumns = `id, slip_number, user_id, draw_number, total_stake, potential_payout, status,
	paid_out_amount, winning_number, created_at, settled_at`

func scanSlip(row pgx.Row) (*domain.Slip, error) {
	var s domain.Slip
	var status string
	err := row.Scan(&s.ID, &s.SlipNumber, &s.UserID, &s.DrawNumber, &s.TotalStake, &s.PotentialPayout, &status,
		&s.PaidOutAmount, &s.WinningNumber, &s.CreatedAt, &s.SettledAt)
	if err != nil {
		return nil, err
	}
	s.Status = domain.SlipStatus(status)
	return &s, nil
}

// CreateSlip stores the slip and its bets. The caller owns the transaction.
func (r *Repository) CreateSlip(ctx context.Context, slip *domain.Slip, bets []domain.Bet) (*domain.Slip, error) {
	query := `
		INSERT INTO betting_slips (slip_number, user_id, draw_number, total_stake, potential_payout, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		slip.SlipNumber, slip.UserID, slip.DrawNumber, slip.TotalStake, slip.PotentialPayout, string(slip.Status),
	).Scan(&slip.ID, &slip.CreatedAt)
	if err != nil {
		zap.L().Error("can't save betting slip", zap.Error(err))
		return nil, err
	}

	betQuery := `
		INSERT INTO bets (slip_id, bet_type, target, amount, multiplier, potential_return)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for i := range bets {
		bets[i].SlipID = slip.ID
		b := &bets[i]
		err := r.db.QueryRow(ctx, betQuery, b.SlipID, b.BetType, b.Target, b.Amount, b.Multiplier, b.PotentialReturn).Scan(&b.ID)
		if err != nil {
			zap.L().Error("can't save bet", zap.Int("slip_id", slip.ID), zap.Error(err))
			return nil, err
		}
	}
	return slip, nil
}

func (r *Repository) FindByNumber(ctx context.Context, slipNumber string) (*domain.Slip, error) {
	query := `SELECT ` + slipColumns + ` FROM betting_slips WHERE slip_number = $1`
	slip, err := scanSlip(r.db.QueryRow(ctx, query, slipNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find betting slip", zap.String("slip_number", slipNumber), zap.Error(err))
		return nil, err
	}
	return slip, nil
}

// LockByNumber re-reads the slip under a row lock. It must run inside a transaction.
func (r *Repository) LockByNumber(ctx context.Context, slipNumber string) (*domain.Slip, error) {
	query := `SELECT ` + slipColumns + ` FROM betting_slips WHERE slip_number = $1 FOR UPDATE`
	slip, err := scanSlip(r.db.QueryRow(ctx, query, slipNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSlipNotFound
		}
		zap.L().Error("can't lock betting slip", zap.String("slip_number", slipNumber), zap.Error(err))
		return nil, err
	}
	return slip, nil
}

func (r *Repository) LockByID(ctx context.Context, slipID int) (*domain.Slip, error) {
	query := `SELECT ` + slipColumns + ` FROM betting_slips WHERE id = $1 FOR UPDATE`
	slip, err := scanSlip(r.db.QueryRow(ctx, query, slipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSlipNotFound
		}
		zap.L().Error("can't lock betting slip", zap.Int("slip_id", slipID), zap.Error(err))
		return nil, err
	}
	return slip, nil
}

// ListOpenByDraw returns pending slips, including the legacy active status.
func (r *Repository) ListOpenByDraw(ctx context.Context, drawNumber int) ([]domain.Slip, error) {
	query := `SELECT ` + slipColumns + `
		FROM betting_slips
		WHERE draw_number = $1 AND status IN ('pending', 'active')
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, drawNumber)
	if err != nil {
		zap.L().Error("failed to fetch open slips", zap.Int("draw_number", drawNumber), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var slips []domain.Slip
	for rows.Next() {
		slip, err := scanSlip(rows)
		if err != nil {
			zap.L().Error("failed to scan slip row", zap.Error(err))
			return nil, err
		}
		slips = append(slips, *slip)
	}
	return slips, rows.Err()
}

func (r *Repository) ListBets(ctx context.Context, slipID int) ([]domain.Bet, error) {
	query := `
		SELECT id, slip_id, bet_type, target, amount, multiplier, potential_return
		FROM bets
		WHERE slip_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, slipID)
	if err != nil {
		zap.L().Error("failed to fetch bets", zap.Int("slip_id", slipID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		var b domain.Bet
		if err := rows.Scan(&b.ID, &b.SlipID, &b.BetType, &b.Target, &b.Amount, &b.Multiplier, &b.PotentialReturn); err != nil {
			zap.L().Error("failed to scan bet row", zap.Error(err))
			return nil, err
		}
		bets = append(bets, b)
	}
	return bets, rows.Err()
}

// MarkSettled moves an open slip to won or lost. A slip that is no longer
// open yields ErrAlreadySettled.
func (r *Repository) MarkSettled(ctx context.Context, slipID int, status domain.SlipStatus, winningNumber int, settledAt time.Time) error {
	query := `
		UPDATE betting_slips
		SET status = $1, winning_number = $2, settled_at = $3
		WHERE id = $4 AND status IN ('pending', 'active')
	`
	tag, err := r.db.Exec(ctx, query, string(status), winningNumber, settledAt, slipID)
	if err != nil {
		zap.L().Error("failed to mark slip settled", zap.Int("slip_id", slipID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadySettled
	}
	return nil
}

func (r *Repository) MarkCancelled(ctx context.Context, slipID int, at time.Time) error {
	query := `
		UPDATE betting_slips
		SET status = 'cancelled', settled_at = $1
		WHERE id = $2 AND status IN ('pending', 'active')
	`
	tag, err := r.db.Exec(ctx, query, at, slipID)
	if err != nil {
		zap.L().Error("failed to cancel slip", zap.Int("slip_id", slipID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSlipNotCancellable
	}
	return nil
}

func (r *Repository) MarkPaid(ctx context.Context, slipID int, amount float64) error {
	query := `
		UPDATE betting_slips
		SET status = 'paid', paid_out_amount = $1
		WHERE id = $2 AND status = 'won'
	`
	tag, err := r.db.Exec(ctx, query, amount, slipID)
	if err != nil {
		zap.L().Error("failed to mark slip paid", zap.Int("slip_id", slipID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSlipNotWon
	}
	return nil
}

// ListDrawsWithOpenSlips returns the completed draws (up to upTo) that still have unsettled slips.
func (r *Repository) ListDrawsWithOpenSlips(ctx context.Context, upTo int) ([]int, error) {
	query := `
		SELECT DISTINCT draw_number
		FROM betting_slips
		WHERE status IN ('pending', 'active') AND draw_number <= $1
		ORDER BY draw_number
	`
	rows, err := r.db.Query(ctx, query, upTo)
	if err != nil {
		zap.L().Error("failed to fetch draws with open slips", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var draws []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			zap.L().Error("failed to scan draw number", zap.Error(err))
			return nil, err
		}
		draws = append(draws, n)
	}
	return draws, rows.Err()
}
