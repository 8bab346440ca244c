package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/pg"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// LockAccount takes the row lock that serializes every balance change of the user.
// It must run inside a transaction.
func (r *Repository) LockAccount(ctx context.Context, userID int) (*domain.User, error) {
	query := `
		SELECT id, login, role, cash_balance
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	var user domain.User
	var role string
	err := r.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Login, &role, &user.CashBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		zap.L().Error("failed to lock account", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

func (r *Repository) InsertEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (user_id, signed_amount, balance_after, type, reference_id, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		entry.UserID, entry.SignedAmount, entry.BalanceAfter, string(entry.Type), entry.ReferenceID, entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadySettled
		}
		zap.L().Error("failed to insert ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, userID int, balance float64) error {
	query := `UPDATE users SET cash_balance = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, balance, userID)
	if err != nil {
		zap.L().Error("failed to update cash balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (float64, error) {
	var balance float64
	err := r.db.QueryRow(ctx, `SELECT cash_balance FROM users WHERE id = $1`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrAccountNotFound
		}
		zap.L().Error("failed to get cash balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) ListEntries(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, user_id, signed_amount, balance_after, type, reference_id, description, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var typ string
		err := rows.Scan(&e.ID, &e.UserID, &e.SignedAmount, &e.BalanceAfter, &typ, &e.ReferenceID, &e.Description, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		e.Type = domain.EntryType(typ)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Totals returns the sum of signed amounts, the number of entries and the
// balance recorded by the latest entry.
func (r *Repository) Totals(ctx context.Context, userID int) (sum float64, count int, last float64, err error) {
	query := `
		SELECT COALESCE(SUM(signed_amount), 0),
			COUNT(*),
			COALESCE((SELECT balance_after FROM ledger_entries WHERE user_id = $1 ORDER BY id DESC LIMIT 1), 0)
		FROM ledger_entries
		WHERE user_id = $1
	`
	err = r.db.QueryRow(ctx, query, userID).Scan(&sum, &count, &last)
	if err != nil {
		zap.L().Error("failed to sum ledger entries", zap.Error(err))
	}
	return
}
