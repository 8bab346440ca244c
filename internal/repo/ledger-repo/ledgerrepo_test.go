package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

const lockQuery = `SELECT id, login, role, cash_balance FROM users WHERE id = $1 FOR UPDATE`

func TestRepository_LockAccount(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr error
		result    *domain.User
	}{
		{
			name:   "Locks existing account",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "login", "role", "cash_balance"}).
						AddRow(1, "cashier1", "cashier", 250.5))
			},
			result: &domain.User{ID: 1, Login: "cashier1", Role: domain.RoleCashier, CashBalance: 250.5},
		},
		{
			name:   "Unknown account",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrAccountNotFound,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.LockAccount(context.Background(), tt.userID)

			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_InsertEntry(t *testing.T) {
	repo, mock := NewMock(t)
	query := `INSERT INTO ledger_entries (user_id, signed_amount, balance_after, type, reference_id, description) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	now := time.Now()

	tests := []struct {
		name      string
		entry     domain.LedgerEntry
		mockSetup func()
		expectErr error
	}{
		{
			name:  "Inserts win entry",
			entry: domain.LedgerEntry{UserID: 1, SignedAmount: 350, BalanceAfter: 440, Type: domain.EntryWin, ReferenceID: "slip:7", Description: "Win on draw 42"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 350.0, 440.0, "win", "slip:7", "Win on draw 42").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))
			},
		},
		{
			name:  "Second win for the same slip",
			entry: domain.LedgerEntry{UserID: 1, SignedAmount: 350, BalanceAfter: 790, Type: domain.EntryWin, ReferenceID: "slip:7", Description: "Win on draw 42"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 350.0, 790.0, "win", "slip:7", "Win on draw 42").
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			expectErr: domain.ErrAlreadySettled,
		},
		{
			name:  "Database error",
			entry: domain.LedgerEntry{UserID: 1, SignedAmount: -10, BalanceAfter: 0, Type: domain.EntryBet, ReferenceID: "slip:8"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, -10.0, 0.0, "bet", "slip:8", "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entry := tt.entry
			result, err := repo.InsertEntry(context.Background(), &entry)

			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := `UPDATE users SET cash_balance = $1 WHERE id = $2`

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(440.0, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdateBalance(context.Background(), 1, 440))

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(10.0, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.UpdateBalance(context.Background(), 2, 10), domain.ErrAccountNotFound)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(10.0, 3).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.UpdateBalance(context.Background(), 3, 10))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := `SELECT cash_balance FROM users WHERE id = $1`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"cash_balance"}).AddRow(90.0))
	balance, err := repo.GetBalance(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 90.0, balance)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(2).
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetBalance(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListEntries(t *testing.T) {
	repo, mock := NewMock(t)
	query := `SELECT id, user_id, signed_amount, balance_after, type, reference_id, description, created_at FROM ledger_entries WHERE user_id = $1 ORDER BY id DESC LIMIT $2`
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.LedgerEntry
	}{
		{
			name: "Returns entries newest first",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 50).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "signed_amount", "balance_after", "type", "reference_id", "description", "created_at"}).
						AddRow(2, 1, 350.0, 440.0, "win", "slip:7", "Win on draw 42", now).
						AddRow(1, 1, -10.0, 90.0, "bet", "slip:7", "Bet on draw 42", now))
			},
			result: []domain.LedgerEntry{
				{ID: 2, UserID: 1, SignedAmount: 350, BalanceAfter: 440, Type: domain.EntryWin, ReferenceID: "slip:7", Description: "Win on draw 42", CreatedAt: now},
				{ID: 1, UserID: 1, SignedAmount: -10, BalanceAfter: 90, Type: domain.EntryBet, ReferenceID: "slip:7", Description: "Bet on draw 42", CreatedAt: now},
			},
		},
		{
			name: "Scan error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 50).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "signed_amount", "balance_after", "type", "reference_id", "description", "created_at"}).
						AddRow(2, 1, "invalid", 440.0, "win", "slip:7", "", now))
			},
			expectErr: true,
		},
		{
			name: "Query error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 50).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListEntries(context.Background(), 1, 50)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Totals(t *testing.T) {
	repo, mock := NewMock(t)
	query := `SELECT COALESCE(SUM(signed_amount), 0), COUNT(*), COALESCE((SELECT balance_after FROM ledger_entries WHERE user_id = $1 ORDER BY id DESC LIMIT 1), 0) FROM ledger_entries WHERE user_id = $1`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"sum", "count", "last"}).AddRow(440.0, 3, 440.0))

	sum, count, last, err := repo.Totals(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 440.0, sum)
	assert.Equal(t, 3, count)
	assert.Equal(t, 440.0, last)
}
