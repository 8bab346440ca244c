package commissionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
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

func TestRepository_Add(t *testing.T) {
	repo, mock := NewMock(t)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	query := `INSERT INTO commission_summaries (user_id, summary_date, total_bets, total_commission) VALUES ($1, $2, $3::numeric, ROUND($3::numeric * $4::numeric, 2)) ON CONFLICT (user_id, summary_date) DO UPDATE SET total_bets = commission_summaries.total_bets + EXCLUDED.total_bets, total_commission = ROUND((commission_summaries.total_bets + EXCLUDED.total_bets) * $4::numeric, 2)`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Commission follows the day total",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, day, 0.1, 0.04).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, day, 0.1, 0.04).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Add(context.Background(), 1, day, 0.1, 0.04)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	query := `SELECT user_id, summary_date, total_bets, total_commission FROM commission_summaries WHERE user_id = $1 AND summary_date BETWEEN $2 AND $3 ORDER BY summary_date DESC`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.CommissionSummary
	}{
		{
			name: "Returns days newest first",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, from, to).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "summary_date", "total_bets", "total_commission"}).
						AddRow(1, to, 100.0, 4.0).
						AddRow(1, from, 25.0, 1.0))
			},
			result: []domain.CommissionSummary{
				{UserID: 1, Date: to, TotalBets: 100, TotalCommission: 4},
				{UserID: 1, Date: from, TotalBets: 25, TotalCommission: 1},
			},
		},
		{
			name: "Scan error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, from, to).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "summary_date", "total_bets", "total_commission"}).
						AddRow(1, "invalid_data", 100.0, 4.0))
			},
			expectErr: true,
		},
		{
			name: "Query error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, from, to).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), 1, from, to)

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
