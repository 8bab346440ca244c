package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "cashier found",
			login: "cashier1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "cash_balance", "created_at"}).
					AddRow(1, "cashier1", "hashed_password", "cashier", 100.0, now)
				mock.ExpectQuery(regexp.QuoteMeta(findByLoginQuery)).
					WithArgs("cashier1").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Login:        "cashier1",
				PasswordHash: "hashed_password",
				Role:         domain.RoleCashier,
				CashBalance:  100,
				CreatedAt:    now,
			},
		},
		{
			name:  "login is free",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByLoginQuery)).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:  "database error",
			login: "cashier1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByLoginQuery)).
					WithArgs("cashier1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	admin := func() *domain.User {
		return &domain.User{Login: "operator", PasswordHash: "hashed_password", Role: domain.RoleAdmin}
	}

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
		expectErr bool
		result    *domain.User
	}{
		{
			name: "admin created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs("operator", "hashed_password", "admin").
					WillReturnRows(pgxmock.NewRows([]string{"id", "cash_balance", "created_at"}).AddRow(1, 0.0, now))
			},
			result: &domain.User{
				ID:           1,
				Login:        "operator",
				PasswordHash: "hashed_password",
				Role:         domain.RoleAdmin,
				CreatedAt:    now,
			},
		},
		{
			name: "login taken concurrently",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs("operator", "hashed_password", "admin").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr:   domain.ErrLoginTaken,
			expectErr: true,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs("operator", "hashed_password", "admin").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), admin())
			if tt.expectErr {
				assert.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
