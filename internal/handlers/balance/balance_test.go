package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/dto"
	"github.com/GlebRadaev/roulette/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var now = time.Date(2024, 5, 31, 15, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*BalanceHandler, *MockService, *MockCommission) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	commission := NewMockCommission(ctrl)
	handler := New(service, commission)
	handler.now = func() time.Time { return now }
	return handler, service, commission
}

func userContext() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetBalance(userContext(), 1).Return(100.50, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 100.50},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetBalance(userContext(), 1).Return(0.0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			r = r.WithContext(userContext())
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	createdAt := time.Date(2024, 5, 31, 12, 1, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  []dto.TransactionResponseDTO
	}{
		{
			name:  "Successful retrieval",
			query: "?limit=2",
			prepareMock: func() {
				service.EXPECT().GetTransactions(userContext(), 1, 2).Return([]domain.LedgerEntry{
					{ID: 2, SignedAmount: 350, BalanceAfter: 435, Type: domain.EntryWin, ReferenceID: "slip:9", Description: "Win on draw 42", CreatedAt: createdAt},
					{ID: 1, SignedAmount: -15, BalanceAfter: 85, Type: domain.EntryBet, ReferenceID: "slip:9", Description: "Bet on draw 42", CreatedAt: createdAt},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.TransactionResponseDTO{
				{ID: 2, Amount: 350, BalanceAfter: 435, Type: "win", Reference: "slip:9", Description: "Win on draw 42", CreatedAt: createdAt},
				{ID: 1, Amount: -15, BalanceAfter: 85, Type: "bet", Reference: "slip:9", Description: "Bet on draw 42", CreatedAt: createdAt},
			},
		},
		{
			name: "Default limit",
			prepareMock: func() {
				service.EXPECT().GetTransactions(userContext(), 1, 0).Return([]domain.LedgerEntry{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:          "Invalid limit",
			query:         "?limit=-3",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid limit",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetTransactions(userContext(), 1, 0).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch transactions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/user/transactions"+tt.query, nil)
			r = r.WithContext(userContext())
			w := httptest.NewRecorder()

			handler.GetTransactions(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.TransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, len(tt.expectedBody), len(body))
				for i := range tt.expectedBody {
					assert.Equal(t, tt.expectedBody[i].Amount, body[i].Amount)
					assert.Equal(t, tt.expectedBody[i].Type, body[i].Type)
					assert.Equal(t, tt.expectedBody[i].Reference, body[i].Reference)
					assert.True(t, tt.expectedBody[i].CreatedAt.Equal(body[i].CreatedAt))
				}
			}
		})
	}
}

func TestGetCommissionHandler(t *testing.T) {
	handler, _, commission := NewMock(t)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  []dto.CommissionResponseDTO
	}{
		{
			name:  "Explicit range",
			query: "?from=2024-05-01&to=2024-05-02",
			prepareMock: func() {
				commission.EXPECT().
					Summaries(userContext(), 1, day, day.AddDate(0, 0, 1)).
					Return([]domain.CommissionSummary{{UserID: 1, Date: day, TotalBets: 1250, TotalCommission: 50}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.CommissionResponseDTO{{Date: "2024-05-01", TotalBets: 1250, TotalCommission: 50}},
		},
		{
			name: "Default window",
			prepareMock: func() {
				commission.EXPECT().
					Summaries(userContext(), 1, now.Add(-commissionWindow), now).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.CommissionResponseDTO{},
		},
		{
			name:          "Invalid date",
			query:         "?from=01.05.2024",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid from date",
		},
		{
			name:  "Internal server error",
			query: "?from=2024-05-01&to=2024-05-02",
			prepareMock: func() {
				commission.EXPECT().Summaries(userContext(), 1, day, day.AddDate(0, 0, 1)).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/user/commission"+tt.query, nil)
			r = r.WithContext(userContext())
			w := httptest.NewRecorder()

			handler.GetCommission(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.CommissionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
