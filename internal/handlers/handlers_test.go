package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/service"
	"github.com/GlebRadaev/roulette/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.BalanceHandler)
	assert.NotNil(t, h.DrawHandler)
	assert.NotNil(t, h.SlipHandler)
	assert.NotNil(t, h.AdminHandler)
}

func token(t *testing.T, role domain.Role) string {
	jwtService := &auth.JWTService{}
	tok, err := jwtService.GenerateJWT(1, role, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockDrawHandler := NewMockDrawHandler(ctrl)
	mockSlipHandler := NewMockSlipHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockDrawHandler.EXPECT().GetState(gomock.Any(), gomock.Any()).AnyTimes()
	mockSlipHandler.EXPECT().CreateSlip(gomock.Any(), gomock.Any()).AnyTimes()
	mockSlipHandler.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Advance(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		BalanceHandler: mockBalanceHandler,
		DrawHandler:    mockDrawHandler,
		SlipHandler:    mockSlipHandler,
		AdminHandler:   mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	cashier := token(t, domain.RoleCashier)
	admin := token(t, domain.RoleAdmin)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"GET", "/api/user/balance", "", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", "", http.StatusUnauthorized},
		{"GET", "/api/user/commission", "", http.StatusUnauthorized},
		{"GET", "/api/draws/state", "", http.StatusUnauthorized},
		{"GET", "/api/draws/state", cashier, http.StatusOK},
		{"POST", "/api/slips", "", http.StatusUnauthorized},
		{"POST", "/api/slips", cashier, http.StatusOK},
		{"GET", "/api/slips/402400715098", "", http.StatusUnauthorized},
		{"POST", "/api/slips/402400715098/cancel", cashier, http.StatusOK},
		{"POST", "/api/admin/draws/advance", "", http.StatusUnauthorized},
		{"POST", "/api/admin/draws/advance", cashier, http.StatusForbidden},
		{"POST", "/api/admin/draws/advance", admin, http.StatusOK},
		{"POST", "/api/admin/credit", cashier, http.StatusForbidden},
		{"GET", "/api/admin/reconcile/3", cashier, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
