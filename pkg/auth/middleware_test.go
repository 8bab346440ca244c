package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	valid, err := jwtService.GenerateJWT(42, domain.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "No header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Broken token", header: "Bearer broken", expectedCode: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + valid, expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser int
			var gotRole domain.Role
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = r.Context().Value(UserIDKey).(int)
				gotRole = r.Context().Value(RoleKey).(domain.Role)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			AuthMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, 42, gotUser)
				assert.Equal(t, domain.RoleAdmin, gotRole)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		role         domain.Role
		expectedCode int
	}{
		{name: "Admin passes", role: domain.RoleAdmin, expectedCode: http.StatusOK},
		{name: "Cashier is forbidden", role: domain.RoleCashier, expectedCode: http.StatusForbidden},
		{name: "No identity is forbidden", role: "", expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/api/admin/credit", nil)
			if tt.role != "" {
				req = req.WithContext(WithIdentity(req.Context(), 1, tt.role))
			}
			rr := httptest.NewRecorder()
			RequireRole(domain.RoleAdmin)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
