package auth

import (
	"testing"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name           string
		userID         int
		role           domain.Role
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Cashier token",
			userID:         123,
			role:           domain.RoleCashier,
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Admin token",
			userID:         1,
			role:           domain.RoleAdmin,
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired token is still signed",
			userID:         123,
			role:           domain.RoleCashier,
			expirationTime: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.role, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name         string
		tokenString  string
		setup        func() string
		expectError  bool
		expectedRole domain.Role
	}{
		{
			name: "Valid admin token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(7, domain.RoleAdmin, time.Now().Add(time.Hour))
				return token
			},
			expectedRole: domain.RoleAdmin,
		},
		{
			name:        "Invalid token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, domain.RoleCashier, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing user id",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString(secret())
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Foreign issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID:         5,
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: "other-service"},
				})
				signedToken, _ := token.SignedString(secret())
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Missing role defaults to cashier",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID:         5,
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: issuer},
				})
				signedToken, _ := token.SignedString(secret())
				return signedToken
			},
			expectedRole: domain.RoleCashier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, tt.expectedRole, claims.Role)
			}
		})
	}
}

func TestSetSecret(t *testing.T) {
	jwtService := &JWTService{}
	token, err := jwtService.GenerateJWT(9, domain.RoleCashier, time.Now().Add(time.Hour))
	require.NoError(t, err)

	original := string(secret())
	SetSecret("rotated-secret")
	t.Cleanup(func() { SetSecret(original) })

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)

	SetSecret("")
	assert.Equal(t, []byte("rotated-secret"), secret())
}
