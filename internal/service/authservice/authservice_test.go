package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "cashier1",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "cashier1").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "cashier1",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleCashier,
			},
		},
		{
			name:     "User already exists",
			login:    "cashier1",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "cashier1").Return(&domain.User{Login: "cashier1"}, nil)
			},
			expectedError: domain.ErrLoginTaken,
		},
		{
			name:     "Error finding user",
			login:    "cashier1",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "cashier1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "cashier1",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "cashier1").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating user",
			login:    "cashier1",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "cashier1").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestEnsureAdmin(t *testing.T) {
	tests := []struct {
		name          string
		login         string
		prepareMock   func(repo *MockRepo, hasher *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name:        "No admin configured",
			login:       "",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {},
		},
		{
			name:  "Admin already present",
			login: "operator",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(gomock.Any(), "operator").Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)
			},
		},
		{
			name:  "Admin created with the admin role",
			login: "operator",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(gomock.Any(), "operator").Return(nil, nil).Times(2)
				hasher.EXPECT().HashPassword("secretpass").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), &domain.User{Login: "operator", PasswordHash: "hashed", Role: domain.RoleAdmin}).
					Return(&domain.User{ID: 1}, nil)
			},
		},
		{
			name:  "Another instance seeded the admin first",
			login: "operator",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(gomock.Any(), "operator").Return(nil, nil).Times(2)
				hasher.EXPECT().HashPassword("secretpass").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrLoginTaken)
			},
		},
		{
			name:  "Lookup failure",
			login: "operator",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByLogin(gomock.Any(), "operator").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hasher, _ := NewMock(t)
			tt.prepareMock(repo, hasher)

			err := service.EnsureAdmin(context.Background(), tt.login, "secretpass")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "cashier1",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "cashier1").Return(&domain.User{
					ID:           1,
					Login:        "cashier1",
					PasswordHash: "hashedpassword",
					Role:         domain.RoleCashier,
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "cashier1",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleCashier,
			},
		},
		{
			name:     "Invalid credentials - user not found",
			login:    "cashier1",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "cashier1").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			login:    "cashier1",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "cashier1").Return(&domain.User{
					ID:           1,
					Login:        "cashier1",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		role          domain.Role
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:   "Successful token generation",
			userID: 1,
			role:   domain.RoleAdmin,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, domain.RoleAdmin, gomock.Any()).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
		},
		{
			name:   "Error generating token",
			userID: 1,
			role:   domain.RoleCashier,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, domain.RoleCashier, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.userID, tt.role)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
