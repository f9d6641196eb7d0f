package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockProfileRepo, *MockBalanceRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	balanceRepo := NewMockBalanceRepo(ctrl)
	service := New(userRepo, profileRepo, balanceRepo, &auth.HashService{}, &auth.JWTService{})
	defer ctrl.Finish()
	return service, userRepo, profileRepo, balanceRepo
}

func TestRegister(t *testing.T) {
	service, userRepo, profileRepo, balanceRepo := NewMock(t)
	tests := []struct {
		name          string
		email         string
		userType      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Landlord gets a profile and a balance",
			email:    "landlord@example.com",
			userType: domain.UserTypeLandlord,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "landlord@example.com").Return(nil, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.User{
					ID: 1, Email: "landlord@example.com", UserType: domain.UserTypeLandlord,
				}, nil)
				profileRepo.EXPECT().CreateLandlordProfile(gomock.Any(), 1).Return(nil)
				balanceRepo.EXPECT().Create(gomock.Any(), 1).Return(&domain.LandlordBalance{LandlordID: 1}, nil)
			},
		},
		{
			name:     "Tenant gets a tenant profile",
			email:    "tenant@example.com",
			userType: domain.UserTypeTenant,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "tenant@example.com").Return(nil, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.User{
					ID: 2, Email: "tenant@example.com", UserType: domain.UserTypeTenant,
				}, nil)
				profileRepo.EXPECT().CreateTenantProfile(gomock.Any(), 2).Return(nil)
			},
		},
		{
			name:          "Unknown user type",
			email:         "nobody@example.com",
			userType:      "admin",
			prepareMock:   func() {},
			expectedError: ErrUnknownUserType,
		},
		{
			name:     "Email already taken",
			email:    "taken@example.com",
			userType: domain.UserTypeTenant,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").Return(&domain.User{ID: 3}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:     "Lookup failure",
			email:    "broken@example.com",
			userType: domain.UserTypeTenant,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "broken@example.com").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.email, "password123", "First", "Last", tt.userType)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword("correct-horse")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Valid credentials",
			password: "correct-horse",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(&domain.User{
					ID: 1, Email: "user@example.com", PasswordHash: hash,
				}, nil)
			},
		},
		{
			name:     "Wrong password",
			password: "battery-staple",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(&domain.User{
					ID: 1, Email: "user@example.com", PasswordHash: hash,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Unknown user",
			password: "correct-horse",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "user@example.com", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestDeleteUser(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Account removed",
			prepareMock: func() {
				userRepo.EXPECT().Delete(gomock.Any(), 7).Return(nil)
			},
		},
		{
			name: "Repository failure",
			prepareMock: func() {
				userRepo.EXPECT().Delete(gomock.Any(), 7).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.DeleteUser(context.Background(), 7)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _ := NewMock(t)

	token, err := service.GenerateToken(1, domain.UserTypeLandlord)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := (&auth.JWTService{}).ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.UserTypeLandlord, claims.UserType)
}
