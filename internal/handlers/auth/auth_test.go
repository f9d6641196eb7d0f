package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/service/authservice"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService, *MockVerificationService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	verification := NewMockVerificationService(ctrl)
	handler := New(service, verification)
	defer ctrl.Finish()
	return handler, service, verification
}

func TestRegisterHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"email":"new@example.com","password":"password123","first_name":"Nyasha","last_name":"Moyo","user_type":"tenant"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "new@example.com", "password123", "Nyasha", "Moyo", "tenant").Return(&domain.User{
					ID:       1,
					Email:    "new@example.com",
					UserType: "tenant",
				}, nil)
				service.EXPECT().GenerateToken(1, "tenant").Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Email already registered",
			body: `{"email":"taken@example.com","password":"password123","user_type":"tenant"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "taken@example.com", "password123", "", "", "tenant").Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Email already registered",
		},
		{
			name: "Unknown user type",
			body: `{"email":"new@example.com","password":"password123","user_type":"admin"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "new@example.com", "password123", "", "", "admin").Return(nil, authservice.ErrUnknownUserType)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Unknown user type",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"new@example.com","password":"password123","user_type":"tenant"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "new@example.com", "password123", "", "", "tenant").Return(&domain.User{
					ID:       1,
					Email:    "new@example.com",
					UserType: "tenant",
				}, nil)
				service.EXPECT().GenerateToken(1, "tenant").Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"user@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "user@example.com", "password123").Return(&domain.User{
					ID:       1,
					Email:    "user@example.com",
					UserType: "landlord",
				}, nil)
				service.EXPECT().GenerateToken(1, "landlord").Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"user@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "user@example.com", "wrong").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Contains(t, rr.Header().Get("Authorization"), "Bearer ")
			}
		})
	}
}

func TestVerifyPhoneHandler(t *testing.T) {
	handler, _, verification := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Code accepted",
			body: `{"code":"123456"}`,
			prepareMock: func() {
				verification.EXPECT().VerifyPhone(gomock.Any(), 1, "landlord", "123456").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Code mismatch",
			body: `{"code":"000000"}`,
			prepareMock: func() {
				verification.EXPECT().VerifyPhone(gomock.Any(), 1, "landlord", "000000").Return(errors.New("verification code does not match"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "verification code does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/phone/verify", bytes.NewReader([]byte(tt.body)))
			ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 1)
			ctx = context.WithValue(ctx, pkgauth.UserTypeKey, "landlord")
			rr := httptest.NewRecorder()

			handler.VerifyPhone(rr, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
