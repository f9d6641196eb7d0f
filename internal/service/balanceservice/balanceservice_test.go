package balanceservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rojahomes/rentmarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBalanceRepo, *MockWithdrawalRepo) {
	ctrl := gomock.NewController(t)
	balanceRepo := NewMockBalanceRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	service := New(balanceRepo, withdrawalRepo)
	defer ctrl.Finish()
	return service, balanceRepo, withdrawalRepo
}

func TestGetBalance(t *testing.T) {
	service, balanceRepo, withdrawalRepo := NewMock(t)
	tests := []struct {
		name              string
		landlordID        int
		prepareMock       func()
		expectedCurrent   float64
		expectedWithdrawn float64
		expectedError     error
	}{
		{
			name:       "Retrieve balance successfully",
			landlordID: 1,
			prepareMock: func() {
				balanceRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.LandlordBalance{
					LandlordID: 1,
					Amount:     100.0,
				}, nil)
				withdrawalRepo.EXPECT().SumCompleted(gomock.Any(), 1).Return(50.0, nil)
			},
			expectedCurrent:   100.0,
			expectedWithdrawn: 50.0,
		},
		{
			name:       "Balance missing",
			landlordID: 2,
			prepareMock: func() {
				balanceRepo.EXPECT().Get(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrBalanceNotFound,
		},
		{
			name:       "Error retrieving balance",
			landlordID: 1,
			prepareMock: func() {
				balanceRepo.EXPECT().Get(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			current, withdrawn, err := service.GetBalance(context.Background(), tt.landlordID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCurrent, current)
				assert.Equal(t, tt.expectedWithdrawn, withdrawn)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	service, balanceRepo, withdrawalRepo := NewMock(t)
	tests := []struct {
		name          string
		landlordID    int
		request       *domain.WithdrawalRequest
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Successful ecocash withdrawal",
			landlordID: 1,
			request: &domain.WithdrawalRequest{
				Amount:        50.0,
				PaymentMethod: MethodEcocash,
				AccountNumber: "0771234567",
			},
			prepareMock: func() {
				balanceRepo.EXPECT().Debit(gomock.Any(), 1, 50.0).Return(true, nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.WithdrawalRequest{ID: 10}, nil)
			},
		},
		{
			name:       "Successful bank withdrawal",
			landlordID: 1,
			request: &domain.WithdrawalRequest{
				Amount:        80.0,
				PaymentMethod: MethodBank,
				BankName:      "CBZ",
				AccountName:   "J Moyo",
				AccountNumber: "79927398713",
			},
			prepareMock: func() {
				balanceRepo.EXPECT().Debit(gomock.Any(), 1, 80.0).Return(true, nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.WithdrawalRequest{ID: 11}, nil)
			},
		},
		{
			name:       "Ecocash without phone",
			landlordID: 1,
			request: &domain.WithdrawalRequest{
				Amount:        50.0,
				PaymentMethod: MethodEcocash,
			},
			expectedError: ErrMissingPhone,
		},
		{
			name:       "Bank without details",
			landlordID: 1,
			request: &domain.WithdrawalRequest{
				Amount:        50.0,
				PaymentMethod: MethodBank,
				AccountNumber: "79927398713",
			},
			expectedError: ErrMissingBankDetails,
		},
		{
			name:       "Bank with invalid account number",
			landlordID: 1,
			request: &domain.WithdrawalRequest{
				Amount:        50.0,
				PaymentMethod: MethodBank,
				BankName:      "CBZ",
				AccountName:   "J Moyo",
				AccountNumber: "79927398710",
			},
			expectedError: ErrBadAccountNumber,
		},
		{
			name:       "Unknown payment method",
			landlordID: 1,
			request: &domain.WithdrawalRequest{
				Amount:        50.0,
				PaymentMethod: "paypal",
			},
			expectedError: ErrBadPaymentMethod,
		},
		{
			name:       "Insufficient balance",
			landlordID: 1,
			request: &domain.WithdrawalRequest{
				Amount:        500.0,
				PaymentMethod: MethodEcocash,
				AccountNumber: "0771234567",
			},
			prepareMock: func() {
				balanceRepo.EXPECT().Debit(gomock.Any(), 1, 500.0).Return(false, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:       "Refund when the request can't be filed",
			landlordID: 1,
			request: &domain.WithdrawalRequest{
				Amount:        50.0,
				PaymentMethod: MethodEcocash,
				AccountNumber: "0771234567",
			},
			prepareMock: func() {
				balanceRepo.EXPECT().Debit(gomock.Any(), 1, 50.0).Return(true, nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("failed to create withdrawal record"))
				balanceRepo.EXPECT().Credit(gomock.Any(), 1, 50.0).Return(nil)
			},
			expectedError: fmt.Errorf("failed to create withdrawal record"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			created, err := service.Withdraw(context.Background(), tt.landlordID, tt.request)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.Equal(t, domain.WithdrawalStatusPending, tt.request.Status)
				assert.NotEmpty(t, tt.request.Reference)
			}
		})
	}
}

func TestProcessWithdrawal(t *testing.T) {
	service, balanceRepo, withdrawalRepo := NewMock(t)
	tests := []struct {
		name          string
		withdrawalID  int
		approve       bool
		prepareMock   func()
		expectedError error
	}{
		{
			name:         "Approve pending request",
			withdrawalID: 1,
			approve:      true,
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.WithdrawalRequest{
					ID: 1, LandlordID: 7, Amount: 40.0, Status: domain.WithdrawalStatusPending,
				}, nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.WithdrawalStatusCompleted).Return(nil)
			},
		},
		{
			name:         "Reject refunds the reserved amount",
			withdrawalID: 2,
			approve:      false,
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.WithdrawalRequest{
					ID: 2, LandlordID: 7, Amount: 40.0, Status: domain.WithdrawalStatusPending,
				}, nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), 2, domain.WithdrawalStatusRejected).Return(nil)
				balanceRepo.EXPECT().Credit(gomock.Any(), 7, 40.0).Return(nil)
			},
		},
		{
			name:         "Already processed",
			withdrawalID: 3,
			approve:      true,
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.WithdrawalRequest{
					ID: 3, LandlordID: 7, Amount: 40.0, Status: domain.WithdrawalStatusCompleted,
				}, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
		{
			name:         "Request not found",
			withdrawalID: 4,
			approve:      true,
			prepareMock: func() {
				withdrawalRepo.EXPECT().GetByID(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: ErrWithdrawalNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.ProcessWithdrawal(context.Background(), tt.withdrawalID, tt.approve)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
