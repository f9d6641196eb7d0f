package paymentservice

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/paynow"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockRentRepo, *MockProfileRepo, *MockUserRepo, *MockGateway) {
	ctrl := gomock.NewController(t)
	paymentRepo := NewMockRepo(ctrl)
	rentRepo := NewMockRentRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	gateway := NewMockGateway(ctrl)
	service := New(paymentRepo, rentRepo, profileRepo, userRepo, gateway)
	defer ctrl.Finish()
	return service, paymentRepo, rentRepo, profileRepo, userRepo, gateway
}

func TestChoosePlan(t *testing.T) {
	service, paymentRepo, _, profileRepo, userRepo, gateway := NewMock(t)
	tier := &domain.PricingTier{ID: 2, Name: "Premium", Cost: 10.0}
	user := &domain.User{ID: 1, Email: "tenant@example.com"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Gateway accepts the transaction",
			prepareMock: func() {
				profileRepo.EXPECT().GetPricingTier(gomock.Any(), 2).Return(tier, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(user, nil)
				gateway.EXPECT().SendMobile(gomock.Any(), gomock.Any(), "tenant@example.com", "Premium subscription", 10.0, "0771234567", "ecocash").
					Return(&paynow.InitResponse{Status: "Ok", PollURL: "https://paynow/poll/1"}, nil)
				paymentRepo.EXPECT().CreateSubscriptionPayment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.SubscriptionPayment) (*domain.SubscriptionPayment, error) {
						return p, nil
					})
				// the background poller may or may not run before the test ends
				gateway.EXPECT().WaitForPaid(gomock.Any(), "https://paynow/poll/1", pollInterval, pollTimeout).
					Return(nil, paynow.ErrPollTimeout).AnyTimes()
			},
		},
		{
			name: "Unknown tier",
			prepareMock: func() {
				profileRepo.EXPECT().GetPricingTier(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrTierNotFound,
		},
		{
			name: "Gateway rejects the transaction",
			prepareMock: func() {
				profileRepo.EXPECT().GetPricingTier(gomock.Any(), 2).Return(tier, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(user, nil)
				gateway.EXPECT().SendMobile(gomock.Any(), gomock.Any(), "tenant@example.com", "Premium subscription", 10.0, "0771234567", "ecocash").
					Return(&paynow.InitResponse{Status: "Error"}, paynow.ErrTransactionFailed)
			},
			expectedError: paynow.ErrTransactionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			payment, err := service.ChoosePlan(context.Background(), 1, 2, "0771234567")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, paynow.StatusSent, payment.Status)
				assert.Equal(t, "https://paynow/poll/1", payment.PollURL)
				assert.Contains(t, payment.Reference, "SUB-1-")
			}
		})
	}
}

func TestPayRent(t *testing.T) {
	service, _, rentRepo, _, userRepo, gateway := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Payment charged",
			prepareMock: func() {
				rentRepo.EXPECT().GetRentPayment(gomock.Any(), 7).Return(&domain.RentPayment{
					ID: 7, TenantID: 1, Amount: 350.0, Status: domain.PaymentStatusPending,
				}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Email: "tenant@example.com"}, nil)
				gateway.EXPECT().SendMobile(gomock.Any(), gomock.Any(), "tenant@example.com", "Rent Payment", 350.0, "0771234567", "ecocash").
					Return(&paynow.InitResponse{Status: "Ok", PollURL: "https://paynow/poll/7"}, nil)
				gateway.EXPECT().WaitForPaid(gomock.Any(), "https://paynow/poll/7", pollInterval, pollTimeout).
					Return(nil, paynow.ErrPollTimeout).AnyTimes()
			},
		},
		{
			name: "Unknown payment",
			prepareMock: func() {
				rentRepo.EXPECT().GetRentPayment(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrPaymentNotFound,
		},
		{
			name: "Someone else's payment",
			prepareMock: func() {
				rentRepo.EXPECT().GetRentPayment(gomock.Any(), 7).Return(&domain.RentPayment{
					ID: 7, TenantID: 99, Amount: 350.0, Status: domain.PaymentStatusPending,
				}, nil)
			},
			expectedError: ErrNotYourPayment,
		},
		{
			name: "Already settled",
			prepareMock: func() {
				rentRepo.EXPECT().GetRentPayment(gomock.Any(), 7).Return(&domain.RentPayment{
					ID: 7, TenantID: 1, Amount: 350.0, Status: domain.PaymentStatusPaid,
				}, nil)
			},
			expectedError: ErrAlreadyPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			ref, err := service.PayRent(context.Background(), 1, 7, "0771234567")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, ref)
			} else {
				assert.NoError(t, err)
				assert.Contains(t, ref, "RENT-7-")
			}
		})
	}
}

func TestHandleWebhook(t *testing.T) {
	service, paymentRepo, _, _, _, gateway := NewMock(t)

	values := url.Values{}
	values.Set("reference", "SUB-1-1700000000")
	values.Set("status", paynow.StatusPaid)
	values.Set("hash", "whatever")

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Status recorded",
			prepareMock: func() {
				gateway.EXPECT().VerifyWebhook(values).Return(nil)
				paymentRepo.EXPECT().FindSubscriptionPayment(gomock.Any(), "SUB-1-1700000000").Return(&domain.SubscriptionPayment{
					Reference: "SUB-1-1700000000", TenantID: 1,
				}, nil)
				paymentRepo.EXPECT().UpdateSubscriptionPaymentStatus(gomock.Any(), "SUB-1-1700000000", paynow.StatusPaid).Return(nil)
			},
		},
		{
			name: "Bad signature",
			prepareMock: func() {
				gateway.EXPECT().VerifyWebhook(values).Return(paynow.ErrInvalidHash)
			},
			expectedError: paynow.ErrInvalidHash,
		},
		{
			name: "Unknown reference",
			prepareMock: func() {
				gateway.EXPECT().VerifyWebhook(values).Return(nil)
				paymentRepo.EXPECT().FindSubscriptionPayment(gomock.Any(), "SUB-1-1700000000").Return(nil, nil)
			},
			expectedError: ErrUnknownReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.HandleWebhook(context.Background(), values)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubscriptionStatus(t *testing.T) {
	service, paymentRepo, _, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		tenantID      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Own payment returned",
			tenantID: 1,
			prepareMock: func() {
				paymentRepo.EXPECT().FindSubscriptionPayment(gomock.Any(), "SUB-1-1").Return(&domain.SubscriptionPayment{
					Reference: "SUB-1-1", TenantID: 1, Status: paynow.StatusPaid,
				}, nil)
			},
		},
		{
			name:     "Someone else's payment hidden",
			tenantID: 2,
			prepareMock: func() {
				paymentRepo.EXPECT().FindSubscriptionPayment(gomock.Any(), "SUB-1-1").Return(&domain.SubscriptionPayment{
					Reference: "SUB-1-1", TenantID: 1,
				}, nil)
			},
			expectedError: ErrNotYourPayment,
		},
		{
			name:     "Unknown reference",
			tenantID: 1,
			prepareMock: func() {
				paymentRepo.EXPECT().FindSubscriptionPayment(gomock.Any(), "SUB-1-1").Return(nil, nil)
			},
			expectedError: ErrPaymentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			payment, err := service.SubscriptionStatus(context.Background(), tt.tenantID, "SUB-1-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, payment)
			}
		})
	}
}

func TestHandleWebhookErrorPassthrough(t *testing.T) {
	service, paymentRepo, _, _, _, gateway := NewMock(t)

	values := url.Values{}
	values.Set("reference", "SUB-9-1")
	values.Set("status", paynow.StatusCancelled)

	gateway.EXPECT().VerifyWebhook(values).Return(nil)
	paymentRepo.EXPECT().FindSubscriptionPayment(gomock.Any(), "SUB-9-1").Return(nil, errors.New("db error"))

	err := service.HandleWebhook(context.Background(), values)
	assert.EqualError(t, err, "db error")
}
