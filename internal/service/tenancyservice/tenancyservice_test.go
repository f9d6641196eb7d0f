package tenancyservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rojahomes/rentmarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPropertyRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	tenancyRepo := NewMockRepo(ctrl)
	propertyRepo := NewMockPropertyRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(tenancyRepo, propertyRepo, userRepo, nil)
	defer ctrl.Finish()
	return service, tenancyRepo, propertyRepo, userRepo
}

func TestApply(t *testing.T) {
	service, tenancyRepo, propertyRepo, userRepo := NewMock(t)
	property := &domain.Property{ID: 10, OwnerID: 1, Title: "Avondale Home"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Application recorded",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				tenancyRepo.EXPECT().FindApplication(gomock.Any(), 2, 10).Return(nil, nil)
				tenancyRepo.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(&domain.Application{
					ID: 1, ApplicantID: 2, PropertyID: 10, Status: ApplicationPending,
				}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Email: "owner@example.com"}, nil)
			},
		},
		{
			name: "Duplicate application rejected",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				tenancyRepo.EXPECT().FindApplication(gomock.Any(), 2, 10).Return(&domain.Application{ID: 1}, nil)
			},
			expectedError: ErrAlreadyApplied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			application, err := service.Apply(context.Background(), 2, 10)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, application)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, application)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	service, tenancyRepo, propertyRepo, userRepo := NewMock(t)
	application := &domain.Application{ID: 1, ApplicantID: 2, PropertyID: 10}
	property := &domain.Property{ID: 10, OwnerID: 1, Title: "Avondale Home"}

	tests := []struct {
		name          string
		landlordID    int
		status        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Approved by the owner",
			landlordID: 1,
			status:     ApplicationApproved,
			prepareMock: func() {
				tenancyRepo.EXPECT().GetApplication(gomock.Any(), 1).Return(application, nil)
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				tenancyRepo.EXPECT().UpdateApplicationStatus(gomock.Any(), 1, ApplicationApproved).Return(nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, Email: "tenant@example.com"}, nil)
			},
		},
		{
			name:          "Unknown status",
			landlordID:    1,
			status:        "MAYBE",
			prepareMock:   func() {},
			expectedError: ErrBadStatus,
		},
		{
			name:       "Not the owner",
			landlordID: 99,
			status:     ApplicationRejected,
			prepareMock: func() {
				tenancyRepo.EXPECT().GetApplication(gomock.Any(), 1).Return(application, nil)
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
			},
			expectedError: ErrNotOwner,
		},
		{
			name:       "Missing application",
			landlordID: 1,
			status:     ApplicationApproved,
			prepareMock: func() {
				tenancyRepo.EXPECT().GetApplication(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrApplicationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Decide(context.Background(), tt.landlordID, 1, tt.status)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignLease(t *testing.T) {
	service, tenancyRepo, _, _ := NewMock(t)
	lease := &domain.LeaseAgreement{ID: 3, TenantID: 2, PropertyID: 10}

	tests := []struct {
		name          string
		tenantID      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Tenant signs own lease",
			tenantID: 2,
			prepareMock: func() {
				tenancyRepo.EXPECT().GetLease(gomock.Any(), 3).Return(lease, nil)
				tenancyRepo.EXPECT().SignLease(gomock.Any(), 3).Return(nil)
			},
		},
		{
			name:     "Someone else's lease",
			tenantID: 99,
			prepareMock: func() {
				tenancyRepo.EXPECT().GetLease(gomock.Any(), 3).Return(lease, nil)
			},
			expectedError: ErrNotLeaseTenant,
		},
		{
			name:     "Missing lease",
			tenantID: 2,
			prepareMock: func() {
				tenancyRepo.EXPECT().GetLease(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrLeaseNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.SignLease(context.Background(), tt.tenantID, 3)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSweepOverduePayments(t *testing.T) {
	service, tenancyRepo, _, userRepo := NewMock(t)
	due := time.Now().AddDate(0, 0, -3)

	tenancyRepo.EXPECT().MarkOverdue(gomock.Any(), gomock.Any()).Return([]domain.RentPayment{
		{ID: 1, TenantID: 2, Amount: 350.0, DueDate: due},
		{ID: 2, TenantID: 3, Amount: 400.0, DueDate: due},
	}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, Email: "a@example.com"}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.User{ID: 3, Email: "b@example.com"}, nil)

	count, err := service.SweepOverduePayments(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSweepOverduePaymentsEmpty(t *testing.T) {
	service, tenancyRepo, _, _ := NewMock(t)

	tenancyRepo.EXPECT().MarkOverdue(gomock.Any(), gomock.Any()).Return(nil, nil)

	count, err := service.SweepOverduePayments(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}
