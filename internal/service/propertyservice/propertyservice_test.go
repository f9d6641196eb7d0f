package propertyservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rojahomes/rentmarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTenantRepo, *MockUserRepo, *MockRentPaymentRepo) {
	ctrl := gomock.NewController(t)
	propertyRepo := NewMockRepo(ctrl)
	tenantRepo := NewMockTenantRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	rentRepo := NewMockRentPaymentRepo(ctrl)
	service := New(propertyRepo, tenantRepo, userRepo, rentRepo, NewMockDescriber(ctrl), nil, nil)
	defer ctrl.Finish()
	return service, propertyRepo, tenantRepo, userRepo, rentRepo
}

func TestSetCurrentTenant(t *testing.T) {
	service, propertyRepo, _, userRepo, _ := NewMock(t)

	property := &domain.Property{ID: 5, OwnerID: 1, Title: "Borrowdale cottage", Price: 450}
	pool := []domain.PropertyAccess{
		{TenantID: 2, FirstName: "Tariro"},
		{TenantID: 3, FirstName: "Kuda"},
		{TenantID: 4, FirstName: "Rufaro"},
	}

	tests := []struct {
		name          string
		tenantID      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Winner, owner and losers notified",
			tenantID: 2,
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 5).Return(property, nil)
				propertyRepo.EXPECT().HasAccess(gomock.Any(), 5, 2).Return(true, nil)
				propertyRepo.EXPECT().ListAccess(gomock.Any(), 5).Return(pool, nil)
				propertyRepo.EXPECT().SetCurrentTenant(gomock.Any(), 5, 2).Return(nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, Email: "winner@example.com"}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Email: "owner@example.com"}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.User{ID: 3, Email: "kuda@example.com"}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 4).Return(&domain.User{ID: 4, Email: "rufaro@example.com"}, nil)
			},
		},
		{
			name:     "Tenant outside the pool",
			tenantID: 9,
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 5).Return(property, nil)
				propertyRepo.EXPECT().HasAccess(gomock.Any(), 5, 9).Return(false, nil)
			},
			expectedError: ErrTenantNotInPool,
		},
		{
			name:     "Someone else's property",
			tenantID: 2,
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 5).Return(&domain.Property{ID: 5, OwnerID: 99}, nil)
			},
			expectedError: ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.SetCurrentTenant(context.Background(), 1, 5, tt.tenantID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetCurrentTenantSchedulesRent(t *testing.T) {
	service, propertyRepo, _, userRepo, rentRepo := NewMock(t)

	property := &domain.Property{ID: 7, OwnerID: 1, Title: "Avondale flat", Price: 300, AcceptsInAppPayment: true}

	propertyRepo.EXPECT().GetByID(gomock.Any(), 7).Return(property, nil)
	propertyRepo.EXPECT().HasAccess(gomock.Any(), 7, 2).Return(true, nil)
	propertyRepo.EXPECT().ListAccess(gomock.Any(), 7).Return([]domain.PropertyAccess{{TenantID: 2}}, nil)
	propertyRepo.EXPECT().SetCurrentTenant(gomock.Any(), 7, 2).Return(nil)
	rentRepo.EXPECT().CreateRentPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.RentPayment) (*domain.RentPayment, error) {
			assert.Equal(t, 7, p.PropertyID)
			assert.Equal(t, 2, p.TenantID)
			assert.Equal(t, 300.0, p.Amount)
			assert.Equal(t, domain.PaymentStatusPending, p.Status)
			return p, nil
		})
	userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, Email: "winner@example.com"}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Email: "owner@example.com"}, nil)

	err := service.SetCurrentTenant(context.Background(), 1, 7, 2)
	assert.NoError(t, err)
}

func TestDisapprove(t *testing.T) {
	service, propertyRepo, _, userRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Listing taken down, owner mailed",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.Property{ID: 3, OwnerID: 1, Title: "Msasa warehouse"}, nil)
				propertyRepo.EXPECT().Disapprove(gomock.Any(), 3).Return(nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Email: "owner@example.com"}, nil)
			},
		},
		{
			name: "Unknown property",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrPropertyNotFound,
		},
		{
			name: "Repository failure",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.Property{ID: 3, OwnerID: 1}, nil)
				propertyRepo.EXPECT().Disapprove(gomock.Any(), 3).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Disapprove(context.Background(), 3)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddImage(t *testing.T) {
	service, propertyRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		wantMain    bool
	}{
		{
			name: "First image becomes the main one",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 5).Return(&domain.Property{ID: 5, OwnerID: 1}, nil)
				propertyRepo.EXPECT().ListImages(gomock.Any(), 5).Return(nil, nil)
				propertyRepo.EXPECT().AddImage(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, img *domain.PropertyImage) error {
						img.ID = 11
						return nil
					})
				propertyRepo.EXPECT().SetMainImage(gomock.Any(), 5, 11).Return(nil)
			},
			wantMain: true,
		},
		{
			name: "Later images keep their position",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 5).Return(&domain.Property{ID: 5, OwnerID: 1}, nil)
				propertyRepo.EXPECT().ListImages(gomock.Any(), 5).Return([]domain.PropertyImage{{ID: 11}}, nil)
				propertyRepo.EXPECT().AddImage(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, img *domain.PropertyImage) error {
						assert.Equal(t, 1, img.Position)
						img.ID = 12
						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			img, err := service.AddImage(context.Background(), 1, 5, "https://cdn.rojahomes.com/p/5/kitchen.jpg")
			assert.NoError(t, err)
			assert.NotNil(t, img)
		})
	}
}

func TestDeleteImage(t *testing.T) {
	service, propertyRepo, _, _, _ := NewMock(t)

	propertyRepo.EXPECT().GetByID(gomock.Any(), 5).Return(&domain.Property{ID: 5, OwnerID: 1}, nil)
	propertyRepo.EXPECT().DeleteImage(gomock.Any(), 5, 11).Return(nil)

	err := service.DeleteImage(context.Background(), 1, 5, 11)
	assert.NoError(t, err)
}

func TestCurrentProperty(t *testing.T) {
	service, propertyRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Tenant occupies a listing",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByCurrentTenant(gomock.Any(), 2).Return(&domain.Property{ID: 5, CurrentTenantID: intPtr(2)}, nil)
			},
		},
		{
			name: "No current tenancy",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByCurrentTenant(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrPropertyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			property, err := service.CurrentProperty(context.Background(), 2)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, property)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, property)
			}
		})
	}
}

func TestListAccessible(t *testing.T) {
	service, propertyRepo, _, _, _ := NewMock(t)

	propertyRepo.EXPECT().ListAccessible(gomock.Any(), 2).Return([]domain.Property{{ID: 5}, {ID: 8}}, nil)

	properties, err := service.ListAccessible(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, properties, 2)
}

func intPtr(v int) *int { return &v }
