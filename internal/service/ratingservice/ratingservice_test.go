package ratingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rojahomes/rentmarket/internal/domain"
	ratingrepo "github.com/rojahomes/rentmarket/internal/repo/rating-repo"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockProfileRepo, *MockPropertyRepo, *MockSentiment) {
	ctrl := gomock.NewController(t)
	ratingRepo := NewMockRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	propertyRepo := NewMockPropertyRepo(ctrl)
	sentiment := NewMockSentiment(ctrl)
	service := New(ratingRepo, profileRepo, propertyRepo, sentiment)
	defer ctrl.Finish()
	return service, ratingRepo, profileRepo, propertyRepo, sentiment
}

func floatPtr(v float64) *float64 { return &v }

func fullProfile() *domain.LandlordProfile {
	now := time.Now()
	return &domain.LandlordProfile{
		UserID:                1,
		DateOfBirth:           &now,
		Phone:                 "0771234567",
		AlternatePhone:        "0712345678",
		EmergencyContactName:  "T Ncube",
		EmergencyContactPhone: "0779999999",
		AdditionalNotes:       "notes",
		IDNumber:              "63-123456A70",
		IDImage:               "id.jpg",
		ProfileImage:          "me.jpg",
		ProofOfResidence:      "bill.pdf",
		MaritalStatus:         "married",
		IsProfileComplete:     true,
		IsVerified:            true,
		IsPhoneVerified:       true,
	}
}

func TestProfileCompleteness(t *testing.T) {
	tests := []struct {
		name     string
		profile  *domain.LandlordProfile
		expected float64
	}{
		{
			name:     "Empty profile",
			profile:  &domain.LandlordProfile{},
			expected: 0,
		},
		{
			name:     "Full profile",
			profile:  fullProfile(),
			expected: 100,
		},
		{
			name: "Verified phone only",
			profile: &domain.LandlordProfile{
				IsPhoneVerified: true,
			},
			expected: 1.0 / 8.1 * 100,
		},
		{
			name: "Verified phone and phone number",
			profile: &domain.LandlordProfile{
				IsPhoneVerified: true,
				Phone:           "0771234567",
			},
			expected: 1.6 / 8.1 * 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ProfileCompleteness(tt.profile), 1e-9)
		})
	}
}

func TestRecomputeTenantRating(t *testing.T) {
	service, ratingRepo, profileRepo, _, _ := NewMock(t)
	tests := []struct {
		name          string
		tenantID      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Mean rounded to two decimals",
			tenantID: 1,
			prepareMock: func() {
				ratingRepo.EXPECT().AverageTenantRating(gomock.Any(), 1).Return(floatPtr(14.0/3.0), nil)
				profileRepo.EXPECT().UpdateTenantRating(gomock.Any(), 1, 4.67).Return(nil)
			},
		},
		{
			name:     "No ratings keeps zero",
			tenantID: 2,
			prepareMock: func() {
				ratingRepo.EXPECT().AverageTenantRating(gomock.Any(), 2).Return(nil, nil)
				profileRepo.EXPECT().UpdateTenantRating(gomock.Any(), 2, 0.0).Return(nil)
			},
		},
		{
			name:     "Average query fails",
			tenantID: 3,
			prepareMock: func() {
				ratingRepo.EXPECT().AverageTenantRating(gomock.Any(), 3).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.RecomputeTenantRating(context.Background(), tt.tenantID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRateTenant(t *testing.T) {
	service, ratingRepo, profileRepo, _, _ := NewMock(t)
	tests := []struct {
		name          string
		landlordID    int
		tenantID      int
		rating        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Successful rating refreshes the average",
			landlordID: 1,
			tenantID:   2,
			rating:     4,
			prepareMock: func() {
				ratingRepo.EXPECT().CreateTenantRating(gomock.Any(), gomock.Any()).Return(&domain.TenantRating{
					ID: 5, LandlordID: 1, TenantID: 2, Rating: 4,
				}, nil)
				ratingRepo.EXPECT().AverageTenantRating(gomock.Any(), 2).Return(floatPtr(4.0), nil)
				profileRepo.EXPECT().UpdateTenantRating(gomock.Any(), 2, 4.0).Return(nil)
			},
		},
		{
			name:          "Self rating rejected",
			landlordID:    1,
			tenantID:      1,
			rating:        5,
			prepareMock:   func() {},
			expectedError: ErrSelfRating,
		},
		{
			name:       "Duplicate rating surfaces the repo error",
			landlordID: 1,
			tenantID:   2,
			rating:     3,
			prepareMock: func() {
				ratingRepo.EXPECT().CreateTenantRating(gomock.Any(), gomock.Any()).Return(nil, ratingrepo.ErrDuplicateRating)
			},
			expectedError: ratingrepo.ErrDuplicateRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			created, err := service.RateTenant(context.Background(), tt.landlordID, tt.tenantID, tt.rating, "")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
			}
		})
	}
}

func TestRecomputeLandlordRating(t *testing.T) {
	service, ratingRepo, profileRepo, _, _ := NewMock(t)
	tests := []struct {
		name          string
		landlordID    int
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Full profile bonus caps at five",
			landlordID: 1,
			prepareMock: func() {
				profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 1).Return(fullProfile(), nil)
				ratingRepo.EXPECT().AverageLandlordReviewRating(gomock.Any(), 1).Return(floatPtr(4.5), nil)
				// 4.5 + 1.0 bonus rounds past the cap
				profileRepo.EXPECT().UpdateLandlordScores(gomock.Any(), 1, 5.0, 100.0).Return(nil)
			},
		},
		{
			name:       "No reviews leaves only the completeness bonus",
			landlordID: 2,
			prepareMock: func() {
				profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 2).Return(fullProfile(), nil)
				ratingRepo.EXPECT().AverageLandlordReviewRating(gomock.Any(), 2).Return(nil, nil)
				profileRepo.EXPECT().UpdateLandlordScores(gomock.Any(), 2, 1.0, 100.0).Return(nil)
			},
		},
		{
			name:       "Partial profile",
			landlordID: 3,
			prepareMock: func() {
				profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 3).Return(&domain.LandlordProfile{
					UserID:          3,
					IsPhoneVerified: true,
					Phone:           "0771234567",
				}, nil)
				ratingRepo.EXPECT().AverageLandlordReviewRating(gomock.Any(), 3).Return(floatPtr(4.0), nil)
				// completeness 1.6/8.1 = 19.8%, bonus 0.198
				profileRepo.EXPECT().UpdateLandlordScores(gomock.Any(), 3, 4.2, 19.8).Return(nil)
			},
		},
		{
			name:       "Missing profile",
			landlordID: 4,
			prepareMock: func() {
				profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: errors.New("landlord profile not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.RecomputeLandlordRating(context.Background(), tt.landlordID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecomputePropertyRating(t *testing.T) {
	service, ratingRepo, profileRepo, propertyRepo, _ := NewMock(t)
	property := &domain.Property{ID: 10, OwnerID: 1}

	tests := []struct {
		name        string
		prepareMock func()
	}{
		{
			name: "All three signals blended",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				ratingRepo.EXPECT().AverageReviewRating(gomock.Any(), 10).Return(floatPtr(4.0), nil)
				ratingRepo.EXPECT().AverageCommentSentiment(gomock.Any(), 10).Return(floatPtr(3.0), nil)
				profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 1).Return(&domain.LandlordProfile{CurrentRating: 5.0}, nil)
				// 4.0*0.5 + 3.0*0.3 + 5.0*0.2 = 3.9
				propertyRepo.EXPECT().UpdateOverallRating(gomock.Any(), 10, 3.9).Return(nil)
			},
		},
		{
			name: "Missing sentiment renormalizes the weights",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				ratingRepo.EXPECT().AverageReviewRating(gomock.Any(), 10).Return(floatPtr(4.0), nil)
				ratingRepo.EXPECT().AverageCommentSentiment(gomock.Any(), 10).Return(nil, nil)
				profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 1).Return(&domain.LandlordProfile{CurrentRating: 5.0}, nil)
				// (4.0*0.5 + 5.0*0.2) / 0.7 = 4.3
				propertyRepo.EXPECT().UpdateOverallRating(gomock.Any(), 10, 4.3).Return(nil)
			},
		},
		{
			name: "Unrated landlord dropped from the blend",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				ratingRepo.EXPECT().AverageReviewRating(gomock.Any(), 10).Return(floatPtr(4.0), nil)
				ratingRepo.EXPECT().AverageCommentSentiment(gomock.Any(), 10).Return(nil, nil)
				profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 1).Return(&domain.LandlordProfile{CurrentRating: 0}, nil)
				// reviews carry the whole weight
				propertyRepo.EXPECT().UpdateOverallRating(gomock.Any(), 10, 4.0).Return(nil)
			},
		},
		{
			name: "No signals at all",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				ratingRepo.EXPECT().AverageReviewRating(gomock.Any(), 10).Return(nil, nil)
				ratingRepo.EXPECT().AverageCommentSentiment(gomock.Any(), 10).Return(nil, nil)
				profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 1).Return(&domain.LandlordProfile{CurrentRating: 0}, nil)
				propertyRepo.EXPECT().UpdateOverallRating(gomock.Any(), 10, 0.0).Return(nil)
			},
		},
		{
			name: "Landlord score alone stays capped",
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				ratingRepo.EXPECT().AverageReviewRating(gomock.Any(), 10).Return(nil, nil)
				ratingRepo.EXPECT().AverageCommentSentiment(gomock.Any(), 10).Return(nil, nil)
				profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 1).Return(&domain.LandlordProfile{CurrentRating: 4.0}, nil)
				// 4.0 * 0.3 cap
				propertyRepo.EXPECT().UpdateOverallRating(gomock.Any(), 10, 1.2).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.RecomputePropertyRating(context.Background(), 10)
			assert.NoError(t, err)
		})
	}
}

func TestComputePropertyRating(t *testing.T) {
	service, ratingRepo, profileRepo, propertyRepo, _ := NewMock(t)

	propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(&domain.Property{ID: 10, OwnerID: 1}, nil)
	ratingRepo.EXPECT().AverageReviewRating(gomock.Any(), 10).Return(floatPtr(4.0), nil)
	ratingRepo.EXPECT().AverageCommentSentiment(gomock.Any(), 10).Return(floatPtr(3.0), nil)
	profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 1).Return(&domain.LandlordProfile{CurrentRating: 5.0}, nil)
	// a read never writes the stored rating back

	rating, err := service.ComputePropertyRating(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 3.9, rating)
}

func TestRecomputeAllPropertyRatings(t *testing.T) {
	service, ratingRepo, profileRepo, propertyRepo, _ := NewMock(t)

	t.Run("Counts only the successes", func(t *testing.T) {
		propertyRepo.EXPECT().ListIDs(gomock.Any()).Return([]int{10, 11}, nil)

		propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(&domain.Property{ID: 10, OwnerID: 1}, nil)
		ratingRepo.EXPECT().AverageReviewRating(gomock.Any(), 10).Return(floatPtr(4.0), nil)
		ratingRepo.EXPECT().AverageCommentSentiment(gomock.Any(), 10).Return(nil, nil)
		profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 1).Return(&domain.LandlordProfile{CurrentRating: 0}, nil)
		propertyRepo.EXPECT().UpdateOverallRating(gomock.Any(), 10, 4.0).Return(nil)

		propertyRepo.EXPECT().GetByID(gomock.Any(), 11).Return(nil, errors.New("db down"))

		updated, err := service.RecomputeAllPropertyRatings(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, updated)
	})

	t.Run("Listing failure aborts the batch", func(t *testing.T) {
		propertyRepo.EXPECT().ListIDs(gomock.Any()).Return(nil, errors.New("db down"))

		updated, err := service.RecomputeAllPropertyRatings(context.Background())
		assert.Error(t, err)
		assert.Zero(t, updated)
	})
}

func TestRecomputeAllLandlordRatings(t *testing.T) {
	service, _, profileRepo, _, _ := NewMock(t)

	profileRepo.EXPECT().ListLandlordUserIDs(gomock.Any()).Return(nil, errors.New("db down"))

	updated, err := service.RecomputeAllLandlordRatings(context.Background())
	assert.Error(t, err)
	assert.Zero(t, updated)
}

func TestScoreUnratedComments(t *testing.T) {
	service, ratingRepo, profileRepo, propertyRepo, sentiment := NewMock(t)

	ratingRepo.EXPECT().ListUnratedComments(gomock.Any(), 50).Return([]domain.Comment{
		{ID: 1, PropertyID: 10, Content: "lovely place"},
		{ID: 2, PropertyID: 10, Content: "never again"},
	}, nil)
	sentiment.EXPECT().RateSentiment(gomock.Any(), "lovely place").Return(5.0, nil)
	sentiment.EXPECT().RateSentiment(gomock.Any(), "never again").Return(0.0, errors.New("api unavailable"))
	ratingRepo.EXPECT().SetCommentAIRating(gomock.Any(), 1, 5.0).Return(nil)

	// the affected property gets refreshed once
	propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(&domain.Property{ID: 10, OwnerID: 1}, nil)
	ratingRepo.EXPECT().AverageReviewRating(gomock.Any(), 10).Return(nil, nil)
	ratingRepo.EXPECT().AverageCommentSentiment(gomock.Any(), 10).Return(floatPtr(5.0), nil)
	profileRepo.EXPECT().GetLandlordProfile(gomock.Any(), 1).Return(&domain.LandlordProfile{CurrentRating: 0}, nil)
	propertyRepo.EXPECT().UpdateOverallRating(gomock.Any(), 10, 5.0).Return(nil)

	count, err := service.ScoreUnratedComments(context.Background(), 50)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
