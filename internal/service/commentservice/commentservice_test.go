package commentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rojahomes/rentmarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPropertyRepo) {
	ctrl := gomock.NewController(t)
	commentRepo := NewMockRepo(ctrl)
	propertyRepo := NewMockPropertyRepo(ctrl)
	service := New(commentRepo, propertyRepo)
	defer ctrl.Finish()
	return service, commentRepo, propertyRepo
}

func intPtr(v int) *int { return &v }

func TestCreate(t *testing.T) {
	service, commentRepo, propertyRepo := NewMock(t)
	property := &domain.Property{ID: 10, OwnerID: 1}

	tests := []struct {
		name          string
		userID        int
		parentID      *int
		prepareMock   func()
		expectedError error
		expectOwner   bool
		expectReply   bool
	}{
		{
			name:   "Top level comment",
			userID: 2,
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				commentRepo.EXPECT().CreateComment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
						return c, nil
					})
			},
		},
		{
			name:   "Owner comment is flagged",
			userID: 1,
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				commentRepo.EXPECT().CreateComment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
						return c, nil
					})
			},
			expectOwner: true,
		},
		{
			name:     "Reply to a top level comment",
			userID:   2,
			parentID: intPtr(5),
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				commentRepo.EXPECT().GetComment(gomock.Any(), 5).Return(&domain.Comment{
					ID: 5, PropertyID: 10,
				}, nil)
				commentRepo.EXPECT().CreateComment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
						return c, nil
					})
			},
			expectReply: true,
		},
		{
			name:     "Reply to a reply rejected",
			userID:   2,
			parentID: intPtr(6),
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				commentRepo.EXPECT().GetComment(gomock.Any(), 6).Return(&domain.Comment{
					ID: 6, PropertyID: 10, IsReply: true,
				}, nil)
			},
			expectedError: ErrReplyToReply,
		},
		{
			name:     "Parent on another property rejected",
			userID:   2,
			parentID: intPtr(7),
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				commentRepo.EXPECT().GetComment(gomock.Any(), 7).Return(&domain.Comment{
					ID: 7, PropertyID: 99,
				}, nil)
			},
			expectedError: ErrWrongProperty,
		},
		{
			name:     "Missing parent",
			userID:   2,
			parentID: intPtr(8),
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(property, nil)
				commentRepo.EXPECT().GetComment(gomock.Any(), 8).Return(nil, nil)
			},
			expectedError: ErrCommentNotFound,
		},
		{
			name:   "Missing property",
			userID: 2,
			prepareMock: func() {
				propertyRepo.EXPECT().GetByID(gomock.Any(), 10).Return(nil, nil)
			},
			expectedError: errors.New("property not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			created, err := service.Create(context.Background(), tt.userID, 10, tt.parentID, "some comment")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectOwner, created.IsOwner)
				assert.Equal(t, tt.expectReply, created.IsReply)
			}
		})
	}
}

func TestReact(t *testing.T) {
	service, commentRepo, _ := NewMock(t)
	tests := []struct {
		name          string
		reaction      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Like",
			reaction: domain.ReactionLike,
			prepareMock: func() {
				commentRepo.EXPECT().GetComment(gomock.Any(), 5).Return(&domain.Comment{ID: 5}, nil)
				commentRepo.EXPECT().React(gomock.Any(), 5, 2, domain.ReactionLike).Return(nil)
			},
		},
		{
			name:          "Unknown reaction",
			reaction:      "love",
			prepareMock:   func() {},
			expectedError: ErrBadReaction,
		},
		{
			name:     "Missing comment",
			reaction: domain.ReactionDislike,
			prepareMock: func() {
				commentRepo.EXPECT().GetComment(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrCommentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.React(context.Background(), 2, 5, tt.reaction)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
