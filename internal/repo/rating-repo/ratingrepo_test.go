package ratingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rojahomes/rentmarket/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateTenantRating(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Rating saved",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO tenant_ratings (landlord_id, tenant_id, rating, comment)`)).
					WithArgs(1, 2, 4, "good tenant").
					WillReturnRows(rows)
			},
		},
		{
			name: "Duplicate pair maps to the sentinel",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO tenant_ratings (landlord_id, tenant_id, rating, comment)`)).
					WithArgs(1, 2, 4, "good tenant").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: ErrDuplicateRating,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO tenant_ratings (landlord_id, tenant_id, rating, comment)`)).
					WithArgs(1, 2, 4, "good tenant").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			created, err := repo.CreateTenantRating(context.Background(), &domain.TenantRating{
				LandlordID: 1, TenantID: 2, Rating: 4, Comment: "good tenant",
			})

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectErr.Error(), err.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
				assert.Equal(t, now, created.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AverageTenantRating(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Average returned", func(t *testing.T) {
		avg := 4.5
		rows := pgxmock.NewRows([]string{"avg"}).AddRow(&avg)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT AVG(rating)::float8 FROM tenant_ratings WHERE tenant_id = $1`)).
			WithArgs(2).
			WillReturnRows(rows)

		result, err := repo.AverageTenantRating(context.Background(), 2)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 4.5, *result)
	})

	t.Run("No ratings yields nil", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"avg"}).AddRow((*float64)(nil))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT AVG(rating)::float8 FROM tenant_ratings WHERE tenant_id = $1`)).
			WithArgs(3).
			WillReturnRows(rows)

		result, err := repo.AverageTenantRating(context.Background(), 3)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_CountReactions(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"likes", "dislikes"}).AddRow(3, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FILTER (WHERE reaction = 'like')`)).
		WithArgs(5).
		WillReturnRows(rows)

	likes, dislikes, err := repo.CountReactions(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, 3, likes)
	assert.Equal(t, 1, dislikes)
}
