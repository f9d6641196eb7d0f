package propertyrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/pg"
)

type inlineTxManager struct{}

func (inlineTxManager) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	return fn(ctx)
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, inlineTxManager{})
	defer mockDB.Close()

	return repo, mockDB
}

var propertyRowColumns = []string{
	"id", "owner_id", "title", "description", "address", "price", "deposit",
	"bedrooms", "bathrooms", "area", "is_available", "is_approved",
	"accepts_in_app_payment", "preferred_lease_term", "accepts_pets",
	"pet_deposit", "accepts_smokers", "pool", "garden", "type_id",
	"location_id", "main_image_id", "current_tenant_id", "overall_rating",
	"created_at",
}

func propertyRow(id int, approved bool) []any {
	return []any{
		id, 1, "Borrowdale cottage", "Quiet garden flat", "12 Crowhill Rd",
		450.0, 450.0, 2, 1, 80, true, approved, false, 12, true, 50.0,
		false, false, true, nil, nil, nil, nil, 4.2, time.Now(),
	}
}

func TestRepository_ListApproved(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	boolPtr := func(v bool) *bool { return &v }

	t.Run("Filters compose into one query", func(t *testing.T) {
		filter := domain.PropertyFilter{
			LocationID: 1,
			TypeID:     2,
			MinPrice:   200,
			MaxPrice:   500,
			Bedrooms:   2,
			Bathrooms:  1,
			Pets:       boolPtr(true),
			Smokers:    boolPtr(false),
			Pool:       boolPtr(true),
			Garden:     boolPtr(true),
			Search:     "garden flat",
		}
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY overall_rating DESC, created_at DESC`)).
			WithArgs(1, 2, 200.0, 500.0, 2, 1, true, false, true, true, "%garden flat%").
			WillReturnRows(pgxmock.NewRows(propertyRowColumns).AddRow(propertyRow(5, true)...))

		properties, err := repo.ListApproved(ctx, filter)
		assert.NoError(t, err)
		assert.Len(t, properties, 1)
		assert.Equal(t, 5, properties[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("show_all lists everything newest first", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM properties WHERE TRUE ORDER BY id DESC`)).
			WillReturnRows(pgxmock.NewRows(propertyRowColumns).
				AddRow(propertyRow(9, false)...).
				AddRow(propertyRow(3, true)...))

		properties, err := repo.ListApproved(ctx, domain.PropertyFilter{ShowAll: true})
		assert.NoError(t, err)
		assert.Len(t, properties, 2)
		assert.False(t, properties[0].IsApproved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SetCurrentTenant(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE properties SET current_tenant_id = $1, is_available = FALSE WHERE id = $2`)).
		WithArgs(2, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO property_previous_tenants`)).
		WithArgs(5, 2).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	// the winner's own access row survives the pool sweep
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM property_access WHERE property_id = $1 AND tenant_id <> $2`)).
		WithArgs(5, 2).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	err := repo.SetCurrentTenant(ctx, 5, 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Disapprove(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE properties SET is_approved = FALSE WHERE id = $1`)).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Disapprove(ctx, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListAccessible(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id IN (SELECT property_id FROM property_access WHERE tenant_id = $1)`)).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(propertyRowColumns).AddRow(propertyRow(5, true)...))

	properties, err := repo.ListAccessible(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, properties, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCurrentTenant(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	t.Run("Occupied", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE current_tenant_id = $1`)).
			WithArgs(2).
			WillReturnRows(pgxmock.NewRows(propertyRowColumns).AddRow(propertyRow(5, true)...))

		p, err := repo.GetByCurrentTenant(ctx, 2)
		assert.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("No tenancy", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE current_tenant_id = $1`)).
			WithArgs(8).
			WillReturnRows(pgxmock.NewRows(propertyRowColumns))

		p, err := repo.GetByCurrentTenant(ctx, 8)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}
