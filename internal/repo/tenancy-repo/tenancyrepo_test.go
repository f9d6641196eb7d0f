package tenancyrepo

import (
	"context"
	"errors"
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

func TestRepository_MarkRentPaid(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	paidAt := time.Now()
	dueDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	nextDue := dueDate.AddDate(0, 0, 30)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Settles and opens next month's payment",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rent_payments`)).
					WithArgs(domain.PaymentStatusPaid, paidAt, "RENT-5-1", 5).
					WillReturnRows(pgxmock.NewRows([]string{"amount", "property_id", "tenant_id", "due_date"}).
						AddRow(350.0, 10, 2, dueDate))
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE landlord_balances`)).
					WithArgs(350.0, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO rent_payments (property_id, tenant_id, amount, due_date, status)`)).
					WithArgs(10, 2, 350.0, nextDue, domain.PaymentStatusPending).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Next payment insert failure rolls the settlement back",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rent_payments`)).
					WithArgs(domain.PaymentStatusPaid, paidAt, "RENT-5-1", 5).
					WillReturnRows(pgxmock.NewRows([]string{"amount", "property_id", "tenant_id", "due_date"}).
						AddRow(350.0, 10, 2, dueDate))
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE landlord_balances`)).
					WithArgs(350.0, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO rent_payments (property_id, tenant_id, amount, due_date, status)`)).
					WithArgs(10, 2, 350.0, nextDue, domain.PaymentStatusPending).
					WillReturnError(errors.New("insert failed"))
			},
			expectErr: true,
		},
		{
			name: "Unknown payment id",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rent_payments`)).
					WithArgs(domain.PaymentStatusPaid, paidAt, "RENT-5-1", 5).
					WillReturnError(errors.New("no rows in result set"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.MarkRentPaid(ctx, 5, "RENT-5-1", paidAt)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkOverdue(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	due := now.AddDate(0, 0, -3)

	rows := pgxmock.NewRows([]string{
		"id", "property_id", "tenant_id", "amount", "due_date",
		"payment_date", "status", "transaction_id", "created_at",
	}).AddRow(7, 10, 2, 350.0, due, (*time.Time)(nil), domain.PaymentStatusOverdue, "", due)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rent_payments`)).
		WithArgs(domain.PaymentStatusOverdue, domain.PaymentStatusPending, now).
		WillReturnRows(rows)

	overdue, err := repo.MarkOverdue(ctx, now)
	assert.NoError(t, err)
	assert.Len(t, overdue, 1)
	assert.Equal(t, domain.PaymentStatusOverdue, overdue[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
