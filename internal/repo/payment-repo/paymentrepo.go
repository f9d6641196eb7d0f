package paymentrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateSubscriptionPayment(ctx context.Context, p *domain.SubscriptionPayment) (*domain.SubscriptionPayment, error) {
	query := `
		INSERT INTO subscription_payments (tenant_id, reference, poll_url, amount, phone, email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		p.TenantID, p.Reference, p.PollURL, p.Amount, p.Phone, p.Email, p.Status,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save subscription payment", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindSubscriptionPayment(ctx context.Context, reference string) (*domain.SubscriptionPayment, error) {
	var p domain.SubscriptionPayment
	query := `
		SELECT id, tenant_id, reference, poll_url, amount, phone, email, status, created_at
		FROM subscription_payments
		WHERE reference = $1
	`
	err := r.db.QueryRow(ctx, query, reference).Scan(
		&p.ID, &p.TenantID, &p.Reference, &p.PollURL, &p.Amount, &p.Phone, &p.Email, &p.Status, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find subscription payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) UpdateSubscriptionPaymentStatus(ctx context.Context, reference, status string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE subscription_payments SET status = $1 WHERE reference = $2", status, reference)
	if err != nil {
		zap.L().Error("can't update subscription payment", zap.Error(err))
	}
	return err
}

func (r *Repository) CreateLeaseDocumentPayment(ctx context.Context, p *domain.LeaseDocumentPayment) (*domain.LeaseDocumentPayment, error) {
	query := `
		INSERT INTO lease_document_payments (landlord_id, property_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, p.LandlordID, p.PropertyID, p.Amount, p.Status).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save lease document payment", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) MarkLeaseDocumentPaid(ctx context.Context, id int, transactionID string, paidAt time.Time) error {
	query := `
		UPDATE lease_document_payments
		SET status = $1, transaction_id = $2, payment_date = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, domain.PaymentStatusPaid, transactionID, paidAt, id)
	if err != nil {
		zap.L().Error("can't mark lease document paid", zap.Error(err))
	}
	return err
}

func (r *Repository) ListLeaseDocumentPayments(ctx context.Context, landlordID int) ([]domain.LeaseDocumentPayment, error) {
	query := `
		SELECT id, landlord_id, property_id, amount, status, payment_date, transaction_id, created_at
		FROM lease_document_payments
		WHERE landlord_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, landlordID)
	if err != nil {
		zap.L().Error("can't list lease document payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.LeaseDocumentPayment
	for rows.Next() {
		var p domain.LeaseDocumentPayment
		err := rows.Scan(&p.ID, &p.LandlordID, &p.PropertyID, &p.Amount, &p.Status,
			&p.PaymentDate, &p.TransactionID, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
