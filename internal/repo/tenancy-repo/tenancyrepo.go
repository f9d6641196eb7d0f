package tenancyrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) CreateApplication(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	query := `
		INSERT INTO applications (applicant_id, property_id, status)
		VALUES ($1, $2, 'PENDING')
		RETURNING id, status, application_date
	`
	err := r.db.QueryRow(ctx, query, a.ApplicantID, a.PropertyID).Scan(&a.ID, &a.Status, &a.ApplicationDate)
	if err != nil {
		zap.L().Error("can't save application", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) GetApplication(ctx context.Context, id int) (*domain.Application, error) {
	var a domain.Application
	query := `
		SELECT id, applicant_id, property_id, status, application_date
		FROM applications
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.ApplicantID, &a.PropertyID, &a.Status, &a.ApplicationDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get application", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindApplication(ctx context.Context, applicantID, propertyID int) (*domain.Application, error) {
	var a domain.Application
	query := `
		SELECT id, applicant_id, property_id, status, application_date
		FROM applications
		WHERE applicant_id = $1 AND property_id = $2
	`
	err := r.db.QueryRow(ctx, query, applicantID, propertyID).Scan(
		&a.ID, &a.ApplicantID, &a.PropertyID, &a.Status, &a.ApplicationDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) collectApplications(rows pgx.Rows) ([]domain.Application, error) {
	defer rows.Close()
	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.ApplicantID, &a.PropertyID, &a.Status, &a.ApplicationDate); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *Repository) ListApplicationsByProperty(ctx context.Context, propertyID int) ([]domain.Application, error) {
	query := `
		SELECT id, applicant_id, property_id, status, application_date
		FROM applications
		WHERE property_id = $1
		ORDER BY application_date
	`
	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		zap.L().Error("can't list property applications", zap.Error(err))
		return nil, err
	}
	return r.collectApplications(rows)
}

func (r *Repository) ListApplicationsByApplicant(ctx context.Context, applicantID int) ([]domain.Application, error) {
	query := `
		SELECT id, applicant_id, property_id, status, application_date
		FROM applications
		WHERE applicant_id = $1
		ORDER BY application_date DESC
	`
	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		zap.L().Error("can't list applicant applications", zap.Error(err))
		return nil, err
	}
	return r.collectApplications(rows)
}

func (r *Repository) UpdateApplicationStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.Exec(ctx, "UPDATE applications SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		zap.L().Error("can't update application status", zap.Error(err))
	}
	return err
}

func (r *Repository) CreateLease(ctx context.Context, l *domain.LeaseAgreement) (*domain.LeaseAgreement, error) {
	query := `
		INSERT INTO lease_agreements (tenant_id, property_id, start_date, end_date, rent_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, l.TenantID, l.PropertyID, l.StartDate, l.EndDate, l.RentAmount).Scan(&l.ID)
	if err != nil {
		zap.L().Error("can't save lease", zap.Error(err))
		return nil, err
	}
	return l, nil
}

func (r *Repository) GetLease(ctx context.Context, id int) (*domain.LeaseAgreement, error) {
	var l domain.LeaseAgreement
	query := `
		SELECT id, tenant_id, property_id, start_date, end_date, rent_amount, is_signed
		FROM lease_agreements
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.TenantID, &l.PropertyID, &l.StartDate, &l.EndDate, &l.RentAmount, &l.IsSigned)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get lease", zap.Error(err))
		return nil, err
	}
	return &l, nil
}

func (r *Repository) ListLeasesByTenant(ctx context.Context, tenantID int) ([]domain.LeaseAgreement, error) {
	query := `
		SELECT id, tenant_id, property_id, start_date, end_date, rent_amount, is_signed
		FROM lease_agreements
		WHERE tenant_id = $1
		ORDER BY start_date DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		zap.L().Error("can't list tenant leases", zap.Error(err))
		return nil, err
	}
	return r.collectLeases(rows)
}

func (r *Repository) ListLeasesByProperty(ctx context.Context, propertyID int) ([]domain.LeaseAgreement, error) {
	query := `
		SELECT id, tenant_id, property_id, start_date, end_date, rent_amount, is_signed
		FROM lease_agreements
		WHERE property_id = $1
		ORDER BY start_date DESC
	`
	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		zap.L().Error("can't list property leases", zap.Error(err))
		return nil, err
	}
	return r.collectLeases(rows)
}

func (r *Repository) collectLeases(rows pgx.Rows) ([]domain.LeaseAgreement, error) {
	defer rows.Close()
	var leases []domain.LeaseAgreement
	for rows.Next() {
		var l domain.LeaseAgreement
		if err := rows.Scan(&l.ID, &l.TenantID, &l.PropertyID, &l.StartDate, &l.EndDate, &l.RentAmount, &l.IsSigned); err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}
	return leases, rows.Err()
}

func (r *Repository) SignLease(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "UPDATE lease_agreements SET is_signed = TRUE WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't sign lease", zap.Error(err))
	}
	return err
}

func (r *Repository) CreateRentPayment(ctx context.Context, p *domain.RentPayment) (*domain.RentPayment, error) {
	query := `
		INSERT INTO rent_payments (property_id, tenant_id, amount, due_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, p.PropertyID, p.TenantID, p.Amount, p.DueDate, p.Status).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save rent payment", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) GetRentPayment(ctx context.Context, id int) (*domain.RentPayment, error) {
	var p domain.RentPayment
	query := `
		SELECT id, property_id, tenant_id, amount, due_date, payment_date, status, transaction_id, created_at
		FROM rent_payments
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.PropertyID, &p.TenantID, &p.Amount, &p.DueDate,
		&p.PaymentDate, &p.Status, &p.TransactionID, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get rent payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) collectRentPayments(rows pgx.Rows) ([]domain.RentPayment, error) {
	defer rows.Close()
	var payments []domain.RentPayment
	for rows.Next() {
		var p domain.RentPayment
		err := rows.Scan(&p.ID, &p.PropertyID, &p.TenantID, &p.Amount, &p.DueDate,
			&p.PaymentDate, &p.Status, &p.TransactionID, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *Repository) ListRentPaymentsByTenant(ctx context.Context, tenantID int) ([]domain.RentPayment, error) {
	query := `
		SELECT id, property_id, tenant_id, amount, due_date, payment_date, status, transaction_id, created_at
		FROM rent_payments
		WHERE tenant_id = $1
		ORDER BY due_date DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		zap.L().Error("can't list tenant rent payments", zap.Error(err))
		return nil, err
	}
	return r.collectRentPayments(rows)
}

func (r *Repository) ListRentPaymentsByProperty(ctx context.Context, propertyID int) ([]domain.RentPayment, error) {
	query := `
		SELECT id, property_id, tenant_id, amount, due_date, payment_date, status, transaction_id, created_at
		FROM rent_payments
		WHERE property_id = $1
		ORDER BY due_date DESC
	`
	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		zap.L().Error("can't list property rent payments", zap.Error(err))
		return nil, err
	}
	return r.collectRentPayments(rows)
}

// MarkRentPaid records the transaction, credits the landlord's balance
// and opens next month's payment in one transaction.
func (r *Repository) MarkRentPaid(ctx context.Context, paymentID int, transactionID string, paidAt time.Time) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var (
			amount     float64
			propertyID int
			tenantID   int
			dueDate    time.Time
		)
		update := `
			UPDATE rent_payments
			SET status = $1, payment_date = $2, transaction_id = $3
			WHERE id = $4
			RETURNING amount, property_id, tenant_id, due_date
		`
		err := r.db.QueryRow(ctx, update, domain.PaymentStatusPaid, paidAt, transactionID, paymentID).
			Scan(&amount, &propertyID, &tenantID, &dueDate)
		if err != nil {
			zap.L().Error("can't mark rent paid", zap.Error(err))
			return err
		}

		credit := `
			UPDATE landlord_balances
			SET amount = amount + $1, last_updated = NOW()
			WHERE landlord_id = (SELECT owner_id FROM properties WHERE id = $2)
		`
		if _, err := r.db.Exec(ctx, credit, amount, propertyID); err != nil {
			zap.L().Error("can't credit landlord balance", zap.Error(err))
			return err
		}

		next := `
			INSERT INTO rent_payments (property_id, tenant_id, amount, due_date, status)
			VALUES ($1, $2, $3, $4, $5)
		`
		nextDue := dueDate.AddDate(0, 0, 30)
		if _, err := r.db.Exec(ctx, next, propertyID, tenantID, amount, nextDue, domain.PaymentStatusPending); err != nil {
			zap.L().Error("can't create next rent payment", zap.Error(err))
			return err
		}
		return nil
	})
}

// MarkOverdue flips every pending payment whose due date has passed and
// returns the affected rows for notification.
func (r *Repository) MarkOverdue(ctx context.Context, now time.Time) ([]domain.RentPayment, error) {
	query := `
		UPDATE rent_payments
		SET status = $1
		WHERE status = $2 AND due_date < $3
		RETURNING id, property_id, tenant_id, amount, due_date, payment_date, status, transaction_id, created_at
	`
	rows, err := r.db.Query(ctx, query, domain.PaymentStatusOverdue, domain.PaymentStatusPending, now)
	if err != nil {
		zap.L().Error("can't mark overdue payments", zap.Error(err))
		return nil, err
	}
	return r.collectRentPayments(rows)
}
