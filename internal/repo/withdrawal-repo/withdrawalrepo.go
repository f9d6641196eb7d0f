package withdrawalrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (
			landlord_id, amount, status, reference, payment_method,
			bank_name, account_number, account_name, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, requested_at
	`
	err := r.db.QueryRow(ctx, query,
		w.LandlordID, w.Amount, w.Status, w.Reference, w.PaymentMethod,
		w.BankName, w.AccountNumber, w.AccountName, w.Notes,
	).Scan(&w.ID, &w.RequestedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error) {
	row := r.db.QueryRow(ctx, "SELECT "+withdrawalColumns+" FROM withdrawal_requests WHERE id = $1", id)
	w, err := scanWithdrawal(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get withdrawal request", zap.Error(err))
		return nil, err
	}
	return w, nil
}

const withdrawalColumns = `
	id, landlord_id, amount, status, reference, payment_method,
	bank_name, account_number, account_name, notes, requested_at, processed_at
`

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var w domain.WithdrawalRequest
	err := row.Scan(&w.ID, &w.LandlordID, &w.Amount, &w.Status, &w.Reference,
		&w.PaymentMethod, &w.BankName, &w.AccountNumber, &w.AccountName,
		&w.Notes, &w.RequestedAt, &w.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) ListByLandlord(ctx context.Context, landlordID int) ([]domain.WithdrawalRequest, error) {
	query := "SELECT " + withdrawalColumns + ` FROM withdrawal_requests
		WHERE landlord_id = $1
		ORDER BY requested_at DESC`
	rows, err := r.db.Query(ctx, query, landlordID)
	if err != nil {
		zap.L().Error("can't list withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

// SumCompleted totals the withdrawals already paid out to the landlord.
func (r *Repository) SumCompleted(ctx context.Context, landlordID int) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM withdrawal_requests WHERE landlord_id = $1 AND status = $2",
		landlordID, domain.WithdrawalStatusCompleted).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum withdrawals", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE withdrawal_requests SET status = $1, processed_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		zap.L().Error("can't update withdrawal status", zap.Error(err))
	}
	return err
}
