package balancerepo

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

func (r *Repository) Create(ctx context.Context, landlordID int) (*domain.LandlordBalance, error) {
	var b domain.LandlordBalance
	query := `
		INSERT INTO landlord_balances (landlord_id, amount)
		VALUES ($1, 0)
		RETURNING id, landlord_id, amount, last_updated
	`
	err := r.db.QueryRow(ctx, query, landlordID).Scan(&b.ID, &b.LandlordID, &b.Amount, &b.LastUpdated)
	if err != nil {
		zap.L().Error("can't create landlord balance", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Get(ctx context.Context, landlordID int) (*domain.LandlordBalance, error) {
	var b domain.LandlordBalance
	query := `
		SELECT id, landlord_id, amount, last_updated
		FROM landlord_balances
		WHERE landlord_id = $1
	`
	err := r.db.QueryRow(ctx, query, landlordID).Scan(&b.ID, &b.LandlordID, &b.Amount, &b.LastUpdated)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get landlord balance", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Credit(ctx context.Context, landlordID int, amount float64) error {
	_, err := r.db.Exec(ctx,
		"UPDATE landlord_balances SET amount = amount + $1, last_updated = NOW() WHERE landlord_id = $2",
		amount, landlordID)
	if err != nil {
		zap.L().Error("can't credit landlord balance", zap.Error(err))
	}
	return err
}

// Debit decrements only when the funds cover the amount, so two
// concurrent withdrawals can never overdraw. Returns false when funds
// are short.
func (r *Repository) Debit(ctx context.Context, landlordID int, amount float64) (bool, error) {
	var id int
	query := `
		UPDATE landlord_balances
		SET amount = amount - $1, last_updated = NOW()
		WHERE landlord_id = $2 AND amount >= $1
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, amount, landlordID).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't debit landlord balance", zap.Error(err))
		return false, err
	}
	return true, nil
}
