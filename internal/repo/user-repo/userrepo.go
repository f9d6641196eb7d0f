package userrepo

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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, password_hash, first_name, last_name, user_type, is_active, created_at
		FROM users
		WHERE email = $1
	`
	err := repo.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName,
		&user.LastName, &user.UserType, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, password_hash, first_name, last_name, user_type, is_active, created_at
		FROM users
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName,
		&user.LastName, &user.UserType, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, user_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.UserType,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Delete removes the account. Profiles, listings, messages and payments
// follow through the cascading foreign keys.
func (repo *Repository) Delete(ctx context.Context, id int) error {
	tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (repo *Repository) CreateVerification(ctx context.Context, v *domain.PhoneVerification) error {
	query := `
		INSERT INTO phone_verifications (user_id, verification_code)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, v.UserID, v.Code).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		zap.L().Error("can't save phone verification", zap.Error(err))
		return err
	}
	return nil
}

// FindLatestVerification returns the most recent code issued to the user,
// verified or not.
func (repo *Repository) FindLatestVerification(ctx context.Context, userID int) (*domain.PhoneVerification, error) {
	var v domain.PhoneVerification
	query := `
		SELECT id, user_id, verification_code, is_verified, created_at
		FROM phone_verifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	err := repo.db.QueryRow(ctx, query, userID).Scan(&v.ID, &v.UserID, &v.Code, &v.IsVerified, &v.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find phone verification", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (repo *Repository) MarkVerified(ctx context.Context, verificationID int) error {
	_, err := repo.db.Exec(ctx, "UPDATE phone_verifications SET is_verified = TRUE WHERE id = $1", verificationID)
	if err != nil {
		zap.L().Error("can't mark verification", zap.Error(err))
	}
	return err
}
