package profilerepo

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

const landlordColumns = `
	id, user_id, date_of_birth, phone, alternate_phone, emergency_contact_name,
	emergency_contact_phone, additional_notes, id_number, id_image, profile_image,
	proof_of_residence, marital_status, is_profile_complete, is_verified,
	is_phone_verified, current_rating, profile_completeness, last_updated
`

func scanLandlord(row pgx.Row) (*domain.LandlordProfile, error) {
	var p domain.LandlordProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.DateOfBirth, &p.Phone, &p.AlternatePhone,
		&p.EmergencyContactName, &p.EmergencyContactPhone, &p.AdditionalNotes,
		&p.IDNumber, &p.IDImage, &p.ProfileImage, &p.ProofOfResidence,
		&p.MaritalStatus, &p.IsProfileComplete, &p.IsVerified, &p.IsPhoneVerified,
		&p.CurrentRating, &p.ProfileCompleteness, &p.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreateLandlordProfile(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, "INSERT INTO landlord_profiles (user_id) VALUES ($1)", userID)
	if err != nil {
		zap.L().Error("can't create landlord profile", zap.Error(err))
	}
	return err
}

func (r *Repository) GetLandlordProfile(ctx context.Context, userID int) (*domain.LandlordProfile, error) {
	row := r.db.QueryRow(ctx, "SELECT "+landlordColumns+" FROM landlord_profiles WHERE user_id = $1", userID)
	p, err := scanLandlord(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get landlord profile", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) UpdateLandlordProfile(ctx context.Context, p *domain.LandlordProfile) error {
	query := `
		UPDATE landlord_profiles
		SET date_of_birth = $1, phone = $2, alternate_phone = $3,
		    emergency_contact_name = $4, emergency_contact_phone = $5,
		    additional_notes = $6, id_number = $7, id_image = $8,
		    profile_image = $9, proof_of_residence = $10, marital_status = $11,
		    is_profile_complete = $12, is_phone_verified = $13,
		    profile_completeness = $14, last_updated = NOW()
		WHERE user_id = $15
	`
	_, err := r.db.Exec(ctx, query,
		p.DateOfBirth, p.Phone, p.AlternatePhone, p.EmergencyContactName,
		p.EmergencyContactPhone, p.AdditionalNotes, p.IDNumber, p.IDImage,
		p.ProfileImage, p.ProofOfResidence, p.MaritalStatus, p.IsProfileComplete,
		p.IsPhoneVerified, p.ProfileCompleteness, p.UserID,
	)
	if err != nil {
		zap.L().Error("can't update landlord profile", zap.Error(err))
	}
	return err
}

func (r *Repository) UpdateLandlordScores(ctx context.Context, userID int, rating, completeness float64) error {
	_, err := r.db.Exec(ctx,
		"UPDATE landlord_profiles SET current_rating = $1, profile_completeness = $2, last_updated = NOW() WHERE user_id = $3",
		rating, completeness, userID)
	if err != nil {
		zap.L().Error("can't update landlord scores", zap.Error(err))
	}
	return err
}

func (r *Repository) ListLandlordUserIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.Query(ctx, "SELECT user_id FROM landlord_profiles ORDER BY user_id")
	if err != nil {
		zap.L().Error("can't list landlord ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListLandlordOverviews joins the account rows in for the admin listing.
func (r *Repository) ListLandlordOverviews(ctx context.Context) ([]domain.LandlordOverview, error) {
	query := `
		SELECT lp.user_id, u.first_name, u.last_name, u.email, lp.phone,
		       lp.is_verified, lp.is_phone_verified, lp.current_rating,
		       lp.profile_completeness
		FROM landlord_profiles lp
		JOIN users u ON u.id = lp.user_id
		ORDER BY lp.user_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list landlord profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var overviews []domain.LandlordOverview
	for rows.Next() {
		var o domain.LandlordOverview
		if err := rows.Scan(&o.UserID, &o.FirstName, &o.LastName, &o.Email, &o.Phone,
			&o.IsVerified, &o.IsPhoneVerified, &o.CurrentRating, &o.ProfileCompleteness); err != nil {
			return nil, err
		}
		overviews = append(overviews, o)
	}
	return overviews, rows.Err()
}

func (r *Repository) ListTenantOverviews(ctx context.Context) ([]domain.TenantOverview, error) {
	query := `
		SELECT tp.user_id, u.first_name, u.last_name, u.email, tp.phone,
		       tp.current_rating, tp.subscription_plan, tp.subscription_status,
		       tp.num_properties
		FROM tenant_profiles tp
		JOIN users u ON u.id = tp.user_id
		ORDER BY tp.user_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list tenant profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var overviews []domain.TenantOverview
	for rows.Next() {
		var o domain.TenantOverview
		if err := rows.Scan(&o.UserID, &o.FirstName, &o.LastName, &o.Email, &o.Phone,
			&o.CurrentRating, &o.SubscriptionPlan, &o.SubscriptionStatus, &o.NumProperties); err != nil {
			return nil, err
		}
		overviews = append(overviews, o)
	}
	return overviews, rows.Err()
}

const tenantColumns = `
	id, user_id, date_of_birth, phone, occupation, employer, emergency_contact_name,
	emergency_contact_phone, preferred_lease_term, max_rent, additional_notes,
	id_number, id_image, profile_image, proof_of_employment, marital_status,
	is_profile_complete, is_phone_verified, current_rating, pricing_tier_id,
	num_properties, subscription_plan, subscription_status, last_updated
`

func scanTenant(row pgx.Row) (*domain.TenantProfile, error) {
	var p domain.TenantProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.DateOfBirth, &p.Phone, &p.Occupation, &p.Employer,
		&p.EmergencyContactName, &p.EmergencyContactPhone, &p.PreferredLeaseTerm,
		&p.MaxRent, &p.AdditionalNotes, &p.IDNumber, &p.IDImage, &p.ProfileImage,
		&p.ProofOfEmployment, &p.MaritalStatus, &p.IsProfileComplete,
		&p.IsPhoneVerified, &p.CurrentRating, &p.PricingTierID, &p.NumProperties,
		&p.SubscriptionPlan, &p.SubscriptionStatus, &p.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreateTenantProfile(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, "INSERT INTO tenant_profiles (user_id) VALUES ($1)", userID)
	if err != nil {
		zap.L().Error("can't create tenant profile", zap.Error(err))
	}
	return err
}

func (r *Repository) GetTenantProfile(ctx context.Context, userID int) (*domain.TenantProfile, error) {
	row := r.db.QueryRow(ctx, "SELECT "+tenantColumns+" FROM tenant_profiles WHERE user_id = $1", userID)
	p, err := scanTenant(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get tenant profile", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) UpdateTenantProfile(ctx context.Context, p *domain.TenantProfile) error {
	query := `
		UPDATE tenant_profiles
		SET date_of_birth = $1, phone = $2, occupation = $3, employer = $4,
		    emergency_contact_name = $5, emergency_contact_phone = $6,
		    preferred_lease_term = $7, max_rent = $8, additional_notes = $9,
		    id_number = $10, id_image = $11, profile_image = $12,
		    proof_of_employment = $13, marital_status = $14,
		    is_profile_complete = $15, is_phone_verified = $16, last_updated = NOW()
		WHERE user_id = $17
	`
	_, err := r.db.Exec(ctx, query,
		p.DateOfBirth, p.Phone, p.Occupation, p.Employer, p.EmergencyContactName,
		p.EmergencyContactPhone, p.PreferredLeaseTerm, p.MaxRent, p.AdditionalNotes,
		p.IDNumber, p.IDImage, p.ProfileImage, p.ProofOfEmployment, p.MaritalStatus,
		p.IsProfileComplete, p.IsPhoneVerified, p.UserID,
	)
	if err != nil {
		zap.L().Error("can't update tenant profile", zap.Error(err))
	}
	return err
}

func (r *Repository) UpdateTenantRating(ctx context.Context, userID int, rating float64) error {
	_, err := r.db.Exec(ctx,
		"UPDATE tenant_profiles SET current_rating = $1, last_updated = NOW() WHERE user_id = $2",
		rating, userID)
	if err != nil {
		zap.L().Error("can't update tenant rating", zap.Error(err))
	}
	return err
}

// SetSubscription activates a plan and resets the property view quota to
// the tier's allowance.
func (r *Repository) SetSubscription(ctx context.Context, userID, tierID int) error {
	query := `
		UPDATE tenant_profiles
		SET pricing_tier_id = $1,
		    num_properties = (SELECT max_properties FROM pricing_tiers WHERE id = $1),
		    subscription_plan = (SELECT name FROM pricing_tiers WHERE id = $1),
		    subscription_status = 'active',
		    last_updated = NOW()
		WHERE user_id = $2
	`
	_, err := r.db.Exec(ctx, query, tierID, userID)
	if err != nil {
		zap.L().Error("can't set subscription", zap.Error(err))
	}
	return err
}

// DecrementQuota spends one property view slot. Returns the remaining
// slots, or pgx.ErrNoRows via the caller when the quota is exhausted.
func (r *Repository) DecrementQuota(ctx context.Context, userID int) (int, error) {
	var remaining int
	query := `
		UPDATE tenant_profiles
		SET num_properties = num_properties - 1, last_updated = NOW()
		WHERE user_id = $1 AND num_properties > 0
		RETURNING num_properties
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&remaining)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, err
		}
		zap.L().Error("can't decrement quota", zap.Error(err))
		return 0, err
	}
	return remaining, nil
}

func (r *Repository) ListPricingTiers(ctx context.Context) ([]domain.PricingTier, error) {
	query := `
		SELECT id, name, description, cost, max_properties, max_property_price
		FROM pricing_tiers
		ORDER BY cost
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list pricing tiers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.PricingTier
	for rows.Next() {
		var t domain.PricingTier
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Cost, &t.MaxProperties, &t.MaxPropertyPrice); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (r *Repository) GetPricingTier(ctx context.Context, id int) (*domain.PricingTier, error) {
	var t domain.PricingTier
	query := `
		SELECT id, name, description, cost, max_properties, max_property_price
		FROM pricing_tiers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Description, &t.Cost, &t.MaxProperties, &t.MaxPropertyPrice)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get pricing tier", zap.Error(err))
		return nil, err
	}
	return &t, nil
}
