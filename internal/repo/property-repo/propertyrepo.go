package propertyrepo

import (
	"context"
	"fmt"
	"strconv"

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

const propertyColumns = `
	id, owner_id, title, description, address, price, deposit, bedrooms, bathrooms,
	area, is_available, is_approved, accepts_in_app_payment, preferred_lease_term,
	accepts_pets, pet_deposit, accepts_smokers, pool, garden, type_id, location_id,
	main_image_id, current_tenant_id, overall_rating, created_at
`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Address, &p.Price,
		&p.Deposit, &p.Bedrooms, &p.Bathrooms, &p.Area, &p.IsAvailable,
		&p.IsApproved, &p.AcceptsInAppPayment, &p.PreferredLeaseTerm,
		&p.AcceptsPets, &p.PetDeposit, &p.AcceptsSmokers, &p.Pool, &p.Garden,
		&p.TypeID, &p.LocationID, &p.MainImageID, &p.CurrentTenantID,
		&p.OverallRating, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Property, error) {
	defer rows.Close()
	var props []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		props = append(props, *p)
	}
	return props, rows.Err()
}

func (r *Repository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	query := `
		INSERT INTO properties (
			owner_id, title, description, address, price, deposit, bedrooms,
			bathrooms, area, is_available, accepts_in_app_payment,
			preferred_lease_term, accepts_pets, pet_deposit, accepts_smokers,
			pool, garden, type_id, location_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		p.OwnerID, p.Title, p.Description, p.Address, p.Price, p.Deposit,
		p.Bedrooms, p.Bathrooms, p.Area, p.IsAvailable, p.AcceptsInAppPayment,
		p.PreferredLeaseTerm, p.AcceptsPets, p.PetDeposit, p.AcceptsSmokers,
		p.Pool, p.Garden, p.TypeID, p.LocationID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save property", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Property, error) {
	row := r.db.QueryRow(ctx, "SELECT "+propertyColumns+" FROM properties WHERE id = $1", id)
	p, err := scanProperty(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get property", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.Property) error {
	query := `
		UPDATE properties
		SET title = $1, description = $2, address = $3, price = $4, deposit = $5,
		    bedrooms = $6, bathrooms = $7, area = $8, is_available = $9,
		    accepts_pets = $10, accepts_smokers = $11, pool = $12, garden = $13,
		    accepts_in_app_payment = $14
		WHERE id = $15
	`
	_, err := r.db.Exec(ctx, query,
		p.Title, p.Description, p.Address, p.Price, p.Deposit, p.Bedrooms,
		p.Bathrooms, p.Area, p.IsAvailable, p.AcceptsPets, p.AcceptsSmokers,
		p.Pool, p.Garden, p.AcceptsInAppPayment, p.ID,
	)
	if err != nil {
		zap.L().Error("can't update property", zap.Error(err))
	}
	return err
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete property", zap.Error(err))
	}
	return err
}

// ListApproved returns approved available listings, best rated first.
// ShowAll lifts the approval and availability restriction and lists
// everything newest first.
func (r *Repository) ListApproved(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	query := "SELECT " + propertyColumns + " FROM properties WHERE is_approved AND is_available"
	if filter.ShowAll {
		query = "SELECT " + propertyColumns + " FROM properties WHERE TRUE"
	}
	args := make([]any, 0, 10)

	add := func(clause string, v any) {
		args = append(args, v)
		query += fmt.Sprintf(" AND %s $%d", clause, len(args))
	}
	if filter.LocationID > 0 {
		add("location_id =", filter.LocationID)
	}
	if filter.TypeID > 0 {
		add("type_id =", filter.TypeID)
	}
	if filter.MinPrice > 0 {
		add("price >=", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		add("price <=", filter.MaxPrice)
	}
	if filter.Bedrooms > 0 {
		add("bedrooms >=", filter.Bedrooms)
	}
	if filter.Bathrooms > 0 {
		add("bathrooms >=", filter.Bathrooms)
	}
	if filter.Pets != nil {
		add("accepts_pets =", *filter.Pets)
	}
	if filter.Smokers != nil {
		add("accepts_smokers =", *filter.Smokers)
	}
	if filter.Pool != nil {
		add("pool =", *filter.Pool)
	}
	if filter.Garden != nil {
		add("garden =", *filter.Garden)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d OR address ILIKE $%d)",
			len(args), len(args), len(args))
	}
	if filter.ShowAll {
		query += " ORDER BY id DESC"
	} else {
		query += " ORDER BY overall_rating DESC, created_at DESC"
	}
	if filter.Limit > 0 {
		query += " LIMIT " + strconv.Itoa(filter.Limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list properties", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int) ([]domain.Property, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		zap.L().Error("can't list owner properties", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) ListPendingApproval(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE NOT is_approved ORDER BY created_at")
	if err != nil {
		zap.L().Error("can't list unapproved properties", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) Approve(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "UPDATE properties SET is_approved = TRUE WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't approve property", zap.Error(err))
	}
	return err
}

func (r *Repository) Disapprove(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "UPDATE properties SET is_approved = FALSE WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't disapprove property", zap.Error(err))
	}
	return err
}

// ListAccessible returns the listings a tenant has unlocked.
func (r *Repository) ListAccessible(ctx context.Context, tenantID int) ([]domain.Property, error) {
	query := "SELECT " + propertyColumns + ` FROM properties
		WHERE id IN (SELECT property_id FROM property_access WHERE tenant_id = $1)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		zap.L().Error("can't list accessible properties", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// GetByCurrentTenant finds the property the tenant currently occupies,
// nil when they occupy none.
func (r *Repository) GetByCurrentTenant(ctx context.Context, tenantID int) (*domain.Property, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE current_tenant_id = $1 ORDER BY id LIMIT 1", tenantID)
	p, err := scanProperty(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get current property", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) CountByOwner(ctx context.Context, ownerID int) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM properties WHERE owner_id = $1", ownerID).Scan(&n)
	if err != nil {
		zap.L().Error("can't count owner properties", zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) ListIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.Query(ctx, "SELECT id FROM properties ORDER BY id")
	if err != nil {
		zap.L().Error("can't list property ids", zap.Error(err))
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

func (r *Repository) UpdateOverallRating(ctx context.Context, id int, rating float64) error {
	_, err := r.db.Exec(ctx, "UPDATE properties SET overall_rating = $1 WHERE id = $2", rating, id)
	if err != nil {
		zap.L().Error("can't update property rating", zap.Error(err))
	}
	return err
}

func (r *Repository) AddImage(ctx context.Context, img *domain.PropertyImage) error {
	query := `
		INSERT INTO property_images (property_id, url, position)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, img.PropertyID, img.URL, img.Position).Scan(&img.ID)
	if err != nil {
		zap.L().Error("can't save property image", zap.Error(err))
	}
	return err
}

func (r *Repository) ListImages(ctx context.Context, propertyID int) ([]domain.PropertyImage, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, property_id, url, position FROM property_images WHERE property_id = $1 ORDER BY position", propertyID)
	if err != nil {
		zap.L().Error("can't list property images", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var images []domain.PropertyImage
	for rows.Next() {
		var img domain.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.URL, &img.Position); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// DeleteImage removes one image. The main_image_id reference nulls out
// through the foreign key when it pointed at the removed row.
func (r *Repository) DeleteImage(ctx context.Context, propertyID, imageID int) error {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM property_images WHERE id = $1 AND property_id = $2", imageID, propertyID)
	if err != nil {
		zap.L().Error("can't delete property image", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) SetMainImage(ctx context.Context, propertyID, imageID int) error {
	_, err := r.db.Exec(ctx, "UPDATE properties SET main_image_id = $1 WHERE id = $2", imageID, propertyID)
	if err != nil {
		zap.L().Error("can't set main image", zap.Error(err))
	}
	return err
}

func (r *Repository) ListTypes(ctx context.Context) ([]domain.HouseType, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name FROM house_types ORDER BY name")
	if err != nil {
		zap.L().Error("can't list house types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var types []domain.HouseType
	for rows.Next() {
		var t domain.HouseType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *Repository) ListLocations(ctx context.Context) ([]domain.HouseLocation, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, city FROM house_locations ORDER BY name")
	if err != nil {
		zap.L().Error("can't list locations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var locations []domain.HouseLocation
	for rows.Next() {
		var l domain.HouseLocation
		if err := rows.Scan(&l.ID, &l.Name, &l.City); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *Repository) CreateType(ctx context.Context, name string) (*domain.HouseType, error) {
	t := domain.HouseType{Name: name}
	err := r.db.QueryRow(ctx,
		"INSERT INTO house_types (name) VALUES ($1) RETURNING id", name).Scan(&t.ID)
	if err != nil {
		zap.L().Error("can't create house type", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) DeleteType(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM house_types WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete house type", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) CreateLocation(ctx context.Context, name, city string) (*domain.HouseLocation, error) {
	l := domain.HouseLocation{Name: name, City: city}
	err := r.db.QueryRow(ctx,
		"INSERT INTO house_locations (name, city) VALUES ($1, $2) RETURNING id", name, city).Scan(&l.ID)
	if err != nil {
		zap.L().Error("can't create location", zap.Error(err))
		return nil, err
	}
	return &l, nil
}

func (r *Repository) DeleteLocation(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM house_locations WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete location", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) GrantAccess(ctx context.Context, propertyID, tenantID int) error {
	query := `
		INSERT INTO property_access (property_id, tenant_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, propertyID, tenantID)
	if err != nil {
		zap.L().Error("can't grant property access", zap.Error(err))
	}
	return err
}

func (r *Repository) RevokeAccess(ctx context.Context, propertyID, tenantID int) error {
	_, err := r.db.Exec(ctx,
		"DELETE FROM property_access WHERE property_id = $1 AND tenant_id = $2", propertyID, tenantID)
	if err != nil {
		zap.L().Error("can't revoke property access", zap.Error(err))
	}
	return err
}

func (r *Repository) HasAccess(ctx context.Context, propertyID, tenantID int) (bool, error) {
	var ok bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM property_access WHERE property_id = $1 AND tenant_id = $2
		)
	`
	err := r.db.QueryRow(ctx, query, propertyID, tenantID).Scan(&ok)
	if err != nil {
		zap.L().Error("can't check property access", zap.Error(err))
		return false, err
	}
	return ok, nil
}

func (r *Repository) ListAccess(ctx context.Context, propertyID int) ([]domain.PropertyAccess, error) {
	query := `
		SELECT pa.tenant_id, u.first_name, u.last_name, tp.phone, tp.current_rating, pa.granted_at
		FROM property_access pa
		JOIN users u ON u.id = pa.tenant_id
		LEFT JOIN tenant_profiles tp ON tp.user_id = pa.tenant_id
		WHERE pa.property_id = $1
		ORDER BY pa.granted_at
	`
	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		zap.L().Error("can't list property access", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PropertyAccess
	for rows.Next() {
		var (
			e      domain.PropertyAccess
			phone  *string
			rating *float64
		)
		if err := rows.Scan(&e.TenantID, &e.FirstName, &e.LastName, &phone, &rating, &e.GrantedAt); err != nil {
			return nil, err
		}
		if phone != nil {
			e.Phone = *phone
		}
		e.Rating = rating
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SetCurrentTenant installs the tenant, marks the property unavailable and
// moves the losing access pool into the previous-tenants archive. The
// winner keeps their access row. All in one transaction so a failed
// archive never strands a half-set tenant.
func (r *Repository) SetCurrentTenant(ctx context.Context, propertyID, tenantID int) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx,
			"UPDATE properties SET current_tenant_id = $1, is_available = FALSE WHERE id = $2",
			tenantID, propertyID)
		if err != nil {
			zap.L().Error("can't set current tenant", zap.Error(err))
			return err
		}

		archive := `
			INSERT INTO property_previous_tenants (property_id, tenant_id)
			SELECT property_id, tenant_id FROM property_access
			WHERE property_id = $1 AND tenant_id <> $2
			ON CONFLICT DO NOTHING
		`
		if _, err := r.db.Exec(ctx, archive, propertyID, tenantID); err != nil {
			zap.L().Error("can't archive access pool", zap.Error(err))
			return err
		}

		_, err = r.db.Exec(ctx,
			"DELETE FROM property_access WHERE property_id = $1 AND tenant_id <> $2",
			propertyID, tenantID)
		if err != nil {
			zap.L().Error("can't clear access pool", zap.Error(err))
		}
		return err
	})
}

func (r *Repository) ClearCurrentTenant(ctx context.Context, propertyID int) error {
	_, err := r.db.Exec(ctx,
		"UPDATE properties SET current_tenant_id = NULL, is_available = TRUE WHERE id = $1", propertyID)
	if err != nil {
		zap.L().Error("can't clear current tenant", zap.Error(err))
	}
	return err
}
