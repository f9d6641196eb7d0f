package propertyservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/pkg/cache"
	"github.com/rojahomes/rentmarket/pkg/mailer"
)

const listCacheTTL = 2 * time.Minute

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotOwner         = errors.New("property belongs to another landlord")
	ErrQuotaExhausted   = errors.New("property view quota exhausted")
	ErrNoSubscription   = errors.New("no active subscription")
	ErrTenantNotInPool  = errors.New("tenant is not in the access pool")
)

type Repo interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	GetByID(ctx context.Context, id int) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id int) error
	ListApproved(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.Property, error)
	ListPendingApproval(ctx context.Context) ([]domain.Property, error)
	Approve(ctx context.Context, id int) error
	Disapprove(ctx context.Context, id int) error
	ListAccessible(ctx context.Context, tenantID int) ([]domain.Property, error)
	GetByCurrentTenant(ctx context.Context, tenantID int) (*domain.Property, error)
	AddImage(ctx context.Context, img *domain.PropertyImage) error
	DeleteImage(ctx context.Context, propertyID, imageID int) error
	ListImages(ctx context.Context, propertyID int) ([]domain.PropertyImage, error)
	SetMainImage(ctx context.Context, propertyID, imageID int) error
	ListTypes(ctx context.Context) ([]domain.HouseType, error)
	ListLocations(ctx context.Context) ([]domain.HouseLocation, error)
	CreateType(ctx context.Context, name string) (*domain.HouseType, error)
	DeleteType(ctx context.Context, id int) error
	CreateLocation(ctx context.Context, name, city string) (*domain.HouseLocation, error)
	DeleteLocation(ctx context.Context, id int) error
	GrantAccess(ctx context.Context, propertyID, tenantID int) error
	RevokeAccess(ctx context.Context, propertyID, tenantID int) error
	HasAccess(ctx context.Context, propertyID, tenantID int) (bool, error)
	ListAccess(ctx context.Context, propertyID int) ([]domain.PropertyAccess, error)
	SetCurrentTenant(ctx context.Context, propertyID, tenantID int) error
	ClearCurrentTenant(ctx context.Context, propertyID int) error
}

type TenantRepo interface {
	GetTenantProfile(ctx context.Context, userID int) (*domain.TenantProfile, error)
	DecrementQuota(ctx context.Context, userID int) (int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type RentPaymentRepo interface {
	CreateRentPayment(ctx context.Context, p *domain.RentPayment) (*domain.RentPayment, error)
}

type Describer interface {
	GenerateDescription(ctx context.Context, title, houseType, location string, bedrooms, bathrooms int, features []string) (string, error)
}

type Service struct {
	propertyRepo Repo
	tenantRepo   TenantRepo
	userRepo     UserRepo
	rentRepo     RentPaymentRepo
	describer    Describer
	cache        *cache.Cache
	mailer       *mailer.Mailer
}

func New(propertyRepo Repo, tenantRepo TenantRepo, userRepo UserRepo, rentRepo RentPaymentRepo, describer Describer, c *cache.Cache, m *mailer.Mailer) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
		userRepo:     userRepo,
		rentRepo:     rentRepo,
		describer:    describer,
		cache:        c,
		mailer:       m,
	}
}

// Create stores the listing unapproved. When requested and no description
// was supplied, listing copy is generated from the property facts; a
// generation failure never blocks the listing.
func (s *Service) Create(ctx context.Context, p *domain.Property, generateDescription bool, imageURLs []string) (*domain.Property, error) {
	if generateDescription && p.Description == "" {
		desc, err := s.describer.GenerateDescription(ctx, p.Title, "", "", p.Bedrooms, p.Bathrooms, features(p))
		if err != nil {
			zap.L().Warn("can't generate property description", zap.Error(err))
		} else {
			p.Description = desc
		}
	}

	created, err := s.propertyRepo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	for i, url := range imageURLs {
		img := &domain.PropertyImage{PropertyID: created.ID, URL: url, Position: i}
		if err := s.propertyRepo.AddImage(ctx, img); err != nil {
			return nil, err
		}
		if i == 0 {
			if err := s.propertyRepo.SetMainImage(ctx, created.ID, img.ID); err != nil {
				return nil, err
			}
		}
	}

	s.cache.Invalidate(ctx, "properties:*")
	return created, nil
}

func features(p *domain.Property) []string {
	var f []string
	if p.Pool {
		f = append(f, "pool")
	}
	if p.Garden {
		f = append(f, "garden")
	}
	if p.AcceptsPets {
		f = append(f, "pets allowed")
	}
	return f
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

func (s *Service) getOwned(ctx context.Context, propertyID, ownerID int) (*domain.Property, error) {
	property, err := s.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return property, nil
}

func (s *Service) Update(ctx context.Context, ownerID int, p *domain.Property) error {
	if _, err := s.getOwned(ctx, p.ID, ownerID); err != nil {
		return err
	}
	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, "properties:*")
	return nil
}

func (s *Service) Delete(ctx context.Context, ownerID, propertyID int) error {
	if _, err := s.getOwned(ctx, propertyID, ownerID); err != nil {
		return err
	}
	if err := s.propertyRepo.Delete(ctx, propertyID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, "properties:*")
	return nil
}

// List serves the public catalog. Results are cached per filter for a
// short window, the cache being best effort only.
func (s *Service) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	key := fmt.Sprintf("properties:list:%d:%d:%.2f:%.2f:%d:%d:%s:%s:%s:%s:%s:%v:%d",
		filter.LocationID, filter.TypeID, filter.MinPrice, filter.MaxPrice,
		filter.Bedrooms, filter.Bathrooms, boolKey(filter.Pets), boolKey(filter.Smokers),
		boolKey(filter.Pool), boolKey(filter.Garden), filter.Search, filter.ShowAll, filter.Limit)

	var cached []domain.Property
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	properties, err := s.propertyRepo.ListApproved(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, properties, listCacheTTL)
	return properties, nil
}

func boolKey(p *bool) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatBool(*p)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int) ([]domain.Property, error) {
	return s.propertyRepo.ListByOwner(ctx, ownerID)
}

func (s *Service) ListPendingApproval(ctx context.Context) ([]domain.Property, error) {
	return s.propertyRepo.ListPendingApproval(ctx)
}

// Approve publishes the listing and notifies the owner by mail.
func (s *Service) Approve(ctx context.Context, propertyID int) error {
	property, err := s.Get(ctx, propertyID)
	if err != nil {
		return err
	}
	if err := s.propertyRepo.Approve(ctx, propertyID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, "properties:*")

	if owner, err := s.userRepo.FindByID(ctx, property.OwnerID); err == nil && owner != nil {
		s.mailer.Send([]string{owner.Email},
			"Your listing has been approved",
			fmt.Sprintf("Hi %s,\n\nYour property %q is now live and visible to tenants.", owner.FirstName, property.Title))
	}
	return nil
}

// Disapprove takes the listing off the public catalog and tells the owner.
func (s *Service) Disapprove(ctx context.Context, propertyID int) error {
	property, err := s.Get(ctx, propertyID)
	if err != nil {
		return err
	}
	if err := s.propertyRepo.Disapprove(ctx, propertyID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, "properties:*")

	if owner, err := s.userRepo.FindByID(ctx, property.OwnerID); err == nil && owner != nil {
		s.mailer.Send([]string{owner.Email},
			"Your listing has been taken down",
			fmt.Sprintf("Hi %s,\n\nYour property %q is no longer visible to tenants. Contact support for details.", owner.FirstName, property.Title))
	}
	return nil
}

func (s *Service) ListImages(ctx context.Context, propertyID int) ([]domain.PropertyImage, error) {
	return s.propertyRepo.ListImages(ctx, propertyID)
}

// AddImage appends the image at the end of the gallery; the very first
// image also becomes the listing's main image.
func (s *Service) AddImage(ctx context.Context, ownerID, propertyID int, url string) (*domain.PropertyImage, error) {
	property, err := s.getOwned(ctx, propertyID, ownerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.propertyRepo.ListImages(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	img := &domain.PropertyImage{PropertyID: propertyID, URL: url, Position: len(existing)}
	if err := s.propertyRepo.AddImage(ctx, img); err != nil {
		return nil, err
	}
	if len(existing) == 0 && property.MainImageID == nil {
		if err := s.propertyRepo.SetMainImage(ctx, propertyID, img.ID); err != nil {
			return nil, err
		}
	}
	s.cache.Invalidate(ctx, "properties:*")
	return img, nil
}

func (s *Service) DeleteImage(ctx context.Context, ownerID, propertyID, imageID int) error {
	if _, err := s.getOwned(ctx, propertyID, ownerID); err != nil {
		return err
	}
	if err := s.propertyRepo.DeleteImage(ctx, propertyID, imageID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, "properties:*")
	return nil
}

func (s *Service) ListTypes(ctx context.Context) ([]domain.HouseType, error) {
	return s.propertyRepo.ListTypes(ctx)
}

func (s *Service) ListLocations(ctx context.Context) ([]domain.HouseLocation, error) {
	return s.propertyRepo.ListLocations(ctx)
}

func (s *Service) CreateType(ctx context.Context, name string) (*domain.HouseType, error) {
	return s.propertyRepo.CreateType(ctx, name)
}

func (s *Service) DeleteType(ctx context.Context, id int) error {
	if err := s.propertyRepo.DeleteType(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, "properties:*")
	return nil
}

func (s *Service) CreateLocation(ctx context.Context, name, city string) (*domain.HouseLocation, error) {
	return s.propertyRepo.CreateLocation(ctx, name, city)
}

func (s *Service) DeleteLocation(ctx context.Context, id int) error {
	if err := s.propertyRepo.DeleteLocation(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, "properties:*")
	return nil
}

func (s *Service) ListAccessible(ctx context.Context, tenantID int) ([]domain.Property, error) {
	return s.propertyRepo.ListAccessible(ctx, tenantID)
}

// CurrentProperty is the listing the tenant currently occupies.
func (s *Service) CurrentProperty(ctx context.Context, tenantID int) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByCurrentTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// RequestAccess puts the tenant into the listing's viewing pool, spending
// one slot of the subscription quota. Repeat requests for the same
// property are free.
func (s *Service) RequestAccess(ctx context.Context, propertyID, tenantID int) error {
	if _, err := s.Get(ctx, propertyID); err != nil {
		return err
	}

	already, err := s.propertyRepo.HasAccess(ctx, propertyID, tenantID)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	profile, err := s.tenantRepo.GetTenantProfile(ctx, tenantID)
	if err != nil {
		return err
	}
	if profile == nil || profile.SubscriptionStatus != "active" {
		return ErrNoSubscription
	}

	if _, err := s.tenantRepo.DecrementQuota(ctx, tenantID); err != nil {
		return ErrQuotaExhausted
	}
	return s.propertyRepo.GrantAccess(ctx, propertyID, tenantID)
}

func (s *Service) HasAccess(ctx context.Context, propertyID, tenantID int) (bool, error) {
	return s.propertyRepo.HasAccess(ctx, propertyID, tenantID)
}

func (s *Service) ListAccess(ctx context.Context, ownerID, propertyID int) ([]domain.PropertyAccess, error) {
	if _, err := s.getOwned(ctx, propertyID, ownerID); err != nil {
		return nil, err
	}
	return s.propertyRepo.ListAccess(ctx, propertyID)
}

func (s *Service) RevokeAccess(ctx context.Context, ownerID, propertyID, tenantID int) error {
	if _, err := s.getOwned(ctx, propertyID, ownerID); err != nil {
		return err
	}
	return s.propertyRepo.RevokeAccess(ctx, propertyID, tenantID)
}

// SetCurrentTenant selects the tenant from the access pool. The losers
// are archived to previous tenants while the winner keeps access, and on
// listings that collect rent in-app the first rent payment is scheduled
// 30 days out. The winner, the landlord and the losing tenants are all
// notified by mail.
func (s *Service) SetCurrentTenant(ctx context.Context, ownerID, propertyID, tenantID int) error {
	property, err := s.getOwned(ctx, propertyID, ownerID)
	if err != nil {
		return err
	}

	hasAccess, err := s.propertyRepo.HasAccess(ctx, propertyID, tenantID)
	if err != nil {
		return err
	}
	if !hasAccess {
		return ErrTenantNotInPool
	}

	// captured before the pool is cleared, for the loser notifications
	pool, err := s.propertyRepo.ListAccess(ctx, propertyID)
	if err != nil {
		zap.L().Warn("can't read access pool", zap.Int("property_id", propertyID), zap.Error(err))
	}

	if err := s.propertyRepo.SetCurrentTenant(ctx, propertyID, tenantID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, "properties:*")

	if property.AcceptsInAppPayment {
		payment := &domain.RentPayment{
			PropertyID: propertyID,
			TenantID:   tenantID,
			Amount:     property.Price,
			DueDate:    time.Now().AddDate(0, 0, 30),
			Status:     domain.PaymentStatusPending,
		}
		if _, err := s.rentRepo.CreateRentPayment(ctx, payment); err != nil {
			zap.L().Error("can't schedule first rent payment", zap.Int("property_id", propertyID), zap.Error(err))
		}
	}

	s.notifySelection(ctx, property, tenantID, pool)
	return nil
}

func (s *Service) notifySelection(ctx context.Context, property *domain.Property, tenantID int, pool []domain.PropertyAccess) {
	if tenant, err := s.userRepo.FindByID(ctx, tenantID); err == nil && tenant != nil {
		s.mailer.Send([]string{tenant.Email},
			"You have been selected as a tenant",
			fmt.Sprintf("Hi %s,\n\nThe landlord of %q has selected you as the tenant.", tenant.FirstName, property.Title))
	}

	if owner, err := s.userRepo.FindByID(ctx, property.OwnerID); err == nil && owner != nil {
		s.mailer.Send([]string{owner.Email},
			"Tenant selection confirmed",
			fmt.Sprintf("Hi %s,\n\nYour tenant selection for %q has been recorded.", owner.FirstName, property.Title))
	}

	for _, entry := range pool {
		if entry.TenantID == tenantID {
			continue
		}
		loser, err := s.userRepo.FindByID(ctx, entry.TenantID)
		if err != nil || loser == nil {
			continue
		}
		s.mailer.Send([]string{loser.Email},
			"Property no longer available",
			fmt.Sprintf("Hi %s,\n\nThe property %q has been let to another tenant.", loser.FirstName, property.Title))
	}
}

func (s *Service) ClearCurrentTenant(ctx context.Context, ownerID, propertyID int) error {
	if _, err := s.getOwned(ctx, propertyID, ownerID); err != nil {
		return err
	}
	if err := s.propertyRepo.ClearCurrentTenant(ctx, propertyID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, "properties:*")
	return nil
}
