package profileservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/service/ratingservice"
)

const codeTTL = 5 * time.Minute

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoPhone         = errors.New("no phone number on profile")
	ErrCodeExpired     = errors.New("verification code expired")
	ErrCodeMismatch    = errors.New("verification code does not match")
)

type Repo interface {
	GetLandlordProfile(ctx context.Context, userID int) (*domain.LandlordProfile, error)
	UpdateLandlordProfile(ctx context.Context, p *domain.LandlordProfile) error
	GetTenantProfile(ctx context.Context, userID int) (*domain.TenantProfile, error)
	UpdateTenantProfile(ctx context.Context, p *domain.TenantProfile) error
	ListPricingTiers(ctx context.Context) ([]domain.PricingTier, error)
	GetPricingTier(ctx context.Context, id int) (*domain.PricingTier, error)
	ListLandlordOverviews(ctx context.Context) ([]domain.LandlordOverview, error)
	ListTenantOverviews(ctx context.Context) ([]domain.TenantOverview, error)
}

type VerificationRepo interface {
	CreateVerification(ctx context.Context, v *domain.PhoneVerification) error
	FindLatestVerification(ctx context.Context, userID int) (*domain.PhoneVerification, error)
	MarkVerified(ctx context.Context, verificationID int) error
}

type SMSSender interface {
	SendVerificationCode(ctx context.Context, phone, code string) error
}

type Service struct {
	profileRepo      Repo
	verificationRepo VerificationRepo
	sms              SMSSender
}

func New(profileRepo Repo, verificationRepo VerificationRepo, sms SMSSender) *Service {
	return &Service{
		profileRepo:      profileRepo,
		verificationRepo: verificationRepo,
		sms:              sms,
	}
}

func (s *Service) GetLandlordProfile(ctx context.Context, userID int) (*domain.LandlordProfile, error) {
	profile, err := s.profileRepo.GetLandlordProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateLandlordProfile persists the changes and refreshes the weighted
// completeness percentage in the same write.
func (s *Service) UpdateLandlordProfile(ctx context.Context, p *domain.LandlordProfile) error {
	p.ProfileCompleteness = ratingservice.ProfileCompleteness(p)
	return s.profileRepo.UpdateLandlordProfile(ctx, p)
}

func (s *Service) GetTenantProfile(ctx context.Context, userID int) (*domain.TenantProfile, error) {
	profile, err := s.profileRepo.GetTenantProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *Service) UpdateTenantProfile(ctx context.Context, p *domain.TenantProfile) error {
	return s.profileRepo.UpdateTenantProfile(ctx, p)
}

func (s *Service) ListPricingTiers(ctx context.Context) ([]domain.PricingTier, error) {
	return s.profileRepo.ListPricingTiers(ctx)
}

func (s *Service) ListLandlords(ctx context.Context) ([]domain.LandlordOverview, error) {
	return s.profileRepo.ListLandlordOverviews(ctx)
}

func (s *Service) ListTenants(ctx context.Context) ([]domain.TenantOverview, error) {
	return s.profileRepo.ListTenantOverviews(ctx)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *Service) profilePhone(ctx context.Context, userID int, userType string) (string, error) {
	switch userType {
	case domain.UserTypeLandlord:
		p, err := s.profileRepo.GetLandlordProfile(ctx, userID)
		if err != nil {
			return "", err
		}
		if p == nil {
			return "", ErrProfileNotFound
		}
		return p.Phone, nil
	default:
		p, err := s.profileRepo.GetTenantProfile(ctx, userID)
		if err != nil {
			return "", err
		}
		if p == nil {
			return "", ErrProfileNotFound
		}
		return p.Phone, nil
	}
}

// SendVerificationCode issues a fresh 6-digit code to the phone number on
// the user's profile. Codes are valid for 5 minutes.
func (s *Service) SendVerificationCode(ctx context.Context, userID int, userType string) error {
	phone, err := s.profilePhone(ctx, userID, userType)
	if err != nil {
		return err
	}
	if phone == "" {
		return ErrNoPhone
	}

	code, err := generateCode()
	if err != nil {
		zap.L().Error("can't generate verification code", zap.Error(err))
		return err
	}

	v := &domain.PhoneVerification{UserID: userID, Code: code}
	if err := s.verificationRepo.CreateVerification(ctx, v); err != nil {
		return err
	}

	if err := s.sms.SendVerificationCode(ctx, phone, code); err != nil {
		zap.L().Error("can't send verification sms", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	zap.L().Info("verification code sent", zap.Int("user_id", userID))
	return nil
}

// VerifyPhone checks the latest issued code and flips the phone-verified
// flag on the caller's profile.
func (s *Service) VerifyPhone(ctx context.Context, userID int, userType, code string) error {
	v, err := s.verificationRepo.FindLatestVerification(ctx, userID)
	if err != nil {
		return err
	}
	if v == nil || v.Code != code {
		return ErrCodeMismatch
	}
	if time.Since(v.CreatedAt) > codeTTL {
		return ErrCodeExpired
	}

	if err := s.verificationRepo.MarkVerified(ctx, v.ID); err != nil {
		return err
	}

	switch userType {
	case domain.UserTypeLandlord:
		p, err := s.profileRepo.GetLandlordProfile(ctx, userID)
		if err != nil || p == nil {
			return ErrProfileNotFound
		}
		p.IsPhoneVerified = true
		return s.UpdateLandlordProfile(ctx, p)
	default:
		p, err := s.profileRepo.GetTenantProfile(ctx, userID)
		if err != nil || p == nil {
			return ErrProfileNotFound
		}
		p.IsPhoneVerified = true
		return s.profileRepo.UpdateTenantProfile(ctx, p)
	}
}
