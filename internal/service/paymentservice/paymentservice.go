package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/metrics"
	"github.com/rojahomes/rentmarket/internal/paynow"
)

const (
	pollInterval = 5 * time.Second
	pollTimeout  = 2 * time.Minute

	// flat fee for generating a lease agreement document
	leaseDocumentFee = 10.00
)

var (
	ErrTierNotFound     = errors.New("pricing tier not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrNotYourPayment   = errors.New("payment belongs to another tenant")
	ErrAlreadyPaid      = errors.New("payment already settled")
	ErrUnknownReference = errors.New("unknown payment reference")
)

type Repo interface {
	CreateSubscriptionPayment(ctx context.Context, p *domain.SubscriptionPayment) (*domain.SubscriptionPayment, error)
	FindSubscriptionPayment(ctx context.Context, reference string) (*domain.SubscriptionPayment, error)
	UpdateSubscriptionPaymentStatus(ctx context.Context, reference, status string) error
	CreateLeaseDocumentPayment(ctx context.Context, p *domain.LeaseDocumentPayment) (*domain.LeaseDocumentPayment, error)
	MarkLeaseDocumentPaid(ctx context.Context, id int, transactionID string, paidAt time.Time) error
}

type RentRepo interface {
	GetRentPayment(ctx context.Context, id int) (*domain.RentPayment, error)
	MarkRentPaid(ctx context.Context, paymentID int, transactionID string, paidAt time.Time) error
}

type ProfileRepo interface {
	GetPricingTier(ctx context.Context, id int) (*domain.PricingTier, error)
	SetSubscription(ctx context.Context, userID, tierID int) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Gateway interface {
	SendMobile(ctx context.Context, reference, email, description string, amount float64, phone, method string) (*paynow.InitResponse, error)
	WaitForPaid(ctx context.Context, pollURL string, interval, timeout time.Duration) (*paynow.StatusResponse, error)
	VerifyWebhook(values url.Values) error
}

type Service struct {
	paymentRepo Repo
	rentRepo    RentRepo
	profileRepo ProfileRepo
	userRepo    UserRepo
	gateway     Gateway
}

func New(paymentRepo Repo, rentRepo RentRepo, profileRepo ProfileRepo, userRepo UserRepo, gateway Gateway) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		rentRepo:    rentRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		gateway:     gateway,
	}
}

func reference(prefix string, id int) string {
	return fmt.Sprintf("%s-%d-%d", prefix, id, time.Now().Unix())
}

// ChoosePlan charges the tier cost to the tenant's mobile wallet. The
// call returns as soon as the gateway accepts the transaction; a
// background poller activates the subscription once the wallet confirms.
func (s *Service) ChoosePlan(ctx context.Context, tenantID, tierID int, phone string) (*domain.SubscriptionPayment, error) {
	tier, err := s.profileRepo.GetPricingTier(ctx, tierID)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, ErrTierNotFound
	}

	user, err := s.userRepo.FindByID(ctx, tenantID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	ref := reference("SUB", tenantID)
	resp, err := s.gateway.SendMobile(ctx, ref, user.Email,
		fmt.Sprintf("%s subscription", tier.Name), tier.Cost, phone, "ecocash")
	if err != nil {
		return nil, err
	}

	payment := &domain.SubscriptionPayment{
		TenantID:  tenantID,
		Reference: ref,
		PollURL:   resp.PollURL,
		Amount:    tier.Cost,
		Phone:     phone,
		Email:     user.Email,
		Status:    paynow.StatusSent,
	}
	if _, err := s.paymentRepo.CreateSubscriptionPayment(ctx, payment); err != nil {
		return nil, err
	}

	go s.confirmSubscription(ref, resp.PollURL, tenantID, tierID)
	return payment, nil
}

func (s *Service) confirmSubscription(ref, pollURL string, tenantID, tierID int) {
	ctx := context.Background()
	status, err := s.gateway.WaitForPaid(ctx, pollURL, pollInterval, pollTimeout)
	if err != nil {
		zap.L().Warn("subscription payment not confirmed", zap.String("reference", ref), zap.Error(err))
		if status != nil {
			_ = s.paymentRepo.UpdateSubscriptionPaymentStatus(ctx, ref, status.Status)
		}
		return
	}

	if err := s.paymentRepo.UpdateSubscriptionPaymentStatus(ctx, ref, status.Status); err != nil {
		return
	}
	if err := s.profileRepo.SetSubscription(ctx, tenantID, tierID); err != nil {
		zap.L().Error("can't activate subscription", zap.Int("tenant_id", tenantID), zap.Error(err))
		return
	}
	metrics.PaymentSettled("subscription")
	zap.L().Info("subscription activated", zap.Int("tenant_id", tenantID), zap.Int("tier_id", tierID))
}

// PayRent charges an open rent payment to the tenant's wallet and settles
// it in the background once confirmed. Settling credits the landlord's
// balance.
func (s *Service) PayRent(ctx context.Context, tenantID, paymentID int, phone string) (string, error) {
	payment, err := s.rentRepo.GetRentPayment(ctx, paymentID)
	if err != nil {
		return "", err
	}
	if payment == nil {
		return "", ErrPaymentNotFound
	}
	if payment.TenantID != tenantID {
		return "", ErrNotYourPayment
	}
	if payment.Status == domain.PaymentStatusPaid {
		return "", ErrAlreadyPaid
	}

	user, err := s.userRepo.FindByID(ctx, tenantID)
	if err != nil || user == nil {
		return "", errors.New("user not found")
	}

	ref := reference("RENT", paymentID)
	resp, err := s.gateway.SendMobile(ctx, ref, user.Email, "Rent Payment", payment.Amount, phone, "ecocash")
	if err != nil {
		return "", err
	}

	go func() {
		bg := context.Background()
		status, err := s.gateway.WaitForPaid(bg, resp.PollURL, pollInterval, pollTimeout)
		if err != nil {
			zap.L().Warn("rent payment not confirmed", zap.String("reference", ref), zap.Error(err))
			return
		}
		if err := s.rentRepo.MarkRentPaid(bg, paymentID, ref, time.Now()); err != nil {
			zap.L().Error("can't settle rent payment", zap.Int("payment_id", paymentID), zap.Error(err))
			return
		}
		metrics.PaymentSettled("rent")
		zap.L().Info("rent payment settled",
			zap.Int("payment_id", paymentID), zap.String("status", status.Status))
	}()

	return ref, nil
}

// PayLeaseDocument charges the flat document fee to the landlord.
func (s *Service) PayLeaseDocument(ctx context.Context, landlordID, propertyID int, phone string) (string, error) {
	user, err := s.userRepo.FindByID(ctx, landlordID)
	if err != nil || user == nil {
		return "", errors.New("user not found")
	}

	payment := &domain.LeaseDocumentPayment{
		LandlordID: landlordID,
		PropertyID: propertyID,
		Amount:     leaseDocumentFee,
		Status:     domain.PaymentStatusPending,
	}
	if _, err := s.paymentRepo.CreateLeaseDocumentPayment(ctx, payment); err != nil {
		return "", err
	}

	ref := reference("LEASE", payment.ID)
	resp, err := s.gateway.SendMobile(ctx, ref, user.Email, "Lease Document Payment", leaseDocumentFee, phone, "ecocash")
	if err != nil {
		return "", err
	}

	go func() {
		bg := context.Background()
		if _, err := s.gateway.WaitForPaid(bg, resp.PollURL, pollInterval, pollTimeout); err != nil {
			zap.L().Warn("lease document payment not confirmed", zap.String("reference", ref), zap.Error(err))
			return
		}
		if err := s.paymentRepo.MarkLeaseDocumentPaid(bg, payment.ID, ref, time.Now()); err != nil {
			zap.L().Error("can't settle lease document payment", zap.Int("payment_id", payment.ID), zap.Error(err))
			return
		}
		metrics.PaymentSettled("lease_document")
	}()

	return ref, nil
}

// HandleWebhook processes the gateway's result callback. The payload is
// authenticated by its keyed hash before anything is updated.
func (s *Service) HandleWebhook(ctx context.Context, values url.Values) error {
	if err := s.gateway.VerifyWebhook(values); err != nil {
		return err
	}

	ref := values.Get("reference")
	status := values.Get("status")

	payment, err := s.paymentRepo.FindSubscriptionPayment(ctx, ref)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrUnknownReference
	}

	if err := s.paymentRepo.UpdateSubscriptionPaymentStatus(ctx, ref, status); err != nil {
		return err
	}
	zap.L().Info("payment status updated from webhook", zap.String("reference", ref), zap.String("status", status))
	return nil
}

// SubscriptionStatus reports the stored state of a payment reference.
func (s *Service) SubscriptionStatus(ctx context.Context, tenantID int, ref string) (*domain.SubscriptionPayment, error) {
	payment, err := s.paymentRepo.FindSubscriptionPayment(ctx, ref)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.TenantID != tenantID {
		return nil, ErrNotYourPayment
	}
	return payment, nil
}
