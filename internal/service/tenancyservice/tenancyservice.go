package tenancyservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/pkg/mailer"
)

const (
	ApplicationPending  = "PENDING"
	ApplicationApproved = "APPROVED"
	ApplicationRejected = "REJECTED"
)

var (
	ErrAlreadyApplied      = errors.New("application already submitted")
	ErrApplicationNotFound = errors.New("application not found")
	ErrLeaseNotFound       = errors.New("lease not found")
	ErrNotOwner            = errors.New("property belongs to another landlord")
	ErrBadStatus           = errors.New("unknown application status")
	ErrNotLeaseTenant      = errors.New("lease belongs to another tenant")
)

type Repo interface {
	CreateApplication(ctx context.Context, a *domain.Application) (*domain.Application, error)
	GetApplication(ctx context.Context, id int) (*domain.Application, error)
	FindApplication(ctx context.Context, applicantID, propertyID int) (*domain.Application, error)
	ListApplicationsByProperty(ctx context.Context, propertyID int) ([]domain.Application, error)
	ListApplicationsByApplicant(ctx context.Context, applicantID int) ([]domain.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int, status string) error
	CreateLease(ctx context.Context, l *domain.LeaseAgreement) (*domain.LeaseAgreement, error)
	GetLease(ctx context.Context, id int) (*domain.LeaseAgreement, error)
	ListLeasesByTenant(ctx context.Context, tenantID int) ([]domain.LeaseAgreement, error)
	ListLeasesByProperty(ctx context.Context, propertyID int) ([]domain.LeaseAgreement, error)
	SignLease(ctx context.Context, id int) error
	CreateRentPayment(ctx context.Context, p *domain.RentPayment) (*domain.RentPayment, error)
	GetRentPayment(ctx context.Context, id int) (*domain.RentPayment, error)
	ListRentPaymentsByTenant(ctx context.Context, tenantID int) ([]domain.RentPayment, error)
	ListRentPaymentsByProperty(ctx context.Context, propertyID int) ([]domain.RentPayment, error)
	MarkOverdue(ctx context.Context, now time.Time) ([]domain.RentPayment, error)
}

type PropertyRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Property, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	tenancyRepo  Repo
	propertyRepo PropertyRepo
	userRepo     UserRepo
	mailer       *mailer.Mailer
}

func New(tenancyRepo Repo, propertyRepo PropertyRepo, userRepo UserRepo, m *mailer.Mailer) *Service {
	return &Service{
		tenancyRepo:  tenancyRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		mailer:       m,
	}
}

// Apply records the tenant's interest and notifies the landlord.
func (s *Service) Apply(ctx context.Context, applicantID, propertyID int) (*domain.Application, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.New("property not found")
	}

	existing, err := s.tenancyRepo.FindApplication(ctx, applicantID, propertyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	application, err := s.tenancyRepo.CreateApplication(ctx, &domain.Application{
		ApplicantID: applicantID,
		PropertyID:  propertyID,
	})
	if err != nil {
		return nil, err
	}

	if owner, err := s.userRepo.FindByID(ctx, property.OwnerID); err == nil && owner != nil {
		s.mailer.Send([]string{owner.Email},
			"New application for your property",
			fmt.Sprintf("Hi %s,\n\nA tenant has applied for %q. Log in to review the application.", owner.FirstName, property.Title))
	}
	return application, nil
}

// Decide lets the property owner approve or reject an application.
func (s *Service) Decide(ctx context.Context, landlordID, applicationID int, status string) error {
	if status != ApplicationApproved && status != ApplicationRejected {
		return ErrBadStatus
	}

	application, err := s.tenancyRepo.GetApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	if application == nil {
		return ErrApplicationNotFound
	}

	property, err := s.propertyRepo.GetByID(ctx, application.PropertyID)
	if err != nil {
		return err
	}
	if property == nil || property.OwnerID != landlordID {
		return ErrNotOwner
	}

	if err := s.tenancyRepo.UpdateApplicationStatus(ctx, applicationID, status); err != nil {
		return err
	}

	if applicant, err := s.userRepo.FindByID(ctx, application.ApplicantID); err == nil && applicant != nil {
		s.mailer.Send([]string{applicant.Email},
			"Update on your application",
			fmt.Sprintf("Hi %s,\n\nYour application for %q was %s.", applicant.FirstName, property.Title, status))
	}
	return nil
}

func (s *Service) ListApplicationsForProperty(ctx context.Context, landlordID, propertyID int) ([]domain.Application, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil || property.OwnerID != landlordID {
		return nil, ErrNotOwner
	}
	return s.tenancyRepo.ListApplicationsByProperty(ctx, propertyID)
}

func (s *Service) ListMyApplications(ctx context.Context, applicantID int) ([]domain.Application, error) {
	return s.tenancyRepo.ListApplicationsByApplicant(ctx, applicantID)
}

func (s *Service) CreateLease(ctx context.Context, landlordID int, l *domain.LeaseAgreement) (*domain.LeaseAgreement, error) {
	property, err := s.propertyRepo.GetByID(ctx, l.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil || property.OwnerID != landlordID {
		return nil, ErrNotOwner
	}
	return s.tenancyRepo.CreateLease(ctx, l)
}

func (s *Service) GetLease(ctx context.Context, id int) (*domain.LeaseAgreement, error) {
	lease, err := s.tenancyRepo.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, ErrLeaseNotFound
	}
	return lease, nil
}

// SignLease is the tenant's acceptance of the agreement.
func (s *Service) SignLease(ctx context.Context, tenantID, leaseID int) error {
	lease, err := s.GetLease(ctx, leaseID)
	if err != nil {
		return err
	}
	if lease.TenantID != tenantID {
		return ErrNotLeaseTenant
	}
	return s.tenancyRepo.SignLease(ctx, leaseID)
}

func (s *Service) ListLeasesByTenant(ctx context.Context, tenantID int) ([]domain.LeaseAgreement, error) {
	return s.tenancyRepo.ListLeasesByTenant(ctx, tenantID)
}

func (s *Service) ListLeasesByProperty(ctx context.Context, landlordID, propertyID int) ([]domain.LeaseAgreement, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil || property.OwnerID != landlordID {
		return nil, ErrNotOwner
	}
	return s.tenancyRepo.ListLeasesByProperty(ctx, propertyID)
}

func (s *Service) ListRentPaymentsByTenant(ctx context.Context, tenantID int) ([]domain.RentPayment, error) {
	return s.tenancyRepo.ListRentPaymentsByTenant(ctx, tenantID)
}

func (s *Service) ListRentPaymentsByProperty(ctx context.Context, landlordID, propertyID int) ([]domain.RentPayment, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil || property.OwnerID != landlordID {
		return nil, ErrNotOwner
	}
	return s.tenancyRepo.ListRentPaymentsByProperty(ctx, propertyID)
}

// SweepOverduePayments flips pending payments past their due date to
// OVERDUE and mails the affected tenants. Run from the scheduler.
func (s *Service) SweepOverduePayments(ctx context.Context) (int, error) {
	overdue, err := s.tenancyRepo.MarkOverdue(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for _, payment := range overdue {
		tenant, err := s.userRepo.FindByID(ctx, payment.TenantID)
		if err != nil || tenant == nil {
			continue
		}
		s.mailer.Send([]string{tenant.Email},
			"Rent payment overdue",
			fmt.Sprintf("Hi %s,\n\nYour rent payment of %.2f due on %s is overdue. Please settle it as soon as possible.",
				tenant.FirstName, payment.Amount, payment.DueDate.Format("2006-01-02")))
	}

	if len(overdue) > 0 {
		zap.L().Info("overdue payments swept", zap.Int("count", len(overdue)))
	}
	return len(overdue), nil
}
