package balanceservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/pkg/validate"
)

const (
	MethodEcocash = "ecocash"
	MethodBank    = "bank"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceNotFound     = errors.New("balance not found")
	ErrWithdrawalNotFound  = errors.New("withdrawal request not found")
	ErrBadPaymentMethod    = errors.New("unsupported payment method")
	ErrMissingPhone        = errors.New("phone number required for mobile withdrawals")
	ErrBadAccountNumber    = errors.New("invalid bank account number")
	ErrMissingBankDetails  = errors.New("bank name and account name required")
	ErrAlreadyProcessed    = errors.New("withdrawal already processed")
)

type BalanceRepo interface {
	Create(ctx context.Context, landlordID int) (*domain.LandlordBalance, error)
	Get(ctx context.Context, landlordID int) (*domain.LandlordBalance, error)
	Credit(ctx context.Context, landlordID int, amount float64) error
	Debit(ctx context.Context, landlordID int, amount float64) (bool, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]domain.WithdrawalRequest, error)
	SumCompleted(ctx context.Context, landlordID int) (float64, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type Service struct {
	balanceRepo    BalanceRepo
	withdrawalRepo WithdrawalRepo
}

func New(balanceRepo BalanceRepo, withdrawalRepo WithdrawalRepo) *Service {
	return &Service{
		balanceRepo:    balanceRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

func (s *Service) CreateBalance(ctx context.Context, landlordID int) (*domain.LandlordBalance, error) {
	return s.balanceRepo.Create(ctx, landlordID)
}

func (s *Service) GetBalance(ctx context.Context, landlordID int) (current, withdrawn float64, err error) {
	balance, err := s.balanceRepo.Get(ctx, landlordID)
	if err != nil {
		return 0, 0, err
	}
	if balance == nil {
		return 0, 0, ErrBalanceNotFound
	}
	withdrawn, err = s.withdrawalRepo.SumCompleted(ctx, landlordID)
	if err != nil {
		return 0, 0, err
	}
	return balance.Amount, withdrawn, nil
}

// Withdraw reserves the amount and files a withdrawal request. The debit
// is a conditional single-statement update, so concurrent requests cannot
// overdraw the balance.
func (s *Service) Withdraw(ctx context.Context, landlordID int, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	switch w.PaymentMethod {
	case MethodEcocash:
		if w.AccountNumber == "" {
			return nil, ErrMissingPhone
		}
	case MethodBank:
		if w.BankName == "" || w.AccountName == "" {
			return nil, ErrMissingBankDetails
		}
		if !validate.CardAccountNumber(w.AccountNumber) {
			return nil, ErrBadAccountNumber
		}
	default:
		return nil, ErrBadPaymentMethod
	}

	ok, err := s.balanceRepo.Debit(ctx, landlordID, w.Amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientBalance
	}

	w.LandlordID = landlordID
	w.Status = domain.WithdrawalStatusPending
	w.Reference = fmt.Sprintf("WDR-%d-%d", landlordID, time.Now().Unix())

	created, err := s.withdrawalRepo.Create(ctx, w)
	if err != nil {
		// refund the reserved amount, the request was never filed
		if creditErr := s.balanceRepo.Credit(ctx, landlordID, w.Amount); creditErr != nil {
			zap.L().Error("can't refund failed withdrawal",
				zap.Int("landlord_id", landlordID), zap.Error(creditErr))
		}
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.Int("landlord_id", landlordID), zap.Float64("amount", w.Amount), zap.String("reference", w.Reference))
	return created, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, landlordID int) ([]domain.WithdrawalRequest, error) {
	return s.withdrawalRepo.ListByLandlord(ctx, landlordID)
}

// ProcessWithdrawal completes or rejects a pending request. Rejection
// returns the reserved funds.
func (s *Service) ProcessWithdrawal(ctx context.Context, withdrawalID int, approve bool) error {
	w, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	if w == nil {
		return ErrWithdrawalNotFound
	}
	if w.Status != domain.WithdrawalStatusPending {
		return ErrAlreadyProcessed
	}

	status := domain.WithdrawalStatusCompleted
	if !approve {
		status = domain.WithdrawalStatusRejected
	}
	if err := s.withdrawalRepo.UpdateStatus(ctx, withdrawalID, status); err != nil {
		return err
	}
	if !approve {
		return s.balanceRepo.Credit(ctx, w.LandlordID, w.Amount)
	}
	return nil
}

func (s *Service) CreditBalance(ctx context.Context, landlordID int, amount float64) error {
	return s.balanceRepo.Credit(ctx, landlordID, amount)
}
