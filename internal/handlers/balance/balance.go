package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/dto"
	"github.com/rojahomes/rentmarket/internal/service/balanceservice"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, landlordID int) (current, withdrawn float64, err error)
	Withdraw(ctx context.Context, landlordID int, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetWithdrawals(ctx context.Context, landlordID int) ([]domain.WithdrawalRequest, error)
	ProcessWithdrawal(ctx context.Context, withdrawalID int, approve bool) error
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// GetBalance godoc
//
//	@Summary		Get the landlord balance
//	@Description	Current balance plus the lifetime total of completed withdrawals
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Balance not found"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	current, withdrawn, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, balanceservice.ErrBalanceNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Balance not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Current: current, Withdrawn: withdrawn})
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Debits the balance and opens a withdrawal request for manual processing
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Amount and payout details"
//	@Success		201		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payout details"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Router			/api/balance/withdraw [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request := &domain.WithdrawalRequest{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	}
	if req.PaymentMethod == balanceservice.MethodEcocash && req.AccountNumber == "" {
		request.AccountNumber = req.Phone
	}

	created, err := h.balanceService.Withdraw(r.Context(), userID, request)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusCreated, toWithdrawalDTO(created))
	case errors.Is(err, balanceservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient balance")
	case errors.Is(err, balanceservice.ErrBadPaymentMethod):
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported payment method")
	case errors.Is(err, balanceservice.ErrMissingPhone):
		utils.RespondWithError(w, http.StatusBadRequest, "Phone number required for mobile withdrawals")
	case errors.Is(err, balanceservice.ErrBadAccountNumber):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bank account number")
	case errors.Is(err, balanceservice.ErrMissingBankDetails):
		utils.RespondWithError(w, http.StatusBadRequest, "Bank name and account name required")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetWithdrawals godoc
//
//	@Summary		List own withdrawals
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/balance/withdrawals [get]
func (h *BalanceHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	withdrawals, err := h.balanceService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.WithdrawalResponseDTO, 0, len(withdrawals))
	for i := range withdrawals {
		resp = append(resp, toWithdrawalDTO(&withdrawals[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ProcessWithdrawal godoc
//
//	@Summary		Process a withdrawal request
//	@Description	Admin only: approve pays out, reject refunds the landlord balance
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int		true	"Withdrawal ID"
//	@Param			action	query		string	true	"approve or reject"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Unknown action"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Withdrawal already processed"
//	@Router			/api/admin/withdrawals/{id} [put]
func (h *BalanceHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal ID")
		return
	}

	action := r.URL.Query().Get("action")
	if action != "approve" && action != "reject" {
		utils.RespondWithError(w, http.StatusBadRequest, "Action must be approve or reject")
		return
	}

	err = h.balanceService.ProcessWithdrawal(r.Context(), withdrawalID, action == "approve")
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Withdrawal " + action + "d"})
	case errors.Is(err, balanceservice.ErrWithdrawalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Withdrawal not found")
	case errors.Is(err, balanceservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, "Withdrawal already processed")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toWithdrawalDTO(wr *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	d := dto.WithdrawalResponseDTO{
		ID:            wr.ID,
		Reference:     wr.Reference,
		Amount:        wr.Amount,
		PaymentMethod: wr.PaymentMethod,
		Status:        wr.Status,
		RequestedAt:   wr.RequestedAt.Format(time.RFC3339),
	}
	if wr.ProcessedAt != nil {
		d.ProcessedAt = wr.ProcessedAt.Format(time.RFC3339)
	}
	return d
}
