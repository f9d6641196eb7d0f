package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/dto"
	"github.com/rojahomes/rentmarket/internal/paynow"
	"github.com/rojahomes/rentmarket/internal/service/paymentservice"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/utils"
)

type Service interface {
	ChoosePlan(ctx context.Context, tenantID, tierID int, phone string) (*domain.SubscriptionPayment, error)
	PayRent(ctx context.Context, tenantID, paymentID int, phone string) (string, error)
	PayLeaseDocument(ctx context.Context, landlordID, propertyID int, phone string) (string, error)
	HandleWebhook(ctx context.Context, values url.Values) error
	SubscriptionStatus(ctx context.Context, tenantID int, ref string) (*domain.SubscriptionPayment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ChoosePlan godoc
//
//	@Summary		Subscribe to a plan
//	@Description	Starts a mobile money charge for the chosen tier; the subscription activates once the gateway confirms
//	@Tags			Payment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChoosePlanRequestDTO	true	"Tier and phone"
//	@Success		202		{object}	dto.InitiatePaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Pricing tier not found"
//	@Router			/api/payments/subscription [post]
func (h *PaymentHandler) ChoosePlan(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.ChoosePlanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TierID == 0 || req.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.paymentService.ChoosePlan(r.Context(), userID, req.TierID, req.Phone)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusAccepted, dto.InitiatePaymentResponseDTO{
			Reference: payment.Reference,
			PollURL:   payment.PollURL,
			Status:    payment.Status,
			Message:   "Confirm the payment on your phone",
		})
	case errors.Is(err, paymentservice.ErrTierNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Pricing tier not found")
	case errors.Is(err, paynow.ErrTransactionFailed):
		utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway rejected the transaction")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// PayRent godoc
//
//	@Summary		Pay rent
//	@Description	Charges an open rent payment via mobile money; it settles in the background once confirmed
//	@Tags			Payment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayRentRequestDTO	true	"Payment and phone"
//	@Success		202		{object}	dto.InitiatePaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Payment belongs to another tenant"
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		409		{object}	utils.Response	"Payment already settled"
//	@Router			/api/payments/rent [post]
func (h *PaymentHandler) PayRent(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.PayRentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PaymentID == 0 || req.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ref, err := h.paymentService.PayRent(r.Context(), userID, req.PaymentID, req.Phone)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusAccepted, dto.InitiatePaymentResponseDTO{
			Reference: ref,
			Status:    paynow.StatusSent,
			Message:   "Confirm the payment on your phone",
		})
	case errors.Is(err, paymentservice.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
	case errors.Is(err, paymentservice.ErrNotYourPayment):
		utils.RespondWithError(w, http.StatusForbidden, "Payment belongs to another tenant")
	case errors.Is(err, paymentservice.ErrAlreadyPaid):
		utils.RespondWithError(w, http.StatusConflict, "Payment already settled")
	case errors.Is(err, paynow.ErrTransactionFailed):
		utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway rejected the transaction")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// PayLeaseDocument godoc
//
//	@Summary		Pay the lease document fee
//	@Description	Flat fee charged to the landlord for generating the lease document
//	@Tags			Payment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LeaseDocumentPaymentRequestDTO	true	"Property and phone"
//	@Success		202		{object}	dto.InitiatePaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/payments/lease-document [post]
func (h *PaymentHandler) PayLeaseDocument(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.LeaseDocumentPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PropertyID == 0 || req.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ref, err := h.paymentService.PayLeaseDocument(r.Context(), userID, req.PropertyID, req.Phone)
	if err != nil {
		if errors.Is(err, paynow.ErrTransactionFailed) {
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway rejected the transaction")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.InitiatePaymentResponseDTO{
		Reference: ref,
		Status:    paynow.StatusSent,
		Message:   "Confirm the payment on your phone",
	})
}

// Webhook godoc
//
//	@Summary		Gateway result callback
//	@Description	Receives the payment gateway's form-encoded status update; the payload hash is verified before anything changes
//	@Tags			Payment
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Hash verification failed"
//	@Failure		404	{object}	utils.Response	"Unknown reference"
//	@Router			/api/payments/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form payload")
		return
	}

	err := h.paymentService.HandleWebhook(r.Context(), r.PostForm)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "OK"})
	case errors.Is(err, paynow.ErrInvalidHash):
		utils.RespondWithError(w, http.StatusBadRequest, "Hash verification failed")
	case errors.Is(err, paymentservice.ErrUnknownReference):
		utils.RespondWithError(w, http.StatusNotFound, "Unknown reference")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// SubscriptionStatus godoc
//
//	@Summary		Check a subscription payment
//	@Tags			Payment
//	@Security		BearerAuth
//	@Produce		json
//	@Param			reference	path		string	true	"Payment reference"
//	@Success		200			{object}	dto.PaymentStatusResponseDTO
//	@Failure		403			{object}	utils.Response	"Payment belongs to another tenant"
//	@Failure		404			{object}	utils.Response	"Payment not found"
//	@Router			/api/payments/subscription/{reference} [get]
func (h *PaymentHandler) SubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	ref := chi.URLParam(r, "reference")

	payment, err := h.paymentService.SubscriptionStatus(r.Context(), userID, ref)
	switch {
	case err == nil:
		resp := dto.PaymentStatusResponseDTO{
			Reference: payment.Reference,
			Status:    payment.Status,
			Amount:    payment.Amount,
		}
		if payment.Status == paynow.StatusPaid {
			resp.PaidAt = payment.CreatedAt.Format(time.RFC3339)
		}
		utils.RespondWithJSON(w, http.StatusOK, resp)
	case errors.Is(err, paymentservice.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
	case errors.Is(err, paymentservice.ErrNotYourPayment):
		utils.RespondWithError(w, http.StatusForbidden, "Payment belongs to another tenant")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
