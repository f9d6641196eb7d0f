package tenancy

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
	"github.com/rojahomes/rentmarket/internal/service/tenancyservice"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Apply(ctx context.Context, applicantID, propertyID int) (*domain.Application, error)
	Decide(ctx context.Context, landlordID, applicationID int, status string) error
	ListApplicationsForProperty(ctx context.Context, landlordID, propertyID int) ([]domain.Application, error)
	ListMyApplications(ctx context.Context, applicantID int) ([]domain.Application, error)
	CreateLease(ctx context.Context, landlordID int, l *domain.LeaseAgreement) (*domain.LeaseAgreement, error)
	GetLease(ctx context.Context, id int) (*domain.LeaseAgreement, error)
	SignLease(ctx context.Context, tenantID, leaseID int) error
	ListLeasesByTenant(ctx context.Context, tenantID int) ([]domain.LeaseAgreement, error)
	ListLeasesByProperty(ctx context.Context, landlordID, propertyID int) ([]domain.LeaseAgreement, error)
	ListRentPaymentsByTenant(ctx context.Context, tenantID int) ([]domain.RentPayment, error)
	ListRentPaymentsByProperty(ctx context.Context, landlordID, propertyID int) ([]domain.RentPayment, error)
}

type TenancyHandler struct {
	tenancyService Service
}

func New(tenancyService Service) *TenancyHandler {
	return &TenancyHandler{tenancyService: tenancyService}
}

// Apply godoc
//
//	@Summary		Apply for a property
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateApplicationRequestDTO	true	"Target property"
//	@Success		201		{object}	dto.ApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Property not found"
//	@Failure		409		{object}	utils.Response	"Application already submitted"
//	@Router			/api/applications [post]
func (h *TenancyHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.CreateApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PropertyID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, err := h.tenancyService.Apply(r.Context(), userID, req.PropertyID)
	if err != nil {
		if errors.Is(err, tenancyservice.ErrAlreadyApplied) {
			utils.RespondWithError(w, http.StatusConflict, "Application already submitted")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toApplicationDTO(app))
}

// Decide godoc
//
//	@Summary		Approve or reject an application
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Application ID"
//	@Param			request	body		dto.DecideApplicationRequestDTO	true	"APPROVED or REJECTED"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		403		{object}	utils.Response	"Not the property owner"
//	@Failure		404		{object}	utils.Response	"Application not found"
//	@Router			/api/applications/{id}/decision [put]
func (h *TenancyHandler) Decide(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	applicationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req dto.DecideApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.tenancyService.Decide(r.Context(), userID, applicationID, req.Status)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Application " + req.Status})
	case errors.Is(err, tenancyservice.ErrApplicationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Application not found")
	case errors.Is(err, tenancyservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, "Not the property owner")
	case errors.Is(err, tenancyservice.ErrBadStatus):
		utils.RespondWithError(w, http.StatusBadRequest, "Status must be APPROVED or REJECTED")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListApplicationsForProperty godoc
//
//	@Summary		List applications for a property
//	@Description	Owner only
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{array}		dto.ApplicationResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the property owner"
//	@Router			/api/properties/{id}/applications [get]
func (h *TenancyHandler) ListApplicationsForProperty(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	apps, err := h.tenancyService.ListApplicationsForProperty(r.Context(), userID, propertyID)
	if err != nil {
		respondTenancyError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toApplicationDTOs(apps))
}

// ListMyApplications godoc
//
//	@Summary		List own applications
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ApplicationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/applications [get]
func (h *TenancyHandler) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	apps, err := h.tenancyService.ListMyApplications(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toApplicationDTOs(apps))
}

// CreateLease godoc
//
//	@Summary		Create a lease agreement
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateLeaseRequestDTO	true	"Lease details"
//	@Success		201		{object}	dto.LeaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not the property owner"
//	@Router			/api/leases [post]
func (h *TenancyHandler) CreateLease(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.CreateLeaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid start date")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil || !end.After(start) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end date")
		return
	}
	if req.RentAmount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Rent amount must be positive")
		return
	}

	lease := &domain.LeaseAgreement{
		TenantID:   req.TenantID,
		PropertyID: req.PropertyID,
		StartDate:  start,
		EndDate:    end,
		RentAmount: req.RentAmount,
	}
	created, err := h.tenancyService.CreateLease(r.Context(), userID, lease)
	if err != nil {
		respondTenancyError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toLeaseDTO(created))
}

// GetLease godoc
//
//	@Summary		Get a lease agreement
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Lease ID"
//	@Success		200	{object}	dto.LeaseResponseDTO
//	@Failure		404	{object}	utils.Response	"Lease not found"
//	@Router			/api/leases/{id} [get]
func (h *TenancyHandler) GetLease(w http.ResponseWriter, r *http.Request) {
	leaseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lease ID")
		return
	}

	lease, err := h.tenancyService.GetLease(r.Context(), leaseID)
	if err != nil {
		if errors.Is(err, tenancyservice.ErrLeaseNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Lease not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLeaseDTO(lease))
}

// SignLease godoc
//
//	@Summary		Sign a lease agreement
//	@Description	Only the tenant named on the lease can sign it
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Lease ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Lease belongs to another tenant"
//	@Failure		404	{object}	utils.Response	"Lease not found"
//	@Router			/api/leases/{id}/sign [post]
func (h *TenancyHandler) SignLease(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	leaseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lease ID")
		return
	}

	err = h.tenancyService.SignLease(r.Context(), userID, leaseID)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Lease signed"})
	case errors.Is(err, tenancyservice.ErrLeaseNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Lease not found")
	case errors.Is(err, tenancyservice.ErrNotLeaseTenant):
		utils.RespondWithError(w, http.StatusForbidden, "Lease belongs to another tenant")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListMyLeases godoc
//
//	@Summary		List own leases
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LeaseResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/leases [get]
func (h *TenancyHandler) ListMyLeases(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	leases, err := h.tenancyService.ListLeasesByTenant(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLeaseDTOs(leases))
}

// ListLeasesForProperty godoc
//
//	@Summary		List leases for a property
//	@Description	Owner only
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{array}		dto.LeaseResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the property owner"
//	@Router			/api/properties/{id}/leases [get]
func (h *TenancyHandler) ListLeasesForProperty(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	leases, err := h.tenancyService.ListLeasesByProperty(r.Context(), userID, propertyID)
	if err != nil {
		respondTenancyError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLeaseDTOs(leases))
}

// ListMyRentPayments godoc
//
//	@Summary		List own rent payments
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RentPaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/rent-payments [get]
func (h *TenancyHandler) ListMyRentPayments(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	payments, err := h.tenancyService.ListRentPaymentsByTenant(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRentPaymentDTOs(payments))
}

// ListRentPaymentsForProperty godoc
//
//	@Summary		List rent payments for a property
//	@Description	Owner only
//	@Tags			Tenancy
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{array}		dto.RentPaymentResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the property owner"
//	@Router			/api/properties/{id}/rent-payments [get]
func (h *TenancyHandler) ListRentPaymentsForProperty(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	payments, err := h.tenancyService.ListRentPaymentsByProperty(r.Context(), userID, propertyID)
	if err != nil {
		respondTenancyError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRentPaymentDTOs(payments))
}

func respondTenancyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tenancyservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, "Not the property owner")
	case errors.Is(err, tenancyservice.ErrApplicationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Application not found")
	case errors.Is(err, tenancyservice.ErrLeaseNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Lease not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toApplicationDTO(a *domain.Application) dto.ApplicationResponseDTO {
	return dto.ApplicationResponseDTO{
		ID:          a.ID,
		PropertyID:  a.PropertyID,
		ApplicantID: a.ApplicantID,
		Status:      a.Status,
		AppliedAt:   a.ApplicationDate.Format(time.RFC3339),
	}
}

func toApplicationDTOs(apps []domain.Application) []dto.ApplicationResponseDTO {
	resp := make([]dto.ApplicationResponseDTO, 0, len(apps))
	for i := range apps {
		resp = append(resp, toApplicationDTO(&apps[i]))
	}
	return resp
}

func toLeaseDTO(l *domain.LeaseAgreement) dto.LeaseResponseDTO {
	return dto.LeaseResponseDTO{
		ID:         l.ID,
		PropertyID: l.PropertyID,
		TenantID:   l.TenantID,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		RentAmount: l.RentAmount,
		IsSigned:   l.IsSigned,
	}
}

func toLeaseDTOs(leases []domain.LeaseAgreement) []dto.LeaseResponseDTO {
	resp := make([]dto.LeaseResponseDTO, 0, len(leases))
	for i := range leases {
		resp = append(resp, toLeaseDTO(&leases[i]))
	}
	return resp
}

func toRentPaymentDTOs(payments []domain.RentPayment) []dto.RentPaymentResponseDTO {
	resp := make([]dto.RentPaymentResponseDTO, 0, len(payments))
	for _, p := range payments {
		d := dto.RentPaymentResponseDTO{
			ID:         p.ID,
			PropertyID: p.PropertyID,
			TenantID:   p.TenantID,
			Amount:     p.Amount,
			DueDate:    p.DueDate.Format(dateLayout),
			Status:     p.Status,
		}
		if p.PaymentDate != nil {
			d.PaymentDate = p.PaymentDate.Format(time.RFC3339)
		}
		resp = append(resp, d)
	}
	return resp
}
