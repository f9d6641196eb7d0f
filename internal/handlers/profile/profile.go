package profile

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
	"github.com/rojahomes/rentmarket/internal/service/profileservice"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/utils"
)

type Service interface {
	GetLandlordProfile(ctx context.Context, userID int) (*domain.LandlordProfile, error)
	UpdateLandlordProfile(ctx context.Context, p *domain.LandlordProfile) error
	GetTenantProfile(ctx context.Context, userID int) (*domain.TenantProfile, error)
	UpdateTenantProfile(ctx context.Context, p *domain.TenantProfile) error
	ListPricingTiers(ctx context.Context) ([]domain.PricingTier, error)
	ListLandlords(ctx context.Context) ([]domain.LandlordOverview, error)
	ListTenants(ctx context.Context) ([]domain.TenantOverview, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int) error
}

type BalanceService interface {
	GetBalance(ctx context.Context, landlordID int) (current, withdrawn float64, err error)
}

type ProfileHandler struct {
	profileService Service
	userService    UserService
	balanceService BalanceService
}

func New(profileService Service, userService UserService, balanceService BalanceService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		userService:    userService,
		balanceService: balanceService,
	}
}

// GetLandlordProfile godoc
//
//	@Summary		Get the landlord profile
//	@Description	Return the caller's landlord profile with completeness, rating and balance
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LandlordProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Router			/api/profile/landlord [get]
func (h *ProfileHandler) GetLandlordProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	profile, err := h.profileService.GetLandlordProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profileservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.LandlordProfileResponseDTO{
		UserID:                userID,
		FullName:              user.FullName(),
		Email:                 user.Email,
		Phone:                 profile.Phone,
		AlternatePhone:        profile.AlternatePhone,
		EmergencyContactName:  profile.EmergencyContactName,
		EmergencyContactPhone: profile.EmergencyContactPhone,
		AdditionalNotes:       profile.AdditionalNotes,
		IDNumber:              profile.IDNumber,
		MaritalStatus:         profile.MaritalStatus,
		IsProfileComplete:     profile.IsProfileComplete,
		IsVerified:            profile.IsVerified,
		IsPhoneVerified:       profile.IsPhoneVerified,
		ProfileCompleteness:   profile.ProfileCompleteness,
	}
	if profile.CurrentRating > 0 {
		rating := profile.CurrentRating
		resp.CurrentRating = &rating
	}
	if current, _, err := h.balanceService.GetBalance(r.Context(), userID); err == nil {
		resp.Balance = current
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateLandlordProfile godoc
//
//	@Summary		Update the landlord profile
//	@Description	Apply partial updates to the caller's landlord profile; completeness is recomputed
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateLandlordProfileRequestDTO	true	"Fields to update"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Profile not found"
//	@Router			/api/profile/landlord [put]
func (h *ProfileHandler) UpdateLandlordProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.UpdateLandlordProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profileService.GetLandlordProfile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	applyLandlordUpdates(profile, &req)
	if err := h.profileService.UpdateLandlordProfile(r.Context(), profile); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Profile updated"})
}

func applyLandlordUpdates(p *domain.LandlordProfile, req *dto.UpdateLandlordProfileRequestDTO) {
	if req.DateOfBirth != nil {
		if dob, err := time.Parse("2006-01-02", *req.DateOfBirth); err == nil {
			p.DateOfBirth = &dob
		}
	}
	setString(&p.Phone, req.Phone)
	setString(&p.AlternatePhone, req.AlternatePhone)
	setString(&p.EmergencyContactName, req.EmergencyContactName)
	setString(&p.EmergencyContactPhone, req.EmergencyContactPhone)
	setString(&p.AdditionalNotes, req.AdditionalNotes)
	setString(&p.IDNumber, req.IDNumber)
	setString(&p.IDImage, req.IDImage)
	setString(&p.ProfileImage, req.ProfileImage)
	setString(&p.ProofOfResidence, req.ProofOfResidence)
	setString(&p.MaritalStatus, req.MaritalStatus)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// GetTenantProfile godoc
//
//	@Summary		Get the tenant profile
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TenantProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Router			/api/profile/tenant [get]
func (h *ProfileHandler) GetTenantProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	profile, err := h.profileService.GetTenantProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profileservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.TenantProfileResponseDTO{
		UserID:             userID,
		FullName:           user.FullName(),
		Email:              user.Email,
		Phone:              profile.Phone,
		Occupation:         profile.Occupation,
		Employer:           profile.Employer,
		PreferredLeaseTerm: profile.PreferredLeaseTerm,
		MaxRent:            profile.MaxRent,
		MaritalStatus:      profile.MaritalStatus,
		IsProfileComplete:  profile.IsProfileComplete,
		IsPhoneVerified:    profile.IsPhoneVerified,
		PricingTier:        profile.SubscriptionPlan,
		NumProperties:      profile.NumProperties,
		SubscriptionPlan:   profile.SubscriptionPlan,
		SubscriptionStatus: profile.SubscriptionStatus,
	}
	if profile.CurrentRating > 0 {
		rating := profile.CurrentRating
		resp.CurrentRating = &rating
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateTenantProfile godoc
//
//	@Summary		Update the tenant profile
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateTenantProfileRequestDTO	true	"Fields to update"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Profile not found"
//	@Router			/api/profile/tenant [put]
func (h *ProfileHandler) UpdateTenantProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.UpdateTenantProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profileService.GetTenantProfile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	if req.DateOfBirth != nil {
		if dob, err := time.Parse("2006-01-02", *req.DateOfBirth); err == nil {
			profile.DateOfBirth = &dob
		}
	}
	setString(&profile.Phone, req.Phone)
	setString(&profile.Occupation, req.Occupation)
	setString(&profile.Employer, req.Employer)
	setString(&profile.EmergencyContactName, req.EmergencyContactName)
	setString(&profile.EmergencyContactPhone, req.EmergencyContactPhone)
	setString(&profile.AdditionalNotes, req.AdditionalNotes)
	setString(&profile.IDNumber, req.IDNumber)
	setString(&profile.IDImage, req.IDImage)
	setString(&profile.ProfileImage, req.ProfileImage)
	setString(&profile.ProofOfEmployment, req.ProofOfEmployment)
	setString(&profile.MaritalStatus, req.MaritalStatus)
	if req.PreferredLeaseTerm != nil {
		profile.PreferredLeaseTerm = *req.PreferredLeaseTerm
	}
	if req.MaxRent != nil {
		profile.MaxRent = *req.MaxRent
	}

	if err := h.profileService.UpdateTenantProfile(r.Context(), profile); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Profile updated"})
}

// DeleteProfile godoc
//
//	@Summary		Delete the account
//	@Description	Removes the caller's account together with its profile, listings and history
//	@Tags			Profile
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/profile [delete]
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PublicLandlordProfile godoc
//
//	@Summary		Public landlord profile
//	@Description	Trimmed profile shown to anyone browsing the landlord's listings
//	@Tags			Profile
//	@Produce		json
//	@Param			id	path		int	true	"Landlord user ID"
//	@Success		200	{object}	dto.PublicLandlordProfileResponseDTO
//	@Failure		404	{object}	utils.Response	"Landlord not found"
//	@Router			/api/landlords/{id} [get]
func (h *ProfileHandler) PublicLandlordProfile(w http.ResponseWriter, r *http.Request) {
	landlordID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid landlord ID")
		return
	}

	user, err := h.userService.GetUser(r.Context(), landlordID)
	if err != nil || user == nil || user.UserType != domain.UserTypeLandlord {
		utils.RespondWithError(w, http.StatusNotFound, "Landlord not found")
		return
	}

	profile, err := h.profileService.GetLandlordProfile(r.Context(), landlordID)
	if err != nil {
		if errors.Is(err, profileservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Landlord not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.PublicLandlordProfileResponseDTO{
		UserID:              landlordID,
		FullName:            user.FullName(),
		IsVerified:          profile.IsVerified,
		IsPhoneVerified:     profile.IsPhoneVerified,
		ProfileCompleteness: profile.ProfileCompleteness,
	}
	if profile.CurrentRating > 0 {
		rating := profile.CurrentRating
		resp.CurrentRating = &rating
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListLandlords godoc
//
//	@Summary		List landlord accounts
//	@Description	Admin only
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LandlordOverviewResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/landlords [get]
func (h *ProfileHandler) ListLandlords(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.profileService.ListLandlords(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.LandlordOverviewResponseDTO, 0, len(overviews))
	for _, o := range overviews {
		resp = append(resp, dto.LandlordOverviewResponseDTO{
			UserID:              o.UserID,
			FullName:            o.FirstName + " " + o.LastName,
			Email:               o.Email,
			Phone:               o.Phone,
			IsVerified:          o.IsVerified,
			IsPhoneVerified:     o.IsPhoneVerified,
			CurrentRating:       o.CurrentRating,
			ProfileCompleteness: o.ProfileCompleteness,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListTenants godoc
//
//	@Summary		List tenant accounts
//	@Description	Admin only
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TenantOverviewResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/tenants [get]
func (h *ProfileHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.profileService.ListTenants(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TenantOverviewResponseDTO, 0, len(overviews))
	for _, o := range overviews {
		resp = append(resp, dto.TenantOverviewResponseDTO{
			UserID:             o.UserID,
			FullName:           o.FirstName + " " + o.LastName,
			Email:              o.Email,
			Phone:              o.Phone,
			CurrentRating:      o.CurrentRating,
			SubscriptionPlan:   o.SubscriptionPlan,
			SubscriptionStatus: o.SubscriptionStatus,
			NumProperties:      o.NumProperties,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListPricingTiers godoc
//
//	@Summary		List subscription tiers
//	@Description	Public list of the available tenant subscription plans
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{array}		dto.PricingTierResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pricing-tiers [get]
func (h *ProfileHandler) ListPricingTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.profileService.ListPricingTiers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.PricingTierResponseDTO, 0, len(tiers))
	for _, t := range tiers {
		resp = append(resp, dto.PricingTierResponseDTO{
			ID:               t.ID,
			Name:             t.Name,
			Description:      t.Description,
			Cost:             t.Cost,
			MaxProperties:    t.MaxProperties,
			MaxPropertyPrice: t.MaxPropertyPrice,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
