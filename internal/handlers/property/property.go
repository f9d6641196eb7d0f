package property

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
	"github.com/rojahomes/rentmarket/internal/service/propertyservice"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, p *domain.Property, generateDescription bool, imageURLs []string) (*domain.Property, error)
	Get(ctx context.Context, id int) (*domain.Property, error)
	Update(ctx context.Context, ownerID int, p *domain.Property) error
	Delete(ctx context.Context, ownerID, propertyID int) error
	List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.Property, error)
	ListPendingApproval(ctx context.Context) ([]domain.Property, error)
	Approve(ctx context.Context, propertyID int) error
	Disapprove(ctx context.Context, propertyID int) error
	ListAccessible(ctx context.Context, tenantID int) ([]domain.Property, error)
	CurrentProperty(ctx context.Context, tenantID int) (*domain.Property, error)
	ListImages(ctx context.Context, propertyID int) ([]domain.PropertyImage, error)
	AddImage(ctx context.Context, ownerID, propertyID int, url string) (*domain.PropertyImage, error)
	DeleteImage(ctx context.Context, ownerID, propertyID, imageID int) error
	ListTypes(ctx context.Context) ([]domain.HouseType, error)
	ListLocations(ctx context.Context) ([]domain.HouseLocation, error)
	CreateType(ctx context.Context, name string) (*domain.HouseType, error)
	DeleteType(ctx context.Context, id int) error
	CreateLocation(ctx context.Context, name, city string) (*domain.HouseLocation, error)
	DeleteLocation(ctx context.Context, id int) error
	RequestAccess(ctx context.Context, propertyID, tenantID int) error
	HasAccess(ctx context.Context, propertyID, tenantID int) (bool, error)
	ListAccess(ctx context.Context, ownerID, propertyID int) ([]domain.PropertyAccess, error)
	RevokeAccess(ctx context.Context, ownerID, propertyID, tenantID int) error
	SetCurrentTenant(ctx context.Context, ownerID, propertyID, tenantID int) error
	ClearCurrentTenant(ctx context.Context, ownerID, propertyID int) error
}

type PropertyHandler struct {
	propertyService Service
}

func New(propertyService Service) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create godoc
//
//	@Summary		Create a property listing
//	@Description	Creates a listing for the authenticated landlord; it stays hidden until approved
//	@Tags			Property
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePropertyRequestDTO	true	"Property details"
//	@Success		201		{object}	dto.PropertyResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/properties [post]
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.CreatePropertyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Address == "" || req.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Title, address and a positive price are required")
		return
	}

	p := &domain.Property{
		OwnerID:             userID,
		Title:               req.Title,
		Description:         req.Description,
		Address:             req.Address,
		Price:               req.Price,
		Deposit:             req.Deposit,
		Bedrooms:            req.Bedrooms,
		Bathrooms:           req.Bathrooms,
		Area:                req.Area,
		PreferredLeaseTerm:  req.PreferredLeaseTerm,
		AcceptsPets:         req.AcceptsPets,
		PetDeposit:          req.PetDeposit,
		AcceptsSmokers:      req.AcceptsSmokers,
		Pool:                req.Pool,
		Garden:              req.Garden,
		AcceptsInAppPayment: req.AcceptsInAppPayment,
		IsAvailable:         true,
	}
	if req.TypeID > 0 {
		p.TypeID = &req.TypeID
	}
	if req.LocationID > 0 {
		p.LocationID = &req.LocationID
	}

	created, err := h.propertyService.Create(r.Context(), p, req.GenerateDescription, req.ImageURLs)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.toResponse(r.Context(), created, true))
}

// Get godoc
//
//	@Summary		Get a property
//	@Tags			Property
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	dto.PropertyResponseDTO
//	@Failure		404	{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id} [get]
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	p, err := h.propertyService.Get(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, propertyservice.ErrPropertyNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Property not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	userID, _ := r.Context().Value(pkgauth.UserIDKey).(int)
	userType, _ := r.Context().Value(pkgauth.UserTypeKey).(string)
	resp := h.toResponse(r.Context(), p, h.canSeeAddress(r.Context(), p, userID, userType))
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// The exact address is only shown to the owner, to tenants who unlocked the
// property through their subscription quota and to admins.
func (h *PropertyHandler) canSeeAddress(ctx context.Context, p *domain.Property, userID int, userType string) bool {
	switch {
	case userType == domain.UserTypeAdmin:
		return true
	case p.OwnerID == userID:
		return true
	case userType == domain.UserTypeTenant:
		ok, err := h.propertyService.HasAccess(ctx, p.ID, userID)
		return err == nil && ok
	}
	return false
}

// List godoc
//
//	@Summary		List approved properties
//	@Description	Public listing with optional filters, ordered by overall rating
//	@Tags			Property
//	@Produce		json
//	@Param			location_id	query		int		false	"Location ID"
//	@Param			type_id		query		int		false	"House type ID"
//	@Param			min_price	query		number	false	"Minimum monthly price"
//	@Param			max_price	query		number	false	"Maximum monthly price"
//	@Param			bedrooms	query		int		false	"Minimum bedrooms"
//	@Param			bathrooms	query		int		false	"Minimum bathrooms"
//	@Param			pets		query		bool	false	"Pets allowed"
//	@Param			smokers		query		bool	false	"Smokers allowed"
//	@Param			pool		query		bool	false	"Has a pool"
//	@Param			garden		query		bool	false	"Has a garden"
//	@Param			search		query		string	false	"Text search over title, description and address"
//	@Param			show_all	query		bool	false	"Include unapproved and taken listings"
//	@Param			limit		query		int		false	"Page size"
//	@Success		200			{array}		dto.PropertyResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/properties [get]
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.PropertyFilter{
		LocationID: atoiOrZero(q.Get("location_id")),
		TypeID:     atoiOrZero(q.Get("type_id")),
		Bedrooms:   atoiOrZero(q.Get("bedrooms")),
		Bathrooms:  atoiOrZero(q.Get("bathrooms")),
		Pets:       boolParam(q.Get("pets")),
		Smokers:    boolParam(q.Get("smokers")),
		Pool:       boolParam(q.Get("pool")),
		Garden:     boolParam(q.Get("garden")),
		Search:     q.Get("search"),
		ShowAll:    q.Get("show_all") == "true",
		Limit:      atoiOrZero(q.Get("limit")),
	}
	filter.MinPrice, _ = strconv.ParseFloat(q.Get("min_price"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(q.Get("max_price"), 64)

	properties, err := h.propertyService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponseList(r.Context(), properties, false))
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func boolParam(s string) *bool {
	if s == "" {
		return nil
	}
	v := s == "true"
	return &v
}

// ListMine godoc
//
//	@Summary		List own properties
//	@Tags			Property
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PropertyResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/properties/mine [get]
func (h *PropertyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	properties, err := h.propertyService.ListByOwner(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponseList(r.Context(), properties, true))
}

// Update godoc
//
//	@Summary		Update a property
//	@Tags			Property
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Property ID"
//	@Param			request	body		dto.UpdatePropertyRequestDTO	true	"Fields to update"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not the property owner"
//	@Failure		404		{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id} [put]
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var req dto.UpdatePropertyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.propertyService.Get(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, propertyservice.ErrPropertyNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Property not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	applyUpdates(p, &req)
	if err := h.propertyService.Update(r.Context(), userID, p); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Property updated"})
}

func applyUpdates(p *domain.Property, req *dto.UpdatePropertyRequestDTO) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Deposit != nil {
		p.Deposit = *req.Deposit
	}
	if req.Bedrooms != nil {
		p.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		p.Bathrooms = *req.Bathrooms
	}
	if req.Area != nil {
		p.Area = *req.Area
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if req.AcceptsPets != nil {
		p.AcceptsPets = *req.AcceptsPets
	}
	if req.AcceptsSmokers != nil {
		p.AcceptsSmokers = *req.AcceptsSmokers
	}
	if req.Pool != nil {
		p.Pool = *req.Pool
	}
	if req.Garden != nil {
		p.Garden = *req.Garden
	}
	if req.AcceptsInAppPayment != nil {
		p.AcceptsInAppPayment = *req.AcceptsInAppPayment
	}
}

// Delete godoc
//
//	@Summary		Delete a property
//	@Tags			Property
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Property ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not the property owner"
//	@Failure		404	{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id} [delete]
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	if err := h.propertyService.Delete(r.Context(), userID, propertyID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPendingApproval godoc
//
//	@Summary		List properties awaiting approval
//	@Description	Admin only
//	@Tags			Property
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PropertyResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/properties/pending [get]
func (h *PropertyHandler) ListPendingApproval(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyService.ListPendingApproval(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponseList(r.Context(), properties, true))
}

// Approve godoc
//
//	@Summary		Approve a property listing
//	@Description	Admin only; the owner is notified by email
//	@Tags			Property
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Property not found"
//	@Router			/api/admin/properties/{id}/approve [post]
func (h *PropertyHandler) Approve(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	if err := h.propertyService.Approve(r.Context(), propertyID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Property approved"})
}

// Disapprove godoc
//
//	@Summary		Take a property off the catalog
//	@Description	Admin only; the owner is notified by email
//	@Tags			Property
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Property not found"
//	@Router			/api/admin/properties/{id}/disapprove [post]
func (h *PropertyHandler) Disapprove(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	if err := h.propertyService.Disapprove(r.Context(), propertyID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Property disapproved"})
}

// ListAccessible godoc
//
//	@Summary		List unlocked properties
//	@Description	The listings the tenant has spent quota on
//	@Tags			Property
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PropertyResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/properties/accessible [get]
func (h *PropertyHandler) ListAccessible(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	properties, err := h.propertyService.ListAccessible(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponseList(r.Context(), properties, true))
}

// CurrentProperty godoc
//
//	@Summary		Get the property the tenant occupies
//	@Tags			Property
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PropertyResponseDTO
//	@Failure		404	{object}	utils.Response	"No current tenancy"
//	@Router			/api/properties/current [get]
func (h *PropertyHandler) CurrentProperty(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	p, err := h.propertyService.CurrentProperty(r.Context(), userID)
	if err != nil {
		if errors.Is(err, propertyservice.ErrPropertyNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "No current tenancy")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponse(r.Context(), p, true))
}

// AddImage godoc
//
//	@Summary		Add a property image
//	@Description	Appends the image to the gallery; the first image becomes the main one
//	@Tags			Property
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Property ID"
//	@Param			request	body		dto.AddPropertyImageRequestDTO	true	"Image URL"
//	@Success		201		{object}	dto.PropertyImageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not the property owner"
//	@Failure		404		{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id}/images [post]
func (h *PropertyHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var req dto.AddPropertyImageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	img, err := h.propertyService.AddImage(r.Context(), userID, propertyID, req.URL)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PropertyImageResponseDTO{
		ID: img.ID, URL: img.URL, Position: img.Position,
	})
}

// DeleteImage godoc
//
//	@Summary		Delete a property image
//	@Tags			Property
//	@Security		BearerAuth
//	@Param			id			path	int	true	"Property ID"
//	@Param			image_id	path	int	true	"Image ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not the property owner"
//	@Failure		404	{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id}/images/{image_id} [delete]
func (h *PropertyHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}
	imageID, err := strconv.Atoi(chi.URLParam(r, "image_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid image ID")
		return
	}

	if err := h.propertyService.DeleteImage(r.Context(), userID, propertyID, imageID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTypes godoc
//
//	@Summary	List house types
//	@Tags		Property
//	@Produce	json
//	@Success	200	{array}	dto.HouseTypeResponseDTO
//	@Router		/api/house-types [get]
func (h *PropertyHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.propertyService.ListTypes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.HouseTypeResponseDTO, 0, len(types))
	for _, t := range types {
		resp = append(resp, dto.HouseTypeResponseDTO{ID: t.ID, Name: t.Name})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListLocations godoc
//
//	@Summary	List locations
//	@Tags		Property
//	@Produce	json
//	@Success	200	{array}	dto.HouseLocationResponseDTO
//	@Router		/api/locations [get]
func (h *PropertyHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.propertyService.ListLocations(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.HouseLocationResponseDTO, 0, len(locations))
	for _, l := range locations {
		resp = append(resp, dto.HouseLocationResponseDTO{ID: l.ID, Name: l.Name, City: l.City})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateType godoc
//
//	@Summary		Create a house type
//	@Description	Admin only
//	@Tags			Property
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateHouseTypeRequestDTO	true	"House type"
//	@Success		201		{object}	dto.HouseTypeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/house-types [post]
func (h *PropertyHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHouseTypeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.propertyService.CreateType(r.Context(), req.Name)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.HouseTypeResponseDTO{ID: t.ID, Name: t.Name})
}

// DeleteType godoc
//
//	@Summary		Delete a house type
//	@Description	Admin only; listings of this type fall back to untyped
//	@Tags			Property
//	@Security		BearerAuth
//	@Param			id	path	int	true	"House type ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/house-types/{id} [delete]
func (h *PropertyHandler) DeleteType(w http.ResponseWriter, r *http.Request) {
	typeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid house type ID")
		return
	}

	if err := h.propertyService.DeleteType(r.Context(), typeID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateLocation godoc
//
//	@Summary		Create a location
//	@Description	Admin only
//	@Tags			Property
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateHouseLocationRequestDTO	true	"Location"
//	@Success		201		{object}	dto.HouseLocationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/locations [post]
func (h *PropertyHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHouseLocationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	l, err := h.propertyService.CreateLocation(r.Context(), req.Name, req.City)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.HouseLocationResponseDTO{ID: l.ID, Name: l.Name, City: l.City})
}

// DeleteLocation godoc
//
//	@Summary		Delete a location
//	@Description	Admin only; listings in this location fall back to unlocated
//	@Tags			Property
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Location ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/locations/{id} [delete]
func (h *PropertyHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	if err := h.propertyService.DeleteLocation(r.Context(), locationID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequestAccess godoc
//
//	@Summary		Unlock a property
//	@Description	Spends one unit of the tenant's subscription quota to reveal the property address and owner contact
//	@Tags			Property
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	utils.Response
//	@Failure		402	{object}	utils.Response	"Subscription quota exhausted"
//	@Failure		403	{object}	utils.Response	"No active subscription"
//	@Failure		404	{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id}/access [post]
func (h *PropertyHandler) RequestAccess(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	err = h.propertyService.RequestAccess(r.Context(), propertyID, userID)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Access granted"})
	case errors.Is(err, propertyservice.ErrPropertyNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, propertyservice.ErrNoSubscription):
		utils.RespondWithError(w, http.StatusForbidden, "No active subscription")
	case errors.Is(err, propertyservice.ErrQuotaExhausted):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Subscription quota exhausted")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListAccess godoc
//
//	@Summary		List tenants with access
//	@Description	Owner only: the pool of tenants who unlocked this property
//	@Tags			Property
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{array}		dto.PropertyAccessResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the property owner"
//	@Failure		404	{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id}/access [get]
func (h *PropertyHandler) ListAccess(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	access, err := h.propertyService.ListAccess(r.Context(), userID, propertyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := make([]dto.PropertyAccessResponseDTO, 0, len(access))
	for _, a := range access {
		resp = append(resp, dto.PropertyAccessResponseDTO{
			TenantID:   a.TenantID,
			TenantName: a.FirstName + " " + a.LastName,
			Phone:      a.Phone,
			Rating:     a.Rating,
			GrantedAt:  a.GrantedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// RevokeAccess godoc
//
//	@Summary		Revoke a tenant's access
//	@Tags			Property
//	@Security		BearerAuth
//	@Param			id			path	int	true	"Property ID"
//	@Param			tenant_id	path	int	true	"Tenant user ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not the property owner"
//	@Router			/api/properties/{id}/access/{tenant_id} [delete]
func (h *PropertyHandler) RevokeAccess(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}
	tenantID, err := strconv.Atoi(chi.URLParam(r, "tenant_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}

	if err := h.propertyService.RevokeAccess(r.Context(), userID, propertyID, tenantID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetCurrentTenant godoc
//
//	@Summary		Install the current tenant
//	@Description	Picks a tenant from the access pool, marks the property occupied and archives the rest of the pool
//	@Tags			Property
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Property ID"
//	@Param			request	body		dto.SetCurrentTenantRequestDTO	true	"Chosen tenant"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Tenant is not in the access pool"
//	@Failure		403		{object}	utils.Response	"Not the property owner"
//	@Failure		404		{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id}/tenant [put]
func (h *PropertyHandler) SetCurrentTenant(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var req dto.SetCurrentTenantRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TenantID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.propertyService.SetCurrentTenant(r.Context(), userID, propertyID, req.TenantID); err != nil {
		if errors.Is(err, propertyservice.ErrTenantNotInPool) {
			utils.RespondWithError(w, http.StatusBadRequest, "Tenant is not in the access pool")
			return
		}
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Current tenant set"})
}

// ClearCurrentTenant godoc
//
//	@Summary		Clear the current tenant
//	@Tags			Property
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Not the property owner"
//	@Failure		404	{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id}/tenant [delete]
func (h *PropertyHandler) ClearCurrentTenant(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	if err := h.propertyService.ClearCurrentTenant(r.Context(), userID, propertyID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Current tenant cleared"})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, propertyservice.ErrPropertyNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, propertyservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, "Not the property owner")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *PropertyHandler) toResponse(ctx context.Context, p *domain.Property, withAddress bool) dto.PropertyResponseDTO {
	resp := dto.PropertyResponseDTO{
		ID:                  p.ID,
		OwnerID:             p.OwnerID,
		Title:               p.Title,
		Description:         p.Description,
		Price:               p.Price,
		Deposit:             p.Deposit,
		Bedrooms:            p.Bedrooms,
		Bathrooms:           p.Bathrooms,
		Area:                p.Area,
		IsAvailable:         p.IsAvailable,
		IsApproved:          p.IsApproved,
		AcceptsPets:         p.AcceptsPets,
		AcceptsSmokers:      p.AcceptsSmokers,
		Pool:                p.Pool,
		Garden:              p.Garden,
		AcceptsInAppPayment: p.AcceptsInAppPayment,
		CurrentTenantID:     p.CurrentTenantID,
		OverallRating:       p.OverallRating,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
	}
	if withAddress {
		resp.Address = p.Address
	}

	if images, err := h.propertyService.ListImages(ctx, p.ID); err == nil {
		for _, img := range images {
			resp.Images = append(resp.Images, img.URL)
			if p.MainImageID != nil && img.ID == *p.MainImageID {
				resp.MainImage = img.URL
			}
		}
		if resp.MainImage == "" && len(resp.Images) > 0 {
			resp.MainImage = resp.Images[0]
		}
	}
	return resp
}

func (h *PropertyHandler) toResponseList(ctx context.Context, properties []domain.Property, withAddress bool) []dto.PropertyResponseDTO {
	resp := make([]dto.PropertyResponseDTO, 0, len(properties))
	for i := range properties {
		resp = append(resp, h.toResponse(ctx, &properties[i], withAddress))
	}
	return resp
}
