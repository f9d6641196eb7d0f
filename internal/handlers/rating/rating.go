package rating

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
	ratingrepo "github.com/rojahomes/rentmarket/internal/repo/rating-repo"
	"github.com/rojahomes/rentmarket/internal/service/commentservice"
	"github.com/rojahomes/rentmarket/internal/service/ratingservice"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
	"github.com/rojahomes/rentmarket/pkg/utils"
)

type Service interface {
	RateTenant(ctx context.Context, landlordID, tenantID, rating int, comment string) (*domain.TenantRating, error)
	ListTenantRatings(ctx context.Context, tenantID int) ([]domain.TenantRating, error)
	CreateReview(ctx context.Context, reviewerID, propertyID, rating int, comment string) (*domain.Review, error)
	ListReviews(ctx context.Context, propertyID int) ([]domain.Review, error)
	ComputePropertyRating(ctx context.Context, propertyID int) (float64, error)
	RecomputeAllLandlordRatings(ctx context.Context) (int, error)
	RecomputeAllPropertyRatings(ctx context.Context) (int, error)
	ScoreUnratedComments(ctx context.Context, limit int) (int, error)
}

type CommentService interface {
	Create(ctx context.Context, userID, propertyID int, parentID *int, content string) (*domain.Comment, error)
	ListByProperty(ctx context.Context, propertyID int) ([]domain.Comment, error)
	React(ctx context.Context, userID, commentID int, reaction string) error
	Reactions(ctx context.Context, commentID int) (likes, dislikes int, err error)
}

type RatingHandler struct {
	ratingService  Service
	commentService CommentService
}

func New(ratingService Service, commentService CommentService) *RatingHandler {
	return &RatingHandler{
		ratingService:  ratingService,
		commentService: commentService,
	}
}

// CreateReview godoc
//
//	@Summary		Review a property
//	@Description	One review per tenant per property; property and landlord ratings are refreshed
//	@Tags			Rating
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateReviewRequestDTO	true	"Review"
//	@Success		201		{object}	dto.ReviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Property already reviewed"
//	@Router			/api/reviews [post]
func (h *RatingHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.CreateReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	review, err := h.ratingService.CreateReview(r.Context(), userID, req.PropertyID, req.Rating, req.Comment)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusCreated, toReviewDTO(review))
	case errors.Is(err, ratingservice.ErrAlreadyReviewed):
		utils.RespondWithError(w, http.StatusConflict, "Property already reviewed")
	case errors.Is(err, ratingservice.ErrSelfRating):
		utils.RespondWithError(w, http.StatusBadRequest, "Can't review your own property")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListReviews godoc
//
//	@Summary	List reviews for a property
//	@Tags		Rating
//	@Produce	json
//	@Param		id	path		int	true	"Property ID"
//	@Success	200	{array}		dto.ReviewResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/properties/{id}/reviews [get]
func (h *RatingHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	reviews, err := h.ratingService.ListReviews(r.Context(), propertyID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.ReviewResponseDTO, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, toReviewDTO(&reviews[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateComment godoc
//
//	@Summary		Comment on a property
//	@Description	Top-level comments and one level of replies; sentiment is scored asynchronously
//	@Tags			Rating
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCommentRequestDTO	true	"Comment"
//	@Success		201		{object}	dto.CommentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Parent comment not found"
//	@Router			/api/comments [post]
func (h *RatingHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.CreateCommentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(r.Context(), userID, req.PropertyID, req.ParentID, req.Content)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusCreated, toCommentDTO(comment))
	case errors.Is(err, commentservice.ErrCommentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Parent comment not found")
	case errors.Is(err, commentservice.ErrReplyToReply):
		utils.RespondWithError(w, http.StatusBadRequest, "Replies can only be one level deep")
	case errors.Is(err, commentservice.ErrWrongProperty):
		utils.RespondWithError(w, http.StatusBadRequest, "Parent comment belongs to another property")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListComments godoc
//
//	@Summary		List comments for a property
//	@Description	Top-level comments with their replies nested and reaction counts attached
//	@Tags			Rating
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{array}		dto.CommentResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/properties/{id}/comments [get]
func (h *RatingHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	comments, err := h.commentService.ListByProperty(r.Context(), propertyID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.buildCommentTree(r.Context(), comments))
}

// Replies are attached to their parent; orphans whose parent is gone are
// dropped. Reaction counts are read per comment.
func (h *RatingHandler) buildCommentTree(ctx context.Context, comments []domain.Comment) []dto.CommentResponseDTO {
	byID := make(map[int]*dto.CommentResponseDTO, len(comments))
	order := make([]int, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		if c.IsReply {
			continue
		}
		d := toCommentDTO(c)
		h.attachReactions(ctx, &d)
		byID[c.ID] = &d
		order = append(order, c.ID)
	}
	for i := range comments {
		c := &comments[i]
		if !c.IsReply || c.ParentID == nil {
			continue
		}
		parent, ok := byID[*c.ParentID]
		if !ok {
			continue
		}
		d := toCommentDTO(c)
		h.attachReactions(ctx, &d)
		parent.Replies = append(parent.Replies, d)
	}

	resp := make([]dto.CommentResponseDTO, 0, len(order))
	for _, id := range order {
		resp = append(resp, *byID[id])
	}
	return resp
}

func (h *RatingHandler) attachReactions(ctx context.Context, d *dto.CommentResponseDTO) {
	if likes, dislikes, err := h.commentService.Reactions(ctx, d.ID); err == nil {
		d.Likes, d.Dislikes = likes, dislikes
	}
}

// React godoc
//
//	@Summary		React to a comment
//	@Description	Like or dislike; repeating the same reaction removes it, the opposite one replaces it
//	@Tags			Rating
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Comment ID"
//	@Param			request	body		dto.ReactCommentRequestDTO	true	"Reaction"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Unknown reaction"
//	@Failure		404		{object}	utils.Response	"Comment not found"
//	@Router			/api/comments/{id}/react [post]
func (h *RatingHandler) React(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	commentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	var req dto.ReactCommentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.commentService.React(r.Context(), userID, commentID, req.Reaction)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Reaction recorded"})
	case errors.Is(err, commentservice.ErrBadReaction):
		utils.RespondWithError(w, http.StatusBadRequest, "Reaction must be like or dislike")
	case errors.Is(err, commentservice.ErrCommentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Comment not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// RateTenant godoc
//
//	@Summary		Rate a tenant
//	@Description	One rating per landlord per tenant; the tenant's average is refreshed
//	@Tags			Rating
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RateTenantRequestDTO	true	"Rating"
//	@Success		201		{object}	dto.TenantRatingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Tenant already rated"
//	@Router			/api/tenant-ratings [post]
func (h *RatingHandler) RateTenant(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.RateTenantRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	rating, err := h.ratingService.RateTenant(r.Context(), userID, req.TenantID, req.Rating, req.Comment)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusCreated, toTenantRatingDTO(rating))
	case errors.Is(err, ratingrepo.ErrDuplicateRating):
		utils.RespondWithError(w, http.StatusConflict, "Tenant already rated")
	case errors.Is(err, ratingservice.ErrSelfRating):
		utils.RespondWithError(w, http.StatusBadRequest, "Can't rate yourself")
	case errors.Is(err, ratingservice.ErrNotTenant):
		utils.RespondWithError(w, http.StatusBadRequest, "Target user is not a tenant")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListTenantRatings godoc
//
//	@Summary	List ratings for a tenant
//	@Tags		Rating
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Tenant user ID"
//	@Success	200	{array}		dto.TenantRatingResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/tenants/{id}/ratings [get]
func (h *RatingHandler) ListTenantRatings(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}

	ratings, err := h.ratingService.ListTenantRatings(r.Context(), tenantID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TenantRatingResponseDTO, 0, len(ratings))
	for i := range ratings {
		resp = append(resp, toTenantRatingDTO(&ratings[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PropertyRating godoc
//
//	@Summary		Current property rating
//	@Description	Recomputes the blended rating from live review, sentiment and landlord rows without storing it
//	@Tags			Rating
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	map[string]float64
//	@Failure		404	{object}	utils.Response	"Property not found"
//	@Router			/api/properties/{id}/rating [get]
func (h *RatingHandler) PropertyRating(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	rating, err := h.ratingService.ComputePropertyRating(r.Context(), propertyID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]float64{"overall_rating": rating})
}

// RecomputeRatings godoc
//
//	@Summary		Recompute all ratings
//	@Description	Admin only: refreshes every landlord and property rating and reports how many of each were updated
//	@Tags			Rating
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	map[string]int
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/ratings/recompute [post]
func (h *RatingHandler) RecomputeRatings(w http.ResponseWriter, r *http.Request) {
	landlords, err := h.ratingService.RecomputeAllLandlordRatings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	properties, err := h.ratingService.RecomputeAllPropertyRatings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]int{
		"landlords_updated":  landlords,
		"properties_updated": properties,
	})
}

// ScoreSentiments godoc
//
//	@Summary		Score unrated comments
//	@Description	Admin only: runs sentiment analysis over a batch of comments that have no score yet
//	@Tags			Rating
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Batch size"	default(50)
//	@Success		200		{object}	map[string]int
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/comments/score [post]
func (h *RatingHandler) ScoreSentiments(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 50
	}

	scored, err := h.ratingService.ScoreUnratedComments(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]int{"scored": scored})
}

func toReviewDTO(review *domain.Review) dto.ReviewResponseDTO {
	return dto.ReviewResponseDTO{
		ID:         review.ID,
		PropertyID: review.PropertyID,
		ReviewerID: review.ReviewerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt.Format(time.RFC3339),
	}
}

func toCommentDTO(c *domain.Comment) dto.CommentResponseDTO {
	return dto.CommentResponseDTO{
		ID:          c.ID,
		PropertyID:  c.PropertyID,
		CommenterID: c.CommenterID,
		Content:     c.Content,
		IsOwner:     c.IsOwner,
		IsReply:     c.IsReply,
		AIRating:    c.AIRating,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func toTenantRatingDTO(tr *domain.TenantRating) dto.TenantRatingResponseDTO {
	return dto.TenantRatingResponseDTO{
		ID:         tr.ID,
		LandlordID: tr.LandlordID,
		TenantID:   tr.TenantID,
		Rating:     tr.Rating,
		Comment:    tr.Comment,
		CreatedAt:  tr.CreatedAt.Format(time.RFC3339),
	}
}
