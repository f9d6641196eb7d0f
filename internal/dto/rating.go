package dto

type CreateReviewRequestDTO struct {
	PropertyID int    `json:"property_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Comment    string `json:"comment,omitempty"`
}

type ReviewResponseDTO struct {
	ID           int    `json:"id"`
	PropertyID   int    `json:"property_id"`
	ReviewerID   int    `json:"reviewer_id"`
	ReviewerName string `json:"reviewer_name,omitempty"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type CreateCommentRequestDTO struct {
	PropertyID int    `json:"property_id" validate:"required"`
	ParentID   *int   `json:"parent_id,omitempty"`
	Content    string `json:"content" validate:"required,max=2000"`
}

type CommentResponseDTO struct {
	ID            int                  `json:"id"`
	PropertyID    int                  `json:"property_id"`
	CommenterID   int                  `json:"commenter_id"`
	CommenterName string               `json:"commenter_name,omitempty"`
	Content       string               `json:"content"`
	IsOwner       bool                 `json:"is_owner"`
	IsReply       bool                 `json:"is_reply"`
	Likes         int                  `json:"likes"`
	Dislikes      int                  `json:"dislikes"`
	AIRating      *float64             `json:"ai_rating,omitempty" example:"3.5"`
	CreatedAt     string               `json:"created_at"`
	Replies       []CommentResponseDTO `json:"replies,omitempty"`
}

type ReactCommentRequestDTO struct {
	Reaction string `json:"reaction" validate:"required,oneof=like dislike" example:"like"`
}

type RateTenantRequestDTO struct {
	TenantID int    `json:"tenant_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment,omitempty"`
}

type TenantRatingResponseDTO struct {
	ID           int    `json:"id"`
	LandlordID   int    `json:"landlord_id"`
	LandlordName string `json:"landlord_name,omitempty"`
	TenantID     int    `json:"tenant_id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type RatingSummaryResponseDTO struct {
	TenantRating   *float64 `json:"tenant_rating,omitempty" example:"3.67"`
	LandlordRating *float64 `json:"landlord_rating,omitempty" example:"4.1"`
	PropertyRating *float64 `json:"property_rating,omitempty" example:"4.2"`
}
