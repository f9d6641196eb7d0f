package dto

type LandlordProfileResponseDTO struct {
	UserID                int      `json:"user_id"`
	FullName              string   `json:"full_name"`
	Email                 string   `json:"email"`
	Phone                 string   `json:"phone,omitempty"`
	AlternatePhone        string   `json:"alternate_phone,omitempty"`
	EmergencyContactName  string   `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string   `json:"emergency_contact_phone,omitempty"`
	AdditionalNotes       string   `json:"additional_notes,omitempty"`
	IDNumber              string   `json:"id_number,omitempty"`
	MaritalStatus         string   `json:"marital_status,omitempty"`
	IsProfileComplete     bool     `json:"is_profile_complete"`
	IsVerified            bool     `json:"is_verified"`
	IsPhoneVerified       bool     `json:"is_phone_verified"`
	ProfileCompleteness   float64  `json:"profile_completeness" example:"72.5"`
	CurrentRating         *float64 `json:"current_rating,omitempty" example:"4.3"`
	Balance               float64  `json:"balance" example:"150"`
}

type UpdateLandlordProfileRequestDTO struct {
	DateOfBirth           *string `json:"date_of_birth,omitempty" example:"1985-04-12"`
	Phone                 *string `json:"phone,omitempty"`
	AlternatePhone        *string `json:"alternate_phone,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	AdditionalNotes       *string `json:"additional_notes,omitempty"`
	IDNumber              *string `json:"id_number,omitempty"`
	IDImage               *string `json:"id_image,omitempty"`
	ProfileImage          *string `json:"profile_image,omitempty"`
	ProofOfResidence      *string `json:"proof_of_residence,omitempty"`
	MaritalStatus         *string `json:"marital_status,omitempty"`
}

type TenantProfileResponseDTO struct {
	UserID             int      `json:"user_id"`
	FullName           string   `json:"full_name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone,omitempty"`
	Occupation         string   `json:"occupation,omitempty"`
	Employer           string   `json:"employer,omitempty"`
	PreferredLeaseTerm int      `json:"preferred_lease_term,omitempty"`
	MaxRent            float64  `json:"max_rent,omitempty"`
	MaritalStatus      string   `json:"marital_status,omitempty"`
	IsProfileComplete  bool     `json:"is_profile_complete"`
	IsPhoneVerified    bool     `json:"is_phone_verified"`
	PricingTier        string   `json:"pricing_tier,omitempty" example:"Standard"`
	NumProperties      int      `json:"num_properties" example:"12"`
	SubscriptionPlan   string   `json:"subscription_plan,omitempty"`
	SubscriptionStatus string   `json:"subscription_status,omitempty"`
	CurrentRating      *float64 `json:"current_rating,omitempty" example:"3.75"`
}

type UpdateTenantProfileRequestDTO struct {
	DateOfBirth           *string  `json:"date_of_birth,omitempty"`
	Phone                 *string  `json:"phone,omitempty"`
	Occupation            *string  `json:"occupation,omitempty"`
	Employer              *string  `json:"employer,omitempty"`
	EmergencyContactName  *string  `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone,omitempty"`
	PreferredLeaseTerm    *int     `json:"preferred_lease_term,omitempty"`
	MaxRent               *float64 `json:"max_rent,omitempty"`
	AdditionalNotes       *string  `json:"additional_notes,omitempty"`
	IDNumber              *string  `json:"id_number,omitempty"`
	IDImage               *string  `json:"id_image,omitempty"`
	ProfileImage          *string  `json:"profile_image,omitempty"`
	ProofOfEmployment     *string  `json:"proof_of_employment,omitempty"`
	MaritalStatus         *string  `json:"marital_status,omitempty"`
}

// PublicLandlordProfileResponseDTO is the trimmed profile shown to anyone
// browsing a landlord's listings. No contact details, no documents.
type PublicLandlordProfileResponseDTO struct {
	UserID              int      `json:"user_id"`
	FullName            string   `json:"full_name"`
	IsVerified          bool     `json:"is_verified"`
	IsPhoneVerified     bool     `json:"is_phone_verified"`
	ProfileCompleteness float64  `json:"profile_completeness" example:"72.5"`
	CurrentRating       *float64 `json:"current_rating,omitempty" example:"4.3"`
}

type LandlordOverviewResponseDTO struct {
	UserID              int     `json:"user_id"`
	FullName            string  `json:"full_name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone,omitempty"`
	IsVerified          bool    `json:"is_verified"`
	IsPhoneVerified     bool    `json:"is_phone_verified"`
	CurrentRating       float64 `json:"current_rating"`
	ProfileCompleteness float64 `json:"profile_completeness"`
}

type TenantOverviewResponseDTO struct {
	UserID             int     `json:"user_id"`
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone,omitempty"`
	CurrentRating      float64 `json:"current_rating"`
	SubscriptionPlan   string  `json:"subscription_plan,omitempty"`
	SubscriptionStatus string  `json:"subscription_status,omitempty"`
	NumProperties      int     `json:"num_properties"`
}

type PricingTierResponseDTO struct {
	ID               int     `json:"id"`
	Name             string  `json:"name" example:"Premium"`
	Description      string  `json:"description,omitempty"`
	Cost             float64 `json:"cost" example:"30"`
	MaxProperties    int     `json:"max_properties" example:"30"`
	MaxPropertyPrice float64 `json:"max_property_price,omitempty"`
}

type ChoosePlanRequestDTO struct {
	TierID int    `json:"tier_id" validate:"required"`
	Phone  string `json:"phone" validate:"required" example:"0771234567"`
}
