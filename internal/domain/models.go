package domain

import "time"

const (
	UserTypeLandlord = "landlord"
	UserTypeTenant   = "tenant"
	UserTypeAdmin    = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	UserType     string    `db:"user_type"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type LandlordProfile struct {
	ID                    int        `db:"id"`
	UserID                int        `db:"user_id"`
	DateOfBirth           *time.Time `db:"date_of_birth"`
	Phone                 string     `db:"phone"`
	AlternatePhone        string     `db:"alternate_phone"`
	EmergencyContactName  string     `db:"emergency_contact_name"`
	EmergencyContactPhone string     `db:"emergency_contact_phone"`
	AdditionalNotes       string     `db:"additional_notes"`
	IDNumber              string     `db:"id_number"`
	IDImage               string     `db:"id_image"`
	ProfileImage          string     `db:"profile_image"`
	ProofOfResidence      string     `db:"proof_of_residence"`
	MaritalStatus         string     `db:"marital_status"`
	IsProfileComplete     bool       `db:"is_profile_complete"`
	IsVerified            bool       `db:"is_verified"`
	IsPhoneVerified       bool       `db:"is_phone_verified"`
	CurrentRating         float64    `db:"current_rating"`
	ProfileCompleteness   float64    `db:"profile_completeness"`
	LastUpdated           time.Time  `db:"last_updated"`
}

type TenantProfile struct {
	ID                    int        `db:"id"`
	UserID                int        `db:"user_id"`
	DateOfBirth           *time.Time `db:"date_of_birth"`
	Phone                 string     `db:"phone"`
	Occupation            string     `db:"occupation"`
	Employer              string     `db:"employer"`
	EmergencyContactName  string     `db:"emergency_contact_name"`
	EmergencyContactPhone string     `db:"emergency_contact_phone"`
	PreferredLeaseTerm    int        `db:"preferred_lease_term"`
	MaxRent               float64    `db:"max_rent"`
	AdditionalNotes       string     `db:"additional_notes"`
	IDNumber              string     `db:"id_number"`
	IDImage               string     `db:"id_image"`
	ProfileImage          string     `db:"profile_image"`
	ProofOfEmployment     string     `db:"proof_of_employment"`
	MaritalStatus         string     `db:"marital_status"`
	IsProfileComplete     bool       `db:"is_profile_complete"`
	IsPhoneVerified       bool       `db:"is_phone_verified"`
	CurrentRating         float64    `db:"current_rating"`
	PricingTierID         *int       `db:"pricing_tier_id"`
	NumProperties         int        `db:"num_properties"`
	SubscriptionPlan      string     `db:"subscription_plan"`
	SubscriptionStatus    string     `db:"subscription_status"`
	LastUpdated           time.Time  `db:"last_updated"`
}

// LandlordOverview is the admin's flattened view of a landlord account.
type LandlordOverview struct {
	UserID              int
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	IsVerified          bool
	IsPhoneVerified     bool
	CurrentRating       float64
	ProfileCompleteness float64
}

// TenantOverview is the admin's flattened view of a tenant account.
type TenantOverview struct {
	UserID             int
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	CurrentRating      float64
	SubscriptionPlan   string
	SubscriptionStatus string
	NumProperties      int
}

type PricingTier struct {
	ID               int     `db:"id"`
	Name             string  `db:"name"`
	Description      string  `db:"description"`
	Cost             float64 `db:"cost"`
	MaxProperties    int     `db:"max_properties"`
	MaxPropertyPrice float64 `db:"max_property_price"`
}

type PhoneVerification struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	Code       string    `db:"verification_code"`
	IsVerified bool      `db:"is_verified"`
	CreatedAt  time.Time `db:"created_at"`
}

type HouseType struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type HouseLocation struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
	City string `db:"city"`
}

type Property struct {
	ID                  int       `db:"id"`
	OwnerID             int       `db:"owner_id"`
	Title               string    `db:"title"`
	Description         string    `db:"description"`
	Address             string    `db:"address"`
	Price               float64   `db:"price"`
	Deposit             float64   `db:"deposit"`
	Bedrooms            int       `db:"bedrooms"`
	Bathrooms           int       `db:"bathrooms"`
	Area                int       `db:"area"`
	IsAvailable         bool      `db:"is_available"`
	IsApproved          bool      `db:"is_approved"`
	AcceptsInAppPayment bool      `db:"accepts_in_app_payment"`
	PreferredLeaseTerm  int       `db:"preferred_lease_term"`
	AcceptsPets         bool      `db:"accepts_pets"`
	PetDeposit          float64   `db:"pet_deposit"`
	AcceptsSmokers      bool      `db:"accepts_smokers"`
	Pool                bool      `db:"pool"`
	Garden              bool      `db:"garden"`
	TypeID              *int      `db:"type_id"`
	LocationID          *int      `db:"location_id"`
	MainImageID         *int      `db:"main_image_id"`
	CurrentTenantID     *int      `db:"current_tenant_id"`
	OverallRating       float64   `db:"overall_rating"`
	CreatedAt           time.Time `db:"created_at"`
}

// PropertyFilter narrows the public listing query. Zero values mean no
// constraint.
type PropertyFilter struct {
	LocationID int
	TypeID     int
	MinPrice   float64
	MaxPrice   float64
	Bedrooms   int
	Bathrooms  int
	Pets       *bool
	Smokers    *bool
	Pool       *bool
	Garden     *bool
	Search     string
	ShowAll    bool
	Limit      int
}

// PropertyAccess is one entry of a listing's viewing pool.
type PropertyAccess struct {
	TenantID  int
	FirstName string
	LastName  string
	Phone     string
	Rating    *float64
	GrantedAt time.Time
}

type PropertyImage struct {
	ID         int    `db:"id"`
	PropertyID int    `db:"property_id"`
	URL        string `db:"url"`
	Position   int    `db:"position"`
}

type Application struct {
	ID              int       `db:"id"`
	ApplicantID     int       `db:"applicant_id"`
	PropertyID      int       `db:"property_id"`
	Status          string    `db:"status"`
	ApplicationDate time.Time `db:"application_date"`
}

type LeaseAgreement struct {
	ID         int       `db:"id"`
	TenantID   int       `db:"tenant_id"`
	PropertyID int       `db:"property_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	RentAmount float64   `db:"rent_amount"`
	IsSigned   bool      `db:"is_signed"`
}

type Message struct {
	ID         int       `db:"id"`
	SenderID   int       `db:"sender_id"`
	ReceiverID int       `db:"receiver_id"`
	Content    string    `db:"content"`
	IsRead     bool      `db:"is_read"`
	SentAt     time.Time `db:"sent_at"`
}

// Chat is the aggregation of messages exchanged with one counterpart.
type Chat struct {
	OtherUser   User
	LastMessage Message
	UnreadCount int
}

type Review struct {
	ID         int       `db:"id"`
	ReviewerID int       `db:"reviewer_id"`
	ReviewedID int       `db:"reviewed_id"`
	PropertyID int       `db:"property_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}

type Comment struct {
	ID          int       `db:"id"`
	PropertyID  int       `db:"property_id"`
	CommenterID int       `db:"commenter_id"`
	Content     string    `db:"content"`
	ParentID    *int      `db:"parent_id"`
	IsReply     bool      `db:"is_reply"`
	IsOwner     bool      `db:"is_owner"`
	AIRating    *float64  `db:"ai_rating"`
	IsRated     bool      `db:"is_rated"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

type TenantRating struct {
	ID         int       `db:"id"`
	LandlordID int       `db:"landlord_id"`
	TenantID   int       `db:"tenant_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusOverdue = "OVERDUE"
)

type RentPayment struct {
	ID            int        `db:"id"`
	PropertyID    int        `db:"property_id"`
	TenantID      int        `db:"tenant_id"`
	Amount        float64    `db:"amount"`
	DueDate       time.Time  `db:"due_date"`
	PaymentDate   *time.Time `db:"payment_date"`
	Status        string     `db:"status"`
	TransactionID string     `db:"transaction_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

type SubscriptionPayment struct {
	ID        int       `db:"id"`
	TenantID  int       `db:"tenant_id"`
	Reference string    `db:"reference"`
	PollURL   string    `db:"poll_url"`
	Amount    float64   `db:"amount"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type LeaseDocumentPayment struct {
	ID            int        `db:"id"`
	LandlordID    int        `db:"landlord_id"`
	PropertyID    int        `db:"property_id"`
	Amount        float64    `db:"amount"`
	Status        string     `db:"status"`
	PaymentDate   *time.Time `db:"payment_date"`
	TransactionID string     `db:"transaction_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

type LandlordBalance struct {
	ID          int       `db:"id"`
	LandlordID  int       `db:"landlord_id"`
	Amount      float64   `db:"amount"`
	LastUpdated time.Time `db:"last_updated"`
}

const (
	WithdrawalStatusPending   = "PENDING"
	WithdrawalStatusCompleted = "COMPLETED"
	WithdrawalStatusRejected  = "REJECTED"
)

type WithdrawalRequest struct {
	ID            int        `db:"id"`
	LandlordID    int        `db:"landlord_id"`
	Amount        float64    `db:"amount"`
	Status        string     `db:"status"`
	Reference     string     `db:"reference"`
	PaymentMethod string     `db:"payment_method"`
	BankName      string     `db:"bank_name"`
	AccountNumber string     `db:"account_number"`
	AccountName   string     `db:"account_name"`
	Notes         string     `db:"notes"`
	RequestedAt   time.Time  `db:"requested_at"`
	ProcessedAt   *time.Time `db:"processed_at"`
}
