package dto

type CreatePropertyRequestDTO struct {
	Title               string   `json:"title" validate:"required,max=200"`
	Description         string   `json:"description"`
	TypeID              int      `json:"type_id" validate:"required"`
	LocationID          int      `json:"location_id" validate:"required"`
	Address             string   `json:"address" validate:"required"`
	Price               float64  `json:"price" validate:"required,gt=0" example:"350"`
	Deposit             float64  `json:"deposit,omitempty"`
	Bedrooms            int      `json:"bedrooms"`
	Bathrooms           int      `json:"bathrooms"`
	Area                int      `json:"area" example:"120"`
	PreferredLeaseTerm  int      `json:"preferred_lease_term,omitempty"`
	AcceptsPets         bool     `json:"accepts_pets"`
	PetDeposit          float64  `json:"pet_deposit,omitempty"`
	AcceptsSmokers      bool     `json:"accepts_smokers"`
	Pool                bool     `json:"pool"`
	Garden              bool     `json:"garden"`
	AcceptsInAppPayment bool     `json:"accepts_in_app_payment"`
	GenerateDescription bool     `json:"generate_description"`
	ImageURLs           []string `json:"image_urls,omitempty"`
}

type UpdatePropertyRequestDTO struct {
	Title               *string  `json:"title,omitempty"`
	Description         *string  `json:"description,omitempty"`
	Address             *string  `json:"address,omitempty"`
	Price               *float64 `json:"price,omitempty"`
	Deposit             *float64 `json:"deposit,omitempty"`
	Bedrooms            *int     `json:"bedrooms,omitempty"`
	Bathrooms           *int     `json:"bathrooms,omitempty"`
	Area                *int     `json:"area,omitempty"`
	IsAvailable         *bool    `json:"is_available,omitempty"`
	AcceptsPets         *bool    `json:"accepts_pets,omitempty"`
	AcceptsSmokers      *bool    `json:"accepts_smokers,omitempty"`
	Pool                *bool    `json:"pool,omitempty"`
	Garden              *bool    `json:"garden,omitempty"`
	AcceptsInAppPayment *bool    `json:"accepts_in_app_payment,omitempty"`
}

type PropertyResponseDTO struct {
	ID                  int      `json:"id"`
	OwnerID             int      `json:"owner_id"`
	OwnerName           string   `json:"owner_name,omitempty"`
	Title               string   `json:"title"`
	Description         string   `json:"description,omitempty"`
	HouseType           string   `json:"house_type,omitempty" example:"Cottage"`
	Location            string   `json:"location,omitempty" example:"Avondale"`
	Address             string   `json:"address,omitempty"`
	Price               float64  `json:"price" example:"350"`
	Deposit             float64  `json:"deposit,omitempty"`
	Bedrooms            int      `json:"bedrooms"`
	Bathrooms           int      `json:"bathrooms"`
	Area                int      `json:"area,omitempty"`
	IsAvailable         bool     `json:"is_available"`
	IsApproved          bool     `json:"is_approved"`
	AcceptsPets         bool     `json:"accepts_pets"`
	AcceptsSmokers      bool     `json:"accepts_smokers"`
	Pool                bool     `json:"pool"`
	Garden              bool     `json:"garden"`
	AcceptsInAppPayment bool     `json:"accepts_in_app_payment"`
	CurrentTenantID     *int     `json:"current_tenant_id,omitempty"`
	OverallRating       float64  `json:"overall_rating" example:"4.2"`
	MainImage           string   `json:"main_image,omitempty"`
	Images              []string `json:"images,omitempty"`
	CreatedAt           string   `json:"created_at" example:"2026-01-15T09:30:00Z"`
}

type PropertyListFilterDTO struct {
	LocationID int
	TypeID     int
	MinPrice   float64
	MaxPrice   float64
	Bedrooms   int
}

type HouseTypeResponseDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name" example:"Full House"`
}

type HouseLocationResponseDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name" example:"Borrowdale"`
	City string `json:"city" example:"Harare"`
}

type AddPropertyImageRequestDTO struct {
	URL string `json:"url" validate:"required" example:"https://cdn.rojahomes.com/p/42/kitchen.jpg"`
}

type PropertyImageResponseDTO struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

type CreateHouseTypeRequestDTO struct {
	Name string `json:"name" validate:"required" example:"Cottage"`
}

type CreateHouseLocationRequestDTO struct {
	Name string `json:"name" validate:"required" example:"Avondale"`
	City string `json:"city" example:"Harare"`
}

type GrantAccessRequestDTO struct {
	TenantID int `json:"tenant_id" validate:"required"`
}

type PropertyAccessResponseDTO struct {
	TenantID   int      `json:"tenant_id"`
	TenantName string   `json:"tenant_name"`
	Phone      string   `json:"phone,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	GrantedAt  string   `json:"granted_at"`
}

type SetCurrentTenantRequestDTO struct {
	TenantID int `json:"tenant_id" validate:"required"`
}
