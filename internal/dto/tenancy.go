package dto

type CreateApplicationRequestDTO struct {
	PropertyID int `json:"property_id" validate:"required"`
}

type ApplicationResponseDTO struct {
	ID            int    `json:"id"`
	PropertyID    int    `json:"property_id"`
	Property      string `json:"property,omitempty"`
	ApplicantID   int    `json:"applicant_id"`
	ApplicantName string `json:"applicant_name,omitempty"`
	Status        string `json:"status" example:"PENDING"`
	AppliedAt     string `json:"applied_at"`
}

type DecideApplicationRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED" example:"APPROVED"`
}

type CreateLeaseRequestDTO struct {
	PropertyID int     `json:"property_id" validate:"required"`
	TenantID   int     `json:"tenant_id" validate:"required"`
	StartDate  string  `json:"start_date" validate:"required" example:"2026-02-01"`
	EndDate    string  `json:"end_date" validate:"required" example:"2027-01-31"`
	RentAmount float64 `json:"rent_amount" validate:"required,gt=0"`
}

type LeaseResponseDTO struct {
	ID         int     `json:"id"`
	PropertyID int     `json:"property_id"`
	Property   string  `json:"property,omitempty"`
	TenantID   int     `json:"tenant_id"`
	TenantName string  `json:"tenant_name,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	RentAmount float64 `json:"rent_amount"`
	IsSigned   bool    `json:"is_signed"`
}

type RentPaymentResponseDTO struct {
	ID          int     `json:"id"`
	PropertyID  int     `json:"property_id"`
	Property    string  `json:"property,omitempty"`
	TenantID    int     `json:"tenant_id"`
	Amount      float64 `json:"amount" example:"350"`
	DueDate     string  `json:"due_date" example:"2026-03-01"`
	Status      string  `json:"status" example:"PENDING"`
	PaymentDate string  `json:"payment_date,omitempty"`
}

type PayRentRequestDTO struct {
	PaymentID int    `json:"payment_id" validate:"required"`
	Phone     string `json:"phone" validate:"required" example:"0771234567"`
}
