package dto

type InitiatePaymentResponseDTO struct {
	Reference   string `json:"reference" example:"SUB-7-1709632800"`
	PollURL     string `json:"poll_url,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Status      string `json:"status" example:"sent"`
	Message     string `json:"message,omitempty"`
}

type PaymentStatusResponseDTO struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status" example:"PAID"`
	Amount    float64 `json:"amount"`
	PaidAt    string  `json:"paid_at,omitempty"`
}

type LeaseDocumentPaymentRequestDTO struct {
	PropertyID int    `json:"property_id" validate:"required"`
	Phone      string `json:"phone" validate:"required" example:"0771234567"`
}
