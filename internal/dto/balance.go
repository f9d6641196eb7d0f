package dto

type BalanceResponseDTO struct {
	Current   float64 `json:"current" example:"500.5"`
	Withdrawn float64 `json:"withdrawn" example:"42"`
}

type WithdrawRequestDTO struct {
	Amount        float64 `json:"amount" validate:"required,gt=0" example:"120"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=ecocash bank" example:"ecocash"`
	Phone         string  `json:"phone,omitempty" example:"0771234567"`
	BankName      string  `json:"bank_name,omitempty"`
	AccountNumber string  `json:"account_number,omitempty" example:"4561261212345467"`
	AccountName   string  `json:"account_name,omitempty"`
}

type WithdrawalResponseDTO struct {
	ID            int     `json:"id"`
	Reference     string  `json:"reference" example:"WDR-7-1709632800"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status" example:"PENDING"`
	RequestedAt   string  `json:"requested_at"`
	ProcessedAt   string  `json:"processed_at,omitempty"`
}
