package dto

type RegisterRequestDTO struct {
	Email     string `json:"email" validate:"required,email" example:"tino@rojahomes.com"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Phone     string `json:"phone" example:"+263771234567"`
	UserType  string `json:"user_type" validate:"required,oneof=landlord tenant" example:"landlord"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Token    string `json:"token"`
	UserType string `json:"user_type" example:"tenant"`
}

type SendVerificationRequestDTO struct {
	Phone string `json:"phone" validate:"required" example:"+263771234567"`
}

type VerifyPhoneRequestDTO struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required,len=6" example:"482913"`
}
