package dto

// RegisterRequestDTO opens a cashier account. Admins are provisioned from config.
type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,alphanum,min=3,max=50" example:"cashier1"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"secret123"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"Cashier registered"`
	UserID  int    `json:"user_id" example:"3"`
	Role    string `json:"role" example:"cashier"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,max=50" example:"cashier1"`
	Password string `json:"password" validate:"required,max=72" example:"secret123"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"Logged in"`
	UserID  int    `json:"user_id" example:"3"`
	Role    string `json:"role" example:"cashier"`
}
