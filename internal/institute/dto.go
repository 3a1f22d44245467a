package institute

import "github.com/google/uuid"

type RequestOTPDTO struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type VerifyOTPDTO struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

type LoginResponse struct {
	Token     string            `json:"token"`
	Institute InstituteResponse `json:"institute"`
}

type InstituteResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}
