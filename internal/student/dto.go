package student

import "github.com/google/uuid"

type SendOTPDTO struct {
	Phone string `json:"phone" validate:"required"`
}

type VerifyOTPDTO struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

type CompleteProfileDTO struct {
	FullName string `json:"full_name" validate:"required"`
	Grade    string `json:"grade"`
	Board    string `json:"board"`
	City     string `json:"city"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Phone             string    `json:"phone"`
	FullName          string    `json:"full_name,omitempty"`
	IsProfileComplete bool      `json:"is_profile_complete"`
}
