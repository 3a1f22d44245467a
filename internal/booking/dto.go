package booking

import (
	util "github.com/careerclarity/careerclarity-api/internal/utils"
	"github.com/google/uuid"
)

type BookSlotDTO struct {
	SlotID string `json:"slot_id" validate:"required,uuid"`
}

type CreateCounselorDTO struct {
	Name            string `json:"name" validate:"required"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0"`
}

type UpdateCounselorDTO struct {
	Name            *string `json:"name"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experience_years"`
}

type CreateSlotDTO struct {
	CounselorID string             `json:"counselor_id" validate:"required,uuid"`
	SlotTime    util.LocalDateTime `json:"slot_time" validate:"required"`
}

type BookingResponse struct {
	ID            uuid.UUID           `json:"id"`
	Status        BookingStatus       `json:"status"`
	PaymentStatus PaymentStatus       `json:"payment_status"`
	SlotTime      *util.LocalDateTime `json:"slot_time,omitempty"`
	CounselorName string              `json:"counselor_name,omitempty"`
}
