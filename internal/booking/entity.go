package booking

import (
	"time"

	util "github.com/careerclarity/careerclarity-api/internal/utils"
	"github.com/google/uuid"
)

type Counselor struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Specialization  string    `gorm:"type:text" json:"specialization,omitempty"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experience_years"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Slot is a bookable counseling window. SlotTime is stored and served as IST
// wall-clock time.
type Slot struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CounselorID uuid.UUID          `gorm:"type:uuid;not null;index" json:"counselor_id"`
	SlotTime    util.LocalDateTime `gorm:"not null" json:"slot_time"`
	IsBooked    bool               `gorm:"not null;default:false" json:"is_booked"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
}

func (Slot) TableName() string { return "counselor_slots" }

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type Booking struct {
	ID            uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"student_id"`
	SlotID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"slot_id"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (Booking) TableName() string { return "counselor_bookings" }
