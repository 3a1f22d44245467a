package institute

import (
	"time"

	"github.com/google/uuid"
)

type Institute struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string     `gorm:"type:text;not null" json:"name"`
	Phone        string     `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone"`
	OTPCode      string     `gorm:"column:otp_code;type:text" json:"-"`
	OTPExpiresAt *time.Time `gorm:"column:otp_expires_at" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
