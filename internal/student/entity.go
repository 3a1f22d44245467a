package student

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Phone             string     `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone"`
	FullName          string     `gorm:"type:text" json:"full_name,omitempty"`
	Grade             string     `gorm:"type:varchar(20)" json:"grade,omitempty"`
	Board             string     `gorm:"type:varchar(50)" json:"board,omitempty"`
	City              string     `gorm:"type:varchar(100)" json:"city,omitempty"`
	IsProfileComplete bool       `gorm:"not null;default:false" json:"is_profile_complete"`
	OTPCode           string     `gorm:"column:otp_code;type:text" json:"-"`
	OTPExpiresAt      *time.Time `gorm:"column:otp_expires_at" json:"-"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
