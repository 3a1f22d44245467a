package college

import (
	"time"

	"github.com/google/uuid"
)

type College struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Location  string    `gorm:"type:text" json:"location,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CollegeCareer links colleges to the careers they offer programs for.
type CollegeCareer struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null;index" json:"college_id"`
	CareerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"career_id"`
}

func (CollegeCareer) TableName() string { return "college_careers" }

type Shortlist struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shortlist_student_college" json:"student_id"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shortlist_student_college" json:"college_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Shortlist) TableName() string { return "college_shortlists" }
