package career

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Career struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Category    string         `gorm:"type:varchar(50);index" json:"category,omitempty"`
	RiasecCode  string         `gorm:"type:varchar(10)" json:"riasec_code,omitempty"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
