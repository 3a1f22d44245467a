package assessment

import (
	"time"

	"github.com/google/uuid"
)

type Test struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Code            string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	DurationMinutes int       `gorm:"not null;default:0" json:"duration_minutes"`
	Sequence        int       `gorm:"not null;index" json:"sequence"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Question struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TestID    uuid.UUID `gorm:"type:uuid;not null;index" json:"test_id"`
	Text      string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	Sequence  int       `gorm:"not null" json:"sequence"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"column:option_text;type:text;not null" json:"option_text"`
	Score      int       `gorm:"not null;default:0" json:"score"`
	Category   string    `gorm:"type:varchar(20)" json:"category,omitempty"`
}

// Session tracks one student's walk through the ordered test stages.
// CurrentStage holds the test code; Progress counts answered questions
// within that stage.
type Session struct {
	ID           uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"student_id"`
	TestID       uuid.UUID     `gorm:"type:uuid;not null" json:"test_id"`
	CurrentStage string        `gorm:"type:varchar(50);not null" json:"current_stage"`
	Progress     int           `gorm:"not null;default:0" json:"progress"`
	Status       SessionStatus `gorm:"type:varchar(20);not null;default:'in_progress'" json:"status"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (Session) TableName() string { return "assessment_sessions" }

// Answer snapshots the chosen option's score at submission time. There is
// no uniqueness constraint on (session, question); resubmissions insert a
// second row and the progress counter is capped separately.
type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	OptionID   uuid.UUID `gorm:"type:uuid;not null" json:"option_id"`
	Score      int       `gorm:"not null" json:"score"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Answer) TableName() string { return "student_answers" }

// Result is the per-student, per-test aggregate, written by upsert so stage
// completion stays idempotent.
type Result struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_result_student_test" json:"student_id"`
	TestID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_result_student_test" json:"test_id"`
	TotalScore int       `gorm:"not null;default:0" json:"total_score"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Result) TableName() string { return "assessment_results" }
