package assessment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	FirstTest() (*Test, error)
	TestByID(id uuid.UUID) (*Test, error)
	NextTestAfter(sequence int) (*Test, error)
	ListTests() ([]Test, error)

	ActiveSessionByStudent(studentID uuid.UUID) (*Session, error)
	SessionByID(id uuid.UUID) (*Session, error)
	CreateSession(s *Session) error
	MoveSessionToStage(sessionID, testID uuid.UUID, stageCode string) error
	IncrementProgress(sessionID uuid.UUID, limit int) error
	CompleteSession(sessionID uuid.UUID, at time.Time) (bool, error)

	CountQuestions(testID uuid.UUID) (int, error)
	QuestionAt(testID uuid.UUID, offset int) (*Question, error)
	QuestionByID(id uuid.UUID) (*Question, error)
	ListQuestions(testID *uuid.UUID) ([]Question, error)
	MaxQuestionSequence(testID uuid.UUID) (int, error)
	CreateQuestionWithOptions(q *Question, opts []Option) error
	UpdateQuestion(q *Question) error
	ReplaceOptions(questionID uuid.UUID, opts []Option) error
	DeleteQuestion(id uuid.UUID) error

	OptionsByQuestion(questionID uuid.UUID) ([]Option, error)
	OptionByID(id uuid.UUID) (*Option, error)

	CreateAnswer(a *Answer) error
	SumSessionScore(sessionID uuid.UUID) (int, error)
	UpsertResult(res *Result) error
	CategoryTotals(studentID uuid.UUID) ([]CategoryScore, error)
	FallbackCategoryTotals(studentID uuid.UUID) ([]CategoryScore, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FirstTest() (*Test, error) {
	var t Test
	if err := r.db.Order("sequence ASC").First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) TestByID(id uuid.UUID) (*Test, error) {
	var t Test
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) NextTestAfter(sequence int) (*Test, error) {
	var t Test
	if err := r.db.Where("sequence > ?", sequence).Order("sequence ASC").First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListTests() ([]Test, error) {
	var tests []Test
	if err := r.db.Order("sequence ASC").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *repository) ActiveSessionByStudent(studentID uuid.UUID) (*Session, error) {
	var s Session
	err := r.db.First(&s, "student_id = ? AND status = ?", studentID, SessionInProgress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) SessionByID(id uuid.UUID) (*Session, error) {
	var s Session
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) CreateSession(s *Session) error {
	return r.db.Create(s).Error
}

func (r *repository) MoveSessionToStage(sessionID, testID uuid.UUID, stageCode string) error {
	return r.db.Model(&Session{}).Where("id = ?", sessionID).Updates(map[string]interface{}{
		"test_id":       testID,
		"current_stage": stageCode,
		"progress":      0,
	}).Error
}

// IncrementProgress bumps the counter server-side so concurrent submissions
// cannot lose updates, and never past the stage's question count.
func (r *repository) IncrementProgress(sessionID uuid.UUID, limit int) error {
	return r.db.Model(&Session{}).
		Where("id = ? AND progress < ?", sessionID, limit).
		UpdateColumn("progress", gorm.Expr("progress + ?", 1)).Error
}

// CompleteSession stamps completion exactly once. Returns false when the
// session was already completed.
func (r *repository) CompleteSession(sessionID uuid.UUID, at time.Time) (bool, error) {
	res := r.db.Model(&Session{}).
		Where("id = ? AND status = ?", sessionID, SessionInProgress).
		Updates(map[string]interface{}{
			"status":       SessionCompleted,
			"completed_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) CountQuestions(testID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.Model(&Question{}).Where("test_id = ?", testID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *repository) QuestionAt(testID uuid.UUID, offset int) (*Question, error) {
	var q Question
	err := r.db.Where("test_id = ?", testID).
		Order("sequence ASC, id ASC").
		Offset(offset).
		First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) QuestionByID(id uuid.UUID) (*Question, error) {
	var q Question
	if err := r.db.Preload("Options").First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) ListQuestions(testID *uuid.UUID) ([]Question, error) {
	q := r.db.Preload("Options").Order("sequence ASC")
	if testID != nil {
		q = q.Where("test_id = ?", *testID)
	}
	var questions []Question
	if err := q.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) MaxQuestionSequence(testID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&Question{}).
		Where("test_id = ?", testID).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&max).Error
	return max, err
}

func (r *repository) CreateQuestionWithOptions(q *Question, opts []Option) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		for i := range opts {
			opts[i].QuestionID = q.ID
		}
		return tx.Create(&opts).Error
	})
}

func (r *repository) UpdateQuestion(q *Question) error {
	return r.db.Model(&Question{}).Where("id = ?", q.ID).Updates(map[string]interface{}{
		"question_text": q.Text,
		"sequence":      q.Sequence,
	}).Error
}

func (r *repository) ReplaceOptions(questionID uuid.UUID, opts []Option) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Option{}, "question_id = ?", questionID).Error; err != nil {
			return err
		}
		for i := range opts {
			opts[i].QuestionID = questionID
		}
		return tx.Create(&opts).Error
	})
}

func (r *repository) DeleteQuestion(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Option{}, "question_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&Answer{}, "question_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Question{}, "id = ?", id).Error
	})
}

func (r *repository) OptionsByQuestion(questionID uuid.UUID) ([]Option, error) {
	var opts []Option
	if err := r.db.Where("question_id = ?", questionID).Order("id ASC").Find(&opts).Error; err != nil {
		return nil, err
	}
	return opts, nil
}

func (r *repository) OptionByID(id uuid.UUID) (*Option, error) {
	var o Option
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) CreateAnswer(a *Answer) error {
	return r.db.Create(a).Error
}

func (r *repository) SumSessionScore(sessionID uuid.UUID) (int, error) {
	var total int
	err := r.db.Model(&Answer{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(score), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) UpsertResult(res *Result) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "test_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_score", "updated_at"}),
	}).Create(res).Error
}

const categoryCase = `CASE o.category
		WHEN 'R' THEN 'Realistic'
		WHEN 'I' THEN 'Investigative'
		WHEN 'A' THEN 'Artistic'
		WHEN 'S' THEN 'Social'
		WHEN 'E' THEN 'Enterprising'
		WHEN 'C' THEN 'Conventional'
		WHEN 'P' THEN 'Personality'
		WHEN 'V' THEN 'Values'
		ELSE COALESCE(NULLIF(o.category, ''), 'Other')
	END`

func (r *repository) CategoryTotals(studentID uuid.UUID) ([]CategoryScore, error) {
	var rows []CategoryScore
	err := r.db.Raw(`
		SELECT `+categoryCase+` AS category, SUM(a.score) AS total
		FROM student_answers a
		JOIN options o ON o.id = a.option_id
		JOIN assessment_sessions s ON s.id = a.session_id
		WHERE s.student_id = ? AND o.category IS NOT NULL AND o.category <> ''
		GROUP BY category
		ORDER BY total DESC`, studentID).Scan(&rows).Error
	return rows, err
}

// FallbackCategoryTotals buckets questions by sequence into the six RIASEC
// ranges. Kept for data seeded before options carried category tags.
func (r *repository) FallbackCategoryTotals(studentID uuid.UUID) ([]CategoryScore, error) {
	var rows []CategoryScore
	err := r.db.Raw(`
		SELECT CASE
			WHEN q.sequence <= 5 THEN 'Realistic'
			WHEN q.sequence <= 10 THEN 'Investigative'
			WHEN q.sequence <= 15 THEN 'Artistic'
			WHEN q.sequence <= 20 THEN 'Social'
			WHEN q.sequence <= 25 THEN 'Enterprising'
			ELSE 'Conventional'
		END AS category, SUM(a.score) AS total
		FROM student_answers a
		JOIN questions q ON q.id = a.question_id
		JOIN assessment_sessions s ON s.id = a.session_id
		WHERE s.student_id = ?
		GROUP BY category
		ORDER BY total DESC`, studentID).Scan(&rows).Error
	return rows, err
}
