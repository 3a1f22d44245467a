package college

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	List() ([]College, error)
	FindByID(id uuid.UUID) (*College, error)
	Create(c *College) error
	Update(c *College) error
	Delete(id uuid.UUID) error

	AddShortlist(studentID, collegeID uuid.UUID) error
	RemoveShortlist(studentID, collegeID uuid.UUID) error
	ListShortlisted(studentID uuid.UUID) ([]College, error)
	IsShortlisted(studentID, collegeID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List() ([]College, error) {
	var colleges []College
	if err := r.db.Order("name ASC").Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *repository) FindByID(id uuid.UUID) (*College, error) {
	var c College
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(c *College) error {
	return r.db.Create(c).Error
}

func (r *repository) Update(c *College) error {
	return r.db.Save(c).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Shortlist{}, "college_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&CollegeCareer{}, "college_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&College{}, "id = ?", id).Error
	})
}

// AddShortlist is idempotent. Re-adding an entry is a no-op.
func (r *repository) AddShortlist(studentID, collegeID uuid.UUID) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Shortlist{
		ID:        uuid.New(),
		StudentID: studentID,
		CollegeID: collegeID,
	}).Error
}

func (r *repository) RemoveShortlist(studentID, collegeID uuid.UUID) error {
	return r.db.Delete(&Shortlist{}, "student_id = ? AND college_id = ?", studentID, collegeID).Error
}

func (r *repository) ListShortlisted(studentID uuid.UUID) ([]College, error) {
	var colleges []College
	err := r.db.
		Joins("JOIN college_shortlists s ON s.college_id = colleges.id").
		Where("s.student_id = ?", studentID).
		Order("s.created_at DESC").
		Find(&colleges).Error
	if err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *repository) IsShortlisted(studentID, collegeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&Shortlist{}).
		Where("student_id = ? AND college_id = ?", studentID, collegeID).
		Count(&count).Error
	return count > 0, err
}
