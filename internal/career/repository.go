package career

import (
	"errors"

	"github.com/careerclarity/careerclarity-api/internal/college"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	List() ([]Career, error)
	FindByID(id uuid.UUID) (*Career, error)
	Create(c *Career) error
	Update(c *Career) error
	Delete(id uuid.UUID) error

	Matching(categories, riasecLetters []string, nameLike string, limit int) ([]Career, error)
	Top(limit int) ([]Career, error)
	CollegesForCareer(careerID uuid.UUID, limit int) ([]college.College, error)
	AnyColleges(limit int) ([]college.College, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List() ([]Career, error) {
	var careers []Career
	if err := r.db.Order("name ASC").Find(&careers).Error; err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Career, error) {
	var c Career
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(c *Career) error {
	return r.db.Create(c).Error
}

func (r *repository) Update(c *Career) error {
	return r.db.Save(c).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&college.CollegeCareer{}, "career_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Career{}, "id = ?", id).Error
	})
}

// Matching selects careers whose category, RIASEC code or name lines up with
// the student's strongest categories.
func (r *repository) Matching(categories, riasecLetters []string, nameLike string, limit int) ([]Career, error) {
	q := r.db.Where("category IN ?", categories)
	if len(riasecLetters) > 0 {
		q = q.Or("riasec_code IN ?", riasecLetters)
	}
	if nameLike != "" {
		q = q.Or("name ILIKE ?", "%"+nameLike+"%")
	}

	var careers []Career
	if err := r.db.Where(q).Limit(limit).Find(&careers).Error; err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *repository) Top(limit int) ([]Career, error) {
	var careers []Career
	if err := r.db.Order("name ASC").Limit(limit).Find(&careers).Error; err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *repository) CollegesForCareer(careerID uuid.UUID, limit int) ([]college.College, error) {
	var colleges []college.College
	err := r.db.
		Joins("JOIN college_careers cc ON cc.college_id = colleges.id").
		Where("cc.career_id = ?", careerID).
		Limit(limit).
		Find(&colleges).Error
	if err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *repository) AnyColleges(limit int) ([]college.College, error) {
	var colleges []college.College
	if err := r.db.Order("name ASC").Limit(limit).Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}
