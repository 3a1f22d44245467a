package institute

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Upsert inserts the institute or, when the phone is already registered,
	// refreshes name and pending OTP in place.
	Upsert(i *Institute) error
	FindByPhone(phone string) (*Institute, error)
	ClearOTP(id uuid.UUID) error
	List() ([]Institute, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(i *Institute) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "otp_code", "otp_expires_at"}),
	}).Create(i).Error
}

func (r *repository) FindByPhone(phone string) (*Institute, error) {
	var i Institute
	if err := r.db.First(&i, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *repository) ClearOTP(id uuid.UUID) error {
	return r.db.Model(&Institute{}).Where("id = ?", id).Updates(map[string]interface{}{
		"otp_code":       "",
		"otp_expires_at": nil,
	}).Error
}

func (r *repository) List() ([]Institute, error) {
	var institutes []Institute
	if err := r.db.Order("name ASC").Find(&institutes).Error; err != nil {
		return nil, err
	}
	return institutes, nil
}
