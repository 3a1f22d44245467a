package student

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(s *Student) error
	FindByPhone(phone string) (*Student, error)
	FindByID(id uuid.UUID) (*Student, error)
	SetOTP(id uuid.UUID, sealedCode string, expiresAt time.Time) error
	ClearOTP(id uuid.UUID) error
	UpdateProfile(s *Student) error
	List() ([]Student, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(s *Student) error {
	return r.db.Create(s).Error
}

func (r *repository) FindByPhone(phone string) (*Student, error) {
	var s Student
	if err := r.db.First(&s, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Student, error) {
	var s Student
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) SetOTP(id uuid.UUID, sealedCode string, expiresAt time.Time) error {
	return r.db.Model(&Student{}).Where("id = ?", id).Updates(map[string]interface{}{
		"otp_code":       sealedCode,
		"otp_expires_at": expiresAt,
	}).Error
}

func (r *repository) ClearOTP(id uuid.UUID) error {
	return r.db.Model(&Student{}).Where("id = ?", id).Updates(map[string]interface{}{
		"otp_code":       "",
		"otp_expires_at": nil,
	}).Error
}

func (r *repository) UpdateProfile(s *Student) error {
	return r.db.Model(&Student{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"full_name":           s.FullName,
		"grade":               s.Grade,
		"board":               s.Board,
		"city":                s.City,
		"is_profile_complete": true,
	}).Error
}

func (r *repository) List() ([]Student, error) {
	var students []Student
	if err := r.db.Order("created_at DESC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Student{}, "id = ?", id).Error
}
