package notification

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const studentFeedLimit = 50

type Repository interface {
	Create(n *Notification) error
	FindByID(id uuid.UUID) (*Notification, error)
	ListByStudent(studentID uuid.UUID) ([]Notification, error)
	ListAll(offset, limit int) ([]Notification, int64, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(studentID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(n *Notification) error {
	return r.db.Create(n).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Notification, error) {
	var n Notification
	if err := r.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *repository) ListByStudent(studentID uuid.UUID) ([]Notification, error) {
	var list []Notification
	err := r.db.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(studentFeedLimit).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListAll(offset, limit int) ([]Notification, int64, error) {
	var total int64
	if err := r.db.Model(&Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Notification
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *repository) MarkRead(id uuid.UUID) error {
	return r.db.Model(&Notification{}).Where("id = ?", id).
		UpdateColumn("is_read", true).Error
}

func (r *repository) MarkAllRead(studentID uuid.UUID) error {
	return r.db.Model(&Notification{}).
		Where("student_id = ? AND is_read = false", studentID).
		UpdateColumn("is_read", true).Error
}
