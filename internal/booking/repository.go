package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRow struct {
	ID            uuid.UUID     `json:"id"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	SlotTime      time.Time     `json:"slot_time"`
	CounselorName string        `json:"counselor_name"`
}

type Repository interface {
	ListCounselors() ([]Counselor, error)
	CounselorByID(id uuid.UUID) (*Counselor, error)
	CreateCounselor(c *Counselor) error
	UpdateCounselor(c *Counselor) error
	DeleteCounselor(id uuid.UUID) error

	CreateSlot(s *Slot) error
	SlotByID(id uuid.UUID) (*Slot, error)
	OpenSlots(counselorID *uuid.UUID, after time.Time) ([]Slot, error)
	ClaimSlot(slotID uuid.UUID) (bool, error)
	ReleaseSlot(slotID uuid.UUID) error

	CreateBooking(b *Booking) error
	BookingByID(id uuid.UUID) (*Booking, error)
	BookingsByStudent(studentID uuid.UUID) ([]BookingRow, error)
	CancelBooking(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCounselors() ([]Counselor, error) {
	var counselors []Counselor
	if err := r.db.Order("experience_years DESC").Find(&counselors).Error; err != nil {
		return nil, err
	}
	return counselors, nil
}

func (r *repository) CounselorByID(id uuid.UUID) (*Counselor, error) {
	var c Counselor
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) CreateCounselor(c *Counselor) error {
	return r.db.Create(c).Error
}

func (r *repository) UpdateCounselor(c *Counselor) error {
	return r.db.Save(c).Error
}

func (r *repository) DeleteCounselor(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Slot{}, "counselor_id = ? AND is_booked = false", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Counselor{}, "id = ?", id).Error
	})
}

func (r *repository) CreateSlot(s *Slot) error {
	return r.db.Create(s).Error
}

func (r *repository) SlotByID(id uuid.UUID) (*Slot, error) {
	var s Slot
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) OpenSlots(counselorID *uuid.UUID, after time.Time) ([]Slot, error) {
	q := r.db.Where("is_booked = false AND slot_time > ?", after)
	if counselorID != nil {
		q = q.Where("counselor_id = ?", *counselorID)
	}
	var slots []Slot
	if err := q.Order("slot_time ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// ClaimSlot flips is_booked atomically. A false return means another booking
// won the race.
func (r *repository) ClaimSlot(slotID uuid.UUID) (bool, error) {
	res := r.db.Model(&Slot{}).
		Where("id = ? AND is_booked = false", slotID).
		UpdateColumn("is_booked", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) ReleaseSlot(slotID uuid.UUID) error {
	return r.db.Model(&Slot{}).Where("id = ?", slotID).UpdateColumn("is_booked", false).Error
}

func (r *repository) CreateBooking(b *Booking) error {
	return r.db.Create(b).Error
}

func (r *repository) BookingByID(id uuid.UUID) (*Booking, error) {
	var b Booking
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) BookingsByStudent(studentID uuid.UUID) ([]BookingRow, error) {
	var rows []BookingRow
	err := r.db.Raw(`
		SELECT b.id, b.status, b.payment_status, s.slot_time, c.name AS counselor_name
		FROM counselor_bookings b
		JOIN counselor_slots s ON s.id = b.slot_id
		JOIN counselors c ON c.id = s.counselor_id
		WHERE b.student_id = ?
		ORDER BY s.slot_time DESC`, studentID).Scan(&rows).Error
	return rows, err
}

func (r *repository) CancelBooking(id uuid.UUID) error {
	return r.db.Model(&Booking{}).Where("id = ?", id).
		UpdateColumn("status", BookingCancelled).Error
}
