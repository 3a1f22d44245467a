package booking

import (
	"context"
	"time"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/google/uuid"
)

type Service interface {
	ListCounselors(ctx context.Context) ([]Counselor, error)
	OpenSlots(ctx context.Context, counselorID *uuid.UUID) ([]Slot, error)
	Book(ctx context.Context, studentID, slotID uuid.UUID) (*Booking, error)
	Cancel(ctx context.Context, studentID, bookingID uuid.UUID) error
	MyBookings(ctx context.Context, studentID uuid.UUID) ([]BookingRow, error)

	CreateCounselor(ctx context.Context, dto CreateCounselorDTO) (*Counselor, error)
	UpdateCounselor(ctx context.Context, id uuid.UUID, dto UpdateCounselorDTO) (*Counselor, error)
	DeleteCounselor(ctx context.Context, id uuid.UUID) error
	CreateSlot(ctx context.Context, dto CreateSlotDTO) (*Slot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCounselors(ctx context.Context) ([]Counselor, error) {
	return s.repo.ListCounselors()
}

func (s *service) OpenSlots(ctx context.Context, counselorID *uuid.UUID) ([]Slot, error) {
	return s.repo.OpenSlots(counselorID, time.Now())
}

// Book claims the slot before creating the booking row. Two students racing
// for the same slot cannot both succeed; the loser gets a conflict.
func (s *service) Book(ctx context.Context, studentID, slotID uuid.UUID) (*Booking, error) {
	log := config.WithContext(ctx)

	slot, err := s.repo.SlotByID(slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, apperror.New(apperror.NotFound, "slot not found")
	}
	if slot.SlotTime.Before(time.Now()) {
		return nil, apperror.New(apperror.Validation, "slot is in the past")
	}

	claimed, err := s.repo.ClaimSlot(slotID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, apperror.New(apperror.Conflict, "slot already booked")
	}

	b := &Booking{
		ID:            uuid.New(),
		StudentID:     studentID,
		SlotID:        slotID,
		Status:        BookingConfirmed,
		PaymentStatus: PaymentPending,
	}
	if err := s.repo.CreateBooking(b); err != nil {
		// Free the slot so the failed claim does not strand it.
		if relErr := s.repo.ReleaseSlot(slotID); relErr != nil {
			log.WithError(relErr).WithField("slot_id", slotID.String()).
				Error("failed to release slot after booking failure")
		}
		return nil, err
	}

	log.WithField("student_id", studentID.String()).Info("slot booked")
	return b, nil
}

func (s *service) Cancel(ctx context.Context, studentID, bookingID uuid.UUID) error {
	b, err := s.repo.BookingByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return apperror.New(apperror.NotFound, "booking not found")
	}
	if studentID != uuid.Nil && b.StudentID != studentID {
		return apperror.New(apperror.Forbidden, "booking belongs to another student")
	}
	if b.Status == BookingCancelled {
		return apperror.New(apperror.Conflict, "booking already cancelled")
	}

	if err := s.repo.CancelBooking(bookingID); err != nil {
		return err
	}
	return s.repo.ReleaseSlot(b.SlotID)
}

func (s *service) MyBookings(ctx context.Context, studentID uuid.UUID) ([]BookingRow, error) {
	return s.repo.BookingsByStudent(studentID)
}

func (s *service) CreateCounselor(ctx context.Context, dto CreateCounselorDTO) (*Counselor, error) {
	c := &Counselor{
		ID:              uuid.New(),
		Name:            dto.Name,
		Specialization:  dto.Specialization,
		ExperienceYears: dto.ExperienceYears,
	}
	if err := s.repo.CreateCounselor(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateCounselor(ctx context.Context, id uuid.UUID, dto UpdateCounselorDTO) (*Counselor, error) {
	c, err := s.repo.CounselorByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.New(apperror.NotFound, "counselor not found")
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Specialization != nil {
		c.Specialization = *dto.Specialization
	}
	if dto.ExperienceYears != nil {
		c.ExperienceYears = *dto.ExperienceYears
	}
	if err := s.repo.UpdateCounselor(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCounselor(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.CounselorByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperror.New(apperror.NotFound, "counselor not found")
	}
	return s.repo.DeleteCounselor(id)
}

func (s *service) CreateSlot(ctx context.Context, dto CreateSlotDTO) (*Slot, error) {
	counselorID, err := uuid.Parse(dto.CounselorID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid counselor id")
	}

	c, err := s.repo.CounselorByID(counselorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.New(apperror.NotFound, "counselor not found")
	}
	if dto.SlotTime.Before(time.Now()) {
		return nil, apperror.New(apperror.Validation, "slot time must be in the future")
	}

	slot := &Slot{
		ID:          uuid.New(),
		CounselorID: counselorID,
		SlotTime:    dto.SlotTime,
	}
	if err := s.repo.CreateSlot(slot); err != nil {
		return nil, err
	}
	return slot, nil
}
