package booking

import (
	"context"
	"testing"
	"time"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	util "github.com/careerclarity/careerclarity-api/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	counselors map[uuid.UUID]*Counselor
	slots      map[uuid.UUID]*Slot
	bookings   map[uuid.UUID]*Booking

	failCreateBooking bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		counselors: map[uuid.UUID]*Counselor{},
		slots:      map[uuid.UUID]*Slot{},
		bookings:   map[uuid.UUID]*Booking{},
	}
}

func (f *fakeRepo) addSlot(at time.Time) *Slot {
	c := &Counselor{ID: uuid.New(), Name: "Meera"}
	f.counselors[c.ID] = c
	s := &Slot{ID: uuid.New(), CounselorID: c.ID, SlotTime: util.LocalDateTime{Time: at}}
	f.slots[s.ID] = s
	return s
}

func (f *fakeRepo) ListCounselors() ([]Counselor, error) {
	var out []Counselor
	for _, c := range f.counselors {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepo) CounselorByID(id uuid.UUID) (*Counselor, error) { return f.counselors[id], nil }

func (f *fakeRepo) CreateCounselor(c *Counselor) error {
	f.counselors[c.ID] = c
	return nil
}

func (f *fakeRepo) UpdateCounselor(c *Counselor) error {
	f.counselors[c.ID] = c
	return nil
}

func (f *fakeRepo) DeleteCounselor(id uuid.UUID) error {
	delete(f.counselors, id)
	return nil
}

func (f *fakeRepo) CreateSlot(s *Slot) error {
	f.slots[s.ID] = s
	return nil
}

func (f *fakeRepo) SlotByID(id uuid.UUID) (*Slot, error) { return f.slots[id], nil }

func (f *fakeRepo) OpenSlots(counselorID *uuid.UUID, after time.Time) ([]Slot, error) {
	var out []Slot
	for _, s := range f.slots {
		if s.IsBooked || !s.SlotTime.After(after) {
			continue
		}
		if counselorID != nil && s.CounselorID != *counselorID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeRepo) ClaimSlot(slotID uuid.UUID) (bool, error) {
	s := f.slots[slotID]
	if s == nil || s.IsBooked {
		return false, nil
	}
	s.IsBooked = true
	return true, nil
}

func (f *fakeRepo) ReleaseSlot(slotID uuid.UUID) error {
	if s := f.slots[slotID]; s != nil {
		s.IsBooked = false
	}
	return nil
}

func (f *fakeRepo) CreateBooking(b *Booking) error {
	if f.failCreateBooking {
		return context.DeadlineExceeded
	}
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) BookingByID(id uuid.UUID) (*Booking, error) { return f.bookings[id], nil }

func (f *fakeRepo) BookingsByStudent(studentID uuid.UUID) ([]BookingRow, error) {
	var out []BookingRow
	for _, b := range f.bookings {
		if b.StudentID == studentID {
			out = append(out, BookingRow{ID: b.ID, Status: b.Status, PaymentStatus: b.PaymentStatus})
		}
	}
	return out, nil
}

func (f *fakeRepo) CancelBooking(id uuid.UUID) error {
	f.bookings[id].Status = BookingCancelled
	return nil
}

func TestBook(t *testing.T) {
	t.Run("ClaimsSlotAndCreatesBooking", func(t *testing.T) {
		repo := newFakeRepo()
		slot := repo.addSlot(time.Now().Add(24 * time.Hour))
		svc := NewService(repo)
		studentID := uuid.New()

		b, err := svc.Book(context.Background(), studentID, slot.ID)
		require.NoError(t, err)
		require.Equal(t, BookingConfirmed, b.Status)
		require.Equal(t, PaymentPending, b.PaymentStatus)
		require.True(t, repo.slots[slot.ID].IsBooked)
	})

	t.Run("SecondBookingConflicts", func(t *testing.T) {
		repo := newFakeRepo()
		slot := repo.addSlot(time.Now().Add(24 * time.Hour))
		svc := NewService(repo)

		_, err := svc.Book(context.Background(), uuid.New(), slot.ID)
		require.NoError(t, err)

		_, err = svc.Book(context.Background(), uuid.New(), slot.ID)
		require.Error(t, err)
		require.Equal(t, apperror.Conflict, apperror.KindOf(err))
	})

	t.Run("PastSlotRejected", func(t *testing.T) {
		repo := newFakeRepo()
		slot := repo.addSlot(time.Now().Add(-time.Hour))
		svc := NewService(repo)

		_, err := svc.Book(context.Background(), uuid.New(), slot.ID)
		require.Error(t, err)
		require.Equal(t, apperror.Validation, apperror.KindOf(err))
	})

	t.Run("UnknownSlot", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.Book(context.Background(), uuid.New(), uuid.New())
		require.Error(t, err)
		require.Equal(t, apperror.NotFound, apperror.KindOf(err))
	})

	t.Run("ReleasesSlotWhenBookingInsertFails", func(t *testing.T) {
		repo := newFakeRepo()
		slot := repo.addSlot(time.Now().Add(24 * time.Hour))
		repo.failCreateBooking = true
		svc := NewService(repo)

		_, err := svc.Book(context.Background(), uuid.New(), slot.ID)
		require.Error(t, err)
		require.False(t, repo.slots[slot.ID].IsBooked)
	})
}

func TestCancel(t *testing.T) {
	t.Run("CancelsAndFreesSlot", func(t *testing.T) {
		repo := newFakeRepo()
		slot := repo.addSlot(time.Now().Add(24 * time.Hour))
		svc := NewService(repo)
		studentID := uuid.New()

		b, err := svc.Book(context.Background(), studentID, slot.ID)
		require.NoError(t, err)

		require.NoError(t, svc.Cancel(context.Background(), studentID, b.ID))
		require.Equal(t, BookingCancelled, repo.bookings[b.ID].Status)
		require.False(t, repo.slots[slot.ID].IsBooked)
	})

	t.Run("OtherStudentsBookingForbidden", func(t *testing.T) {
		repo := newFakeRepo()
		slot := repo.addSlot(time.Now().Add(24 * time.Hour))
		svc := NewService(repo)

		b, err := svc.Book(context.Background(), uuid.New(), slot.ID)
		require.NoError(t, err)

		err = svc.Cancel(context.Background(), uuid.New(), b.ID)
		require.Error(t, err)
		require.Equal(t, apperror.Forbidden, apperror.KindOf(err))
	})

	t.Run("DoubleCancelConflicts", func(t *testing.T) {
		repo := newFakeRepo()
		slot := repo.addSlot(time.Now().Add(24 * time.Hour))
		svc := NewService(repo)
		studentID := uuid.New()

		b, err := svc.Book(context.Background(), studentID, slot.ID)
		require.NoError(t, err)
		require.NoError(t, svc.Cancel(context.Background(), studentID, b.ID))

		err = svc.Cancel(context.Background(), studentID, b.ID)
		require.Error(t, err)
		require.Equal(t, apperror.Conflict, apperror.KindOf(err))
	})
}

func TestCreateSlot(t *testing.T) {
	t.Run("RejectsUnknownCounselor", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.CreateSlot(context.Background(), CreateSlotDTO{
			CounselorID: uuid.New().String(),
			SlotTime:    util.LocalDateTime{Time: time.Now().Add(time.Hour)},
		})
		require.Error(t, err)
		require.Equal(t, apperror.NotFound, apperror.KindOf(err))
	})

	t.Run("RejectsPastTime", func(t *testing.T) {
		repo := newFakeRepo()
		c := &Counselor{ID: uuid.New(), Name: "Meera"}
		repo.counselors[c.ID] = c
		svc := NewService(repo)

		_, err := svc.CreateSlot(context.Background(), CreateSlotDTO{
			CounselorID: c.ID.String(),
			SlotTime:    util.LocalDateTime{Time: time.Now().Add(-time.Hour)},
		})
		require.Error(t, err)
		require.Equal(t, apperror.Validation, apperror.KindOf(err))
	})

	t.Run("CreatesFutureSlot", func(t *testing.T) {
		repo := newFakeRepo()
		c := &Counselor{ID: uuid.New(), Name: "Meera"}
		repo.counselors[c.ID] = c
		svc := NewService(repo)

		slot, err := svc.CreateSlot(context.Background(), CreateSlotDTO{
			CounselorID: c.ID.String(),
			SlotTime:    util.LocalDateTime{Time: time.Now().Add(2 * time.Hour)},
		})
		require.NoError(t, err)
		require.False(t, slot.IsBooked)
		require.Equal(t, c.ID, slot.CounselorID)
	})
}
