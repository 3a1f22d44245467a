package admin

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByUsername(username string) (*Admin, error)
	Overview() (*OverviewStats, error)
	StudentResults(studentID uuid.UUID) ([]StudentResultRow, error)
	StudentBookings(studentID uuid.UUID) ([]StudentBookingRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUsername(username string) (*Admin, error) {
	var a Admin
	if err := r.db.First(&a, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) Overview() (*OverviewStats, error) {
	var stats OverviewStats

	counts := []struct {
		table string
		dst   *int64
	}{
		{"students", &stats.TotalStudents},
		{"counselor_bookings", &stats.TotalBookings},
		{"careers", &stats.TotalCareers},
		{"colleges", &stats.TotalColleges},
		{"counselors", &stats.TotalCounselors},
		{"institutes", &stats.TotalInstitutes},
	}
	for _, c := range counts {
		if err := r.db.Table(c.table).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.Table("assessment_sessions").
		Where("status = ?", "completed").
		Distinct("student_id").
		Count(&stats.StudentsCompletedTests).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *repository) StudentResults(studentID uuid.UUID) ([]StudentResultRow, error) {
	var rows []StudentResultRow
	err := r.db.Table("assessment_results AS r").
		Select("r.student_id, r.test_id, t.name AS test_name, r.total_score").
		Joins("JOIN tests t ON t.id = r.test_id").
		Where("r.student_id = ?", studentID).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) StudentBookings(studentID uuid.UUID) ([]StudentBookingRow, error) {
	var rows []StudentBookingRow
	err := r.db.Table("counselor_bookings AS b").
		Select("b.id AS booking_id, b.status, s.slot_time, c.name AS counselor_name").
		Joins("JOIN counselor_slots s ON s.id = b.slot_id").
		Joins("JOIN counselors c ON c.id = s.counselor_id").
		Where("b.student_id = ?", studentID).
		Scan(&rows).Error
	return rows, err
}
