package admin

import "github.com/google/uuid"

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

type AdminResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// OverviewStats mirrors the admin dashboard counters.
type OverviewStats struct {
	TotalStudents          int64 `json:"total_students"`
	StudentsCompletedTests int64 `json:"students_completed_tests"`
	TotalBookings          int64 `json:"total_bookings"`
	TotalCareers           int64 `json:"total_careers"`
	TotalColleges          int64 `json:"total_colleges"`
	TotalCounselors        int64 `json:"total_counselors"`
	TotalInstitutes        int64 `json:"total_institutes"`
}

type StudentResultRow struct {
	StudentID  uuid.UUID `json:"student_id"`
	TestID     uuid.UUID `json:"test_id"`
	TestName   string    `json:"test_name"`
	TotalScore int       `json:"total_score"`
}

type StudentBookingRow struct {
	BookingID     uuid.UUID `json:"booking_id"`
	Status        string    `json:"status"`
	SlotTime      string    `json:"slot_time"`
	CounselorName string    `json:"counselor_name"`
}

type StudentDetail struct {
	Student  interface{}         `json:"student"`
	Results  []StudentResultRow  `json:"results"`
	Bookings []StudentBookingRow `json:"bookings"`
}
