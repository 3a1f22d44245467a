package container

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/careerclarity/careerclarity-api/internal/admin"
	"github.com/careerclarity/careerclarity-api/internal/assessment"
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/careerclarity/careerclarity-api/internal/booking"
	"github.com/careerclarity/careerclarity-api/internal/career"
	"github.com/careerclarity/careerclarity-api/internal/college"
	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/careerclarity/careerclarity-api/internal/institute"
	"github.com/careerclarity/careerclarity-api/internal/notification"
	"github.com/careerclarity/careerclarity-api/internal/otp"
	"github.com/careerclarity/careerclarity-api/internal/student"
	"gorm.io/gorm"
)

type Container struct {
	DB *gorm.DB

	StudentContainer      *student.StudentContainer
	InstituteContainer    *institute.InstituteContainer
	AdminContainer        *admin.AdminContainer
	AssessmentContainer   *assessment.AssessmentContainer
	CareerContainer       *career.CareerContainer
	CollegeContainer      *college.CollegeContainer
	BookingContainer      *booking.BookingContainer
	NotificationContainer *notification.NotificationContainer
}

func New() *Container {
	config.Init()
	config.InitLogger()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	db, err := config.Connect(context.Background(), dsn)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	sender := otp.NewLogSender()
	studentOTPTTL := time.Duration(config.GetInt("STUDENT_OTP_TTL_MINUTES")) * time.Minute
	instituteOTPTTL := time.Duration(config.GetInt("INSTITUTE_OTP_TTL_MINUTES")) * time.Minute

	studentContainer := student.NewStudentContainer(db, sender, studentOTPTTL)
	instituteContainer := institute.NewInstituteContainer(db, sender, instituteOTPTTL)
	adminContainer := admin.NewAdminContainer(db, studentContainer.Repo)
	assessmentContainer := assessment.NewAssessmentContainer(db)
	careerContainer := career.NewCareerContainer(db, assessmentContainer.Service)
	collegeContainer := college.NewCollegeContainer(db)
	bookingContainer := booking.NewBookingContainer(db)
	notificationContainer := notification.NewNotificationContainer(db, studentContainer.Repo)

	return &Container{
		DB:                    db,
		StudentContainer:      studentContainer,
		InstituteContainer:    instituteContainer,
		AdminContainer:        adminContainer,
		AssessmentContainer:   assessmentContainer,
		CareerContainer:       careerContainer,
		CollegeContainer:      collegeContainer,
		BookingContainer:      bookingContainer,
		NotificationContainer: notificationContainer,
	}
}

func (c *Container) Close() error {
	return config.Close(c.DB)
}
