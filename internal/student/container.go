package student

import (
	"time"

	"github.com/careerclarity/careerclarity-api/internal/otp"
	"gorm.io/gorm"
)

type StudentContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewStudentContainer(db *gorm.DB, sender otp.Sender, otpTTL time.Duration) *StudentContainer {
	repo := NewRepository(db)
	service := NewService(repo, sender, otpTTL)
	handler := NewHandler(service)

	return &StudentContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
