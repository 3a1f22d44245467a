package institute

import (
	"time"

	"github.com/careerclarity/careerclarity-api/internal/otp"
	"gorm.io/gorm"
)

type InstituteContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewInstituteContainer(db *gorm.DB, sender otp.Sender, otpTTL time.Duration) *InstituteContainer {
	repo := NewRepository(db)
	service := NewService(repo, sender, otpTTL)
	handler := NewHandler(service)

	return &InstituteContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
