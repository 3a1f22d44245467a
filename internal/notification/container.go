package notification

import (
	"github.com/careerclarity/careerclarity-api/internal/student"
	"gorm.io/gorm"
)

type NotificationContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewNotificationContainer(db *gorm.DB, students student.Repository) *NotificationContainer {
	repo := NewRepository(db)
	service := NewService(repo, students)
	handler := NewHandler(service)

	return &NotificationContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
