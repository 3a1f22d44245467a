package admin

import (
	"github.com/careerclarity/careerclarity-api/internal/student"
	"gorm.io/gorm"
)

type AdminContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewAdminContainer(db *gorm.DB, studentRepo student.Repository) *AdminContainer {
	repo := NewRepository(db)
	service := NewService(repo, studentRepo)
	handler := NewHandler(service)

	return &AdminContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
