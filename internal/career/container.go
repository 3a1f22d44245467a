package career

import (
	"github.com/careerclarity/careerclarity-api/internal/assessment"
	"gorm.io/gorm"
)

type CareerContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewCareerContainer(db *gorm.DB, assessments assessment.Service) *CareerContainer {
	repo := NewRepository(db)
	service := NewService(repo, assessments)
	handler := NewHandler(service)

	return &CareerContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
