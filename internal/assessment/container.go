package assessment

import "gorm.io/gorm"

type AssessmentContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewAssessmentContainer(db *gorm.DB) *AssessmentContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &AssessmentContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
