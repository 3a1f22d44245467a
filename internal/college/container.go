package college

import "gorm.io/gorm"

type CollegeContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewCollegeContainer(db *gorm.DB) *CollegeContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &CollegeContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
