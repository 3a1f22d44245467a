package booking

import "gorm.io/gorm"

type BookingContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewBookingContainer(db *gorm.DB) *BookingContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &BookingContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
