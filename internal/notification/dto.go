package notification

type CreateNotificationDTO struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message"`
	Type      string `json:"type"`
}

type ListQuery struct {
	Page     int
	PageSize int
}
