package notification

import (
	"context"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/student"
	"github.com/google/uuid"
)

type PagedNotifications struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
	Page          int            `json:"page"`
	PageSize      int            `json:"page_size"`
}

type Service interface {
	ListForStudent(ctx context.Context, studentID uuid.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, actor, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, studentID uuid.UUID) error

	Create(ctx context.Context, dto CreateNotificationDTO) (*Notification, error)
	ListAll(ctx context.Context, q ListQuery) (*PagedNotifications, error)
}

type service struct {
	repo     Repository
	students student.Repository
}

func NewService(repo Repository, students student.Repository) Service {
	return &service{repo: repo, students: students}
}

func (s *service) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]Notification, error) {
	return s.repo.ListByStudent(studentID)
}

// MarkRead lets a student mark only their own notifications. An actor of
// uuid.Nil is an admin and skips the ownership check.
func (s *service) MarkRead(ctx context.Context, actor, notificationID uuid.UUID) error {
	n, err := s.repo.FindByID(notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return apperror.New(apperror.NotFound, "notification not found")
	}
	if actor != uuid.Nil && n.StudentID != actor {
		return apperror.New(apperror.Forbidden, "notification belongs to another student")
	}
	return s.repo.MarkRead(notificationID)
}

func (s *service) MarkAllRead(ctx context.Context, studentID uuid.UUID) error {
	return s.repo.MarkAllRead(studentID)
}

func (s *service) Create(ctx context.Context, dto CreateNotificationDTO) (*Notification, error) {
	studentID, err := uuid.Parse(dto.StudentID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid student id")
	}

	st, err := s.students.FindByID(studentID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperror.New(apperror.NotFound, "student not found")
	}

	typ := dto.Type
	if typ == "" {
		typ = "general"
	}
	n := &Notification{
		ID:        uuid.New(),
		StudentID: studentID,
		Title:     dto.Title,
		Message:   dto.Message,
		Type:      typ,
	}
	if err := s.repo.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) ListAll(ctx context.Context, q ListQuery) (*PagedNotifications, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 || size > 100 {
		size = 20
	}

	list, total, err := s.repo.ListAll((page-1)*size, size)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Notification{}
	}
	return &PagedNotifications{
		Notifications: list,
		Total:         total,
		Page:          page,
		PageSize:      size,
	}, nil
}
