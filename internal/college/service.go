package college

import (
	"context"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]College, error)
	Get(ctx context.Context, id uuid.UUID) (*College, error)
	Create(ctx context.Context, dto CreateCollegeDTO) (*College, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateCollegeDTO) (*College, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Shortlist(ctx context.Context, studentID, collegeID uuid.UUID) error
	RemoveShortlist(ctx context.Context, studentID, collegeID uuid.UUID) error
	ListShortlisted(ctx context.Context, studentID uuid.UUID) ([]College, error)
	IsShortlisted(ctx context.Context, studentID, collegeID uuid.UUID) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]College, error) {
	return s.repo.List()
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*College, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.New(apperror.NotFound, "college not found")
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, dto CreateCollegeDTO) (*College, error) {
	c := &College{
		ID:       uuid.New(),
		Name:     dto.Name,
		Location: dto.Location,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateCollegeDTO) (*College, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Location != nil {
		c.Location = *dto.Location
	}
	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *service) Shortlist(ctx context.Context, studentID, collegeID uuid.UUID) error {
	if _, err := s.Get(ctx, collegeID); err != nil {
		return err
	}
	return s.repo.AddShortlist(studentID, collegeID)
}

func (s *service) RemoveShortlist(ctx context.Context, studentID, collegeID uuid.UUID) error {
	return s.repo.RemoveShortlist(studentID, collegeID)
}

func (s *service) ListShortlisted(ctx context.Context, studentID uuid.UUID) ([]College, error) {
	return s.repo.ListShortlisted(studentID)
}

func (s *service) IsShortlisted(ctx context.Context, studentID, collegeID uuid.UUID) (bool, error) {
	return s.repo.IsShortlisted(studentID, collegeID)
}
