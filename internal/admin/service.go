package admin

import (
	"context"
	"time"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/careerclarity/careerclarity-api/internal/student"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type Service interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Overview(ctx context.Context) (*OverviewStats, error)
	StudentDetail(ctx context.Context, studentID uuid.UUID) (*StudentDetail, error)
}

type service struct {
	repo        Repository
	studentRepo student.Repository
}

func NewService(repo Repository, studentRepo student.Repository) Service {
	return &service{repo: repo, studentRepo: studentRepo}
}

func (s *service) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	a, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.New(apperror.Unauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		return nil, apperror.Wrap(apperror.Unauthorized, "invalid credentials", err)
	}

	token, err := auth.GenerateJWT(a.ID.String(), auth.RoleAdmin, tokenTTL)
	if err != nil {
		return nil, err
	}

	name := a.Name
	if name == "" {
		name = a.Username
	}

	config.WithContext(ctx).WithField("admin_id", a.ID.String()).Info("admin logged in")
	return &LoginResponse{
		Token: token,
		Admin: AdminResponse{ID: a.ID, Name: name},
	}, nil
}

func (s *service) Overview(ctx context.Context) (*OverviewStats, error) {
	return s.repo.Overview()
}

func (s *service) StudentDetail(ctx context.Context, studentID uuid.UUID) (*StudentDetail, error) {
	st, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperror.New(apperror.NotFound, "student not found")
	}

	results, err := s.repo.StudentResults(studentID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.StudentBookings(studentID)
	if err != nil {
		return nil, err
	}

	return &StudentDetail{Student: st, Results: results, Bookings: bookings}, nil
}
