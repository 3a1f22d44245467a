package student

import (
	"context"
	"time"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/careerclarity/careerclarity-api/internal/otp"
	"github.com/google/uuid"
)

const tokenTTL = 7 * 24 * time.Hour

type Service interface {
	RequestOTP(ctx context.Context, phone string) (string, error)
	VerifyOTP(ctx context.Context, phone, code string) (*LoginResponse, error)
	CompleteProfile(ctx context.Context, studentID uuid.UUID, dto CompleteProfileDTO) error
	Get(ctx context.Context, id uuid.UUID) (*Student, error)
	List(ctx context.Context) ([]Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	sender otp.Sender
	otpTTL time.Duration
}

func NewService(repo Repository, sender otp.Sender, otpTTL time.Duration) Service {
	return &service{repo: repo, sender: sender, otpTTL: otpTTL}
}

// RequestOTP creates the student record on first contact, then stores a
// fresh code, overwriting any pending one.
func (s *service) RequestOTP(ctx context.Context, phone string) (string, error) {
	log := config.WithContext(ctx)

	st, err := s.repo.FindByPhone(phone)
	if err != nil {
		return "", err
	}
	if st == nil {
		st = &Student{ID: uuid.New(), Phone: phone}
		if err := s.repo.Create(st); err != nil {
			return "", err
		}
	}

	code, err := otp.Generate()
	if err != nil {
		return "", err
	}
	sealed, err := config.Encrypt(code)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetOTP(st.ID, sealed, time.Now().Add(s.otpTTL)); err != nil {
		return "", err
	}

	// Delivery is fire-and-forget: a gateway failure must not break login.
	if err := s.sender.Send(ctx, phone, code); err != nil {
		log.WithError(err).Warn("otp delivery failed")
	}

	log.WithField("phone", phone).Info("otp generated")
	return code, nil
}

func (s *service) VerifyOTP(ctx context.Context, phone, code string) (*LoginResponse, error) {
	log := config.WithContext(ctx)

	st, err := s.repo.FindByPhone(phone)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperror.New(apperror.NotFound, "student not found")
	}

	stored := ""
	if st.OTPCode != "" {
		if stored, err = config.Decrypt(st.OTPCode); err != nil {
			return nil, err
		}
	}

	switch err := otp.Check(stored, st.OTPExpiresAt, code, time.Now()); err {
	case nil:
	case otp.ErrNotRequested:
		return nil, apperror.Wrap(apperror.Unauthorized, "otp not requested, please request a new one", err)
	case otp.ErrExpired:
		return nil, apperror.Wrap(apperror.Unauthorized, "otp expired, please request a new one", err)
	case otp.ErrMismatch:
		return nil, apperror.Wrap(apperror.Unauthorized, "invalid otp", err)
	default:
		return nil, err
	}

	// Single use: the stored code is gone after the first success.
	if err := s.repo.ClearOTP(st.ID); err != nil {
		return nil, err
	}

	token, err := auth.GenerateJWT(st.ID.String(), auth.RoleStudent, tokenTTL)
	if err != nil {
		return nil, err
	}

	log.WithField("student_id", st.ID.String()).Info("student logged in")
	return &LoginResponse{
		Token: token,
		User: UserResponse{
			ID:                st.ID,
			Phone:             st.Phone,
			FullName:          st.FullName,
			IsProfileComplete: st.IsProfileComplete,
		},
	}, nil
}

func (s *service) CompleteProfile(ctx context.Context, studentID uuid.UUID, dto CompleteProfileDTO) error {
	st, err := s.repo.FindByID(studentID)
	if err != nil {
		return err
	}
	if st == nil {
		return apperror.New(apperror.NotFound, "student not found")
	}

	st.FullName = dto.FullName
	st.Grade = dto.Grade
	st.Board = dto.Board
	st.City = dto.City
	return s.repo.UpdateProfile(st)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Student, error) {
	st, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperror.New(apperror.NotFound, "student not found")
	}
	return st, nil
}

func (s *service) List(ctx context.Context) ([]Student, error) {
	return s.repo.List()
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	st, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if st == nil {
		return apperror.New(apperror.NotFound, "student not found")
	}
	return s.repo.Delete(id)
}
