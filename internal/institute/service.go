package institute

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
	RequestOTP(ctx context.Context, name, phone string) (string, error)
	VerifyOTP(ctx context.Context, phone, code string) (*LoginResponse, error)
	List(ctx context.Context) ([]Institute, error)
}

type service struct {
	repo   Repository
	sender otp.Sender
	otpTTL time.Duration
}

func NewService(repo Repository, sender otp.Sender, otpTTL time.Duration) Service {
	return &service{repo: repo, sender: sender, otpTTL: otpTTL}
}

func (s *service) RequestOTP(ctx context.Context, name, phone string) (string, error) {
	log := config.WithContext(ctx)

	code, err := otp.Generate()
	if err != nil {
		return "", err
	}
	sealed, err := config.Encrypt(code)
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(s.otpTTL)
	inst := &Institute{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		OTPCode:      sealed,
		OTPExpiresAt: &expiresAt,
	}
	if err := s.repo.Upsert(inst); err != nil {
		return "", err
	}

	if err := s.sender.Send(ctx, phone, code); err != nil {
		log.WithError(err).Warn("otp delivery failed")
	}

	log.WithField("phone", phone).Info("institute otp generated")
	return code, nil
}

func (s *service) VerifyOTP(ctx context.Context, phone, code string) (*LoginResponse, error) {
	inst, err := s.repo.FindByPhone(phone)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, apperror.New(apperror.NotFound, "institute not found")
	}

	stored := ""
	if inst.OTPCode != "" {
		if stored, err = config.Decrypt(inst.OTPCode); err != nil {
			return nil, err
		}
	}

	switch err := otp.Check(stored, inst.OTPExpiresAt, code, time.Now()); err {
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

	if err := s.repo.ClearOTP(inst.ID); err != nil {
		return nil, err
	}

	token, err := auth.GenerateJWT(inst.ID.String(), auth.RoleInstitute, tokenTTL)
	if err != nil {
		return nil, err
	}

	config.WithContext(ctx).WithField("institute_id", inst.ID.String()).Info("institute logged in")
	return &LoginResponse{
		Token: token,
		Institute: InstituteResponse{
			ID:    inst.ID,
			Name:  inst.Name,
			Phone: inst.Phone,
		},
	}, nil
}

func (s *service) List(ctx context.Context) ([]Institute, error) {
	return s.repo.List()
}
