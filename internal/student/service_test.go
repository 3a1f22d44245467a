package student

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/careerclarity/careerclarity-api/internal/otp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("CRYPTO_KEY", "01234567890123456789012345678901")
	os.Setenv("JWT_SECRET", "student-service-test-secret")
	config.Init()
	config.InitCrypto()
	auth.Init()
	os.Exit(m.Run())
}

type fakeRepo struct {
	students map[string]*Student
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{students: make(map[string]*Student)}
}

func (f *fakeRepo) Create(s *Student) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.students[s.Phone] = s
	return nil
}

func (f *fakeRepo) FindByPhone(phone string) (*Student, error) {
	s, ok := f.students[phone]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) FindByID(id uuid.UUID) (*Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) SetOTP(id uuid.UUID, sealed string, expiresAt time.Time) error {
	for _, s := range f.students {
		if s.ID == id {
			s.OTPCode = sealed
			s.OTPExpiresAt = &expiresAt
			return nil
		}
	}
	return errors.New("student not found")
}

func (f *fakeRepo) ClearOTP(id uuid.UUID) error {
	for _, s := range f.students {
		if s.ID == id {
			s.OTPCode = ""
			s.OTPExpiresAt = nil
			return nil
		}
	}
	return errors.New("student not found")
}

func (f *fakeRepo) UpdateProfile(s *Student) error {
	stored, ok := f.students[s.Phone]
	if !ok {
		return errors.New("student not found")
	}
	stored.FullName = s.FullName
	stored.Grade = s.Grade
	stored.Board = s.Board
	stored.City = s.City
	stored.IsProfileComplete = true
	return nil
}

func (f *fakeRepo) List() ([]Student, error) {
	var out []Student
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeRepo) Delete(id uuid.UUID) error {
	for phone, s := range f.students {
		if s.ID == id {
			delete(f.students, phone)
			return nil
		}
	}
	return nil
}

type noopSender struct{}

func (noopSender) Send(ctx context.Context, phone, code string) error { return nil }

// seedOTP stores a known sealed code directly, bypassing random generation.
func seedOTP(t *testing.T, repo *fakeRepo, phone, code string, expiresAt time.Time) *Student {
	t.Helper()
	st, ok := repo.students[phone]
	if !ok {
		st = &Student{ID: uuid.New(), Phone: phone}
		repo.students[phone] = st
	}
	sealed, err := config.Encrypt(code)
	require.NoError(t, err)
	st.OTPCode = sealed
	st.OTPExpiresAt = &expiresAt
	return st
}

func TestRequestOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("NewStudentIsCreated", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, noopSender{}, 5*time.Minute)

		code, err := svc.RequestOTP(ctx, "9999999999")
		require.NoError(t, err)
		require.Len(t, code, otp.CodeLength)

		st := repo.students["9999999999"]
		require.NotNil(t, st)
		require.NotEmpty(t, st.OTPCode)
		require.NotNil(t, st.OTPExpiresAt)
		require.WithinDuration(t, time.Now().Add(5*time.Minute), *st.OTPExpiresAt, 5*time.Second)
	})

	t.Run("OverwritesPendingCode", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, noopSender{}, 5*time.Minute)

		seedOTP(t, repo, "9999999999", "1111", time.Now().Add(time.Minute))
		before := repo.students["9999999999"].OTPCode

		_, err := svc.RequestOTP(ctx, "9999999999")
		require.NoError(t, err)
		require.NotEqual(t, before, repo.students["9999999999"].OTPCode)
	})
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("SuccessIssuesTokenAndConsumesCode", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, noopSender{}, 5*time.Minute)
		seedOTP(t, repo, "9999999999", "4821", time.Now().Add(300*time.Second))

		login, err := svc.VerifyOTP(ctx, "9999999999", "4821")
		require.NoError(t, err)
		require.NotEmpty(t, login.Token)
		require.Equal(t, "9999999999", login.User.Phone)

		claims, err := auth.ValidateJWT(login.Token)
		require.NoError(t, err)
		require.Equal(t, auth.RoleStudent, claims.Role)

		// Stored code is cleared on first use.
		require.Empty(t, repo.students["9999999999"].OTPCode)

		// A second verification with the same code reports "not requested".
		_, err = svc.VerifyOTP(ctx, "9999999999", "4821")
		require.ErrorIs(t, err, otp.ErrNotRequested)
	})

	t.Run("ExpiredBeatsMismatch", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, noopSender{}, 5*time.Minute)
		seedOTP(t, repo, "9999999999", "4821", time.Now().Add(-time.Second))

		_, err := svc.VerifyOTP(ctx, "9999999999", "4821")
		require.ErrorIs(t, err, otp.ErrExpired)
		require.Equal(t, apperror.Unauthorized, apperror.KindOf(err))
	})

	t.Run("Mismatch", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, noopSender{}, 5*time.Minute)
		seedOTP(t, repo, "9999999999", "4821", time.Now().Add(time.Minute))

		_, err := svc.VerifyOTP(ctx, "9999999999", "0000")
		require.ErrorIs(t, err, otp.ErrMismatch)
	})

	t.Run("UnknownPhone", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, noopSender{}, 5*time.Minute)

		_, err := svc.VerifyOTP(ctx, "0000000000", "4821")
		require.Equal(t, apperror.NotFound, apperror.KindOf(err))
	})
}

func TestCompleteProfile(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, noopSender{}, 5*time.Minute)

	st := seedOTP(t, repo, "8888888888", "1234", time.Now().Add(time.Minute))

	err := svc.CompleteProfile(ctx, st.ID, CompleteProfileDTO{
		FullName: "Asha Verma",
		Grade:    "12",
		Board:    "CBSE",
		City:     "Pune",
	})
	require.NoError(t, err)
	require.True(t, repo.students["8888888888"].IsProfileComplete)
	require.Equal(t, "Asha Verma", repo.students["8888888888"].FullName)
}
