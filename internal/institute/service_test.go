package institute

import (
	"context"
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
	os.Setenv("JWT_SECRET", "institute-service-test-secret")
	config.Init()
	config.InitCrypto()
	auth.Init()
	os.Exit(m.Run())
}

type fakeRepo struct {
	institutes map[string]*Institute
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{institutes: map[string]*Institute{}}
}

func (f *fakeRepo) Upsert(i *Institute) error {
	if existing, ok := f.institutes[i.Phone]; ok {
		existing.Name = i.Name
		existing.OTPCode = i.OTPCode
		existing.OTPExpiresAt = i.OTPExpiresAt
		return nil
	}
	f.institutes[i.Phone] = i
	return nil
}

func (f *fakeRepo) FindByPhone(phone string) (*Institute, error) {
	i, ok := f.institutes[phone]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (f *fakeRepo) ClearOTP(id uuid.UUID) error {
	for _, i := range f.institutes {
		if i.ID == id {
			i.OTPCode = ""
			i.OTPExpiresAt = nil
		}
	}
	return nil
}

func (f *fakeRepo) List() ([]Institute, error) {
	var out []Institute
	for _, i := range f.institutes {
		out = append(out, *i)
	}
	return out, nil
}

type recordingSender struct {
	codes []string
}

func (r *recordingSender) Send(ctx context.Context, phone, code string) error {
	r.codes = append(r.codes, code)
	return nil
}

func TestRequestOTP(t *testing.T) {
	t.Run("UpsertsAndStoresSealedCode", func(t *testing.T) {
		repo := newFakeRepo()
		sender := &recordingSender{}
		svc := NewService(repo, sender, 2*time.Minute)

		code, err := svc.RequestOTP(context.Background(), "Sunrise Academy", "8887776661")
		require.NoError(t, err)
		require.Len(t, code, otp.CodeLength)

		inst := repo.institutes["8887776661"]
		require.NotNil(t, inst)
		require.NotEqual(t, code, inst.OTPCode)
		require.WithinDuration(t, time.Now().Add(2*time.Minute), *inst.OTPExpiresAt, 5*time.Second)
		require.Equal(t, []string{code}, sender.codes)
	})

	t.Run("SecondRequestOverwritesPendingCode", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &recordingSender{}, 2*time.Minute)

		first, err := svc.RequestOTP(context.Background(), "Sunrise Academy", "8887776661")
		require.NoError(t, err)
		_, err = svc.RequestOTP(context.Background(), "Sunrise Academy", "8887776661")
		require.NoError(t, err)

		_, err = svc.VerifyOTP(context.Background(), "8887776661", first)
		require.Error(t, err)
		require.Equal(t, apperror.Unauthorized, apperror.KindOf(err))
	})
}

func TestVerifyOTP(t *testing.T) {
	t.Run("IssuesInstituteToken", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &recordingSender{}, 2*time.Minute)

		code, err := svc.RequestOTP(context.Background(), "Sunrise Academy", "8887776661")
		require.NoError(t, err)

		login, err := svc.VerifyOTP(context.Background(), "8887776661", code)
		require.NoError(t, err)
		require.NotEmpty(t, login.Token)

		claims, err := auth.ValidateJWT(login.Token)
		require.NoError(t, err)
		require.Equal(t, auth.RoleInstitute, claims.Role)
	})

	t.Run("CodeIsSingleUse", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &recordingSender{}, 2*time.Minute)

		code, err := svc.RequestOTP(context.Background(), "Sunrise Academy", "8887776661")
		require.NoError(t, err)

		_, err = svc.VerifyOTP(context.Background(), "8887776661", code)
		require.NoError(t, err)

		_, err = svc.VerifyOTP(context.Background(), "8887776661", code)
		require.Error(t, err)
		require.ErrorIs(t, err, otp.ErrNotRequested)
	})

	t.Run("UnknownPhone", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &recordingSender{}, 2*time.Minute)
		_, err := svc.VerifyOTP(context.Background(), "0000000000", "1234")
		require.Error(t, err)
		require.Equal(t, apperror.NotFound, apperror.KindOf(err))
	})

	t.Run("ExpiredCode", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &recordingSender{}, 2*time.Minute)

		code, err := svc.RequestOTP(context.Background(), "Sunrise Academy", "8887776661")
		require.NoError(t, err)

		past := time.Now().Add(-time.Minute)
		repo.institutes["8887776661"].OTPExpiresAt = &past

		_, err = svc.VerifyOTP(context.Background(), "8887776661", code)
		require.Error(t, err)
		require.ErrorIs(t, err, otp.ErrExpired)
	})
}
