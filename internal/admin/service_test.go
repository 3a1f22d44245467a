package admin

import (
	"context"
	"os"
	"testing"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/auth"
	"github.com/careerclarity/careerclarity-api/internal/student"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "admin-service-test-secret")
	auth.Init()
	os.Exit(m.Run())
}

type fakeRepo struct {
	admins   map[string]*Admin
	stats    OverviewStats
	results  []StudentResultRow
	bookings []StudentBookingRow
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{admins: map[string]*Admin{}}
}

func (f *fakeRepo) addAdmin(t *testing.T, username, password string) *Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	a := &Admin{ID: uuid.New(), Username: username, Name: "Site Admin", Password: string(hash)}
	f.admins[username] = a
	return a
}

func (f *fakeRepo) FindByUsername(username string) (*Admin, error) {
	return f.admins[username], nil
}

func (f *fakeRepo) Overview() (*OverviewStats, error) {
	stats := f.stats
	return &stats, nil
}

func (f *fakeRepo) StudentResults(studentID uuid.UUID) ([]StudentResultRow, error) {
	return f.results, nil
}

func (f *fakeRepo) StudentBookings(studentID uuid.UUID) ([]StudentBookingRow, error) {
	return f.bookings, nil
}

type fakeStudents struct {
	student.Repository
	known map[uuid.UUID]*student.Student
}

func (f *fakeStudents) FindByID(id uuid.UUID) (*student.Student, error) {
	return f.known[id], nil
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	repo.addAdmin(t, "admin", "s3cret")
	svc := NewService(repo, &fakeStudents{})

	t.Run("IssuesAdminToken", func(t *testing.T) {
		login, err := svc.Login(context.Background(), "admin", "s3cret")
		require.NoError(t, err)

		claims, err := auth.ValidateJWT(login.Token)
		require.NoError(t, err)
		require.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin", "nope")
		require.Error(t, err)
		require.Equal(t, apperror.Unauthorized, apperror.KindOf(err))
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost", "s3cret")
		require.Error(t, err)
		require.Equal(t, apperror.Unauthorized, apperror.KindOf(err))
	})
}

func TestStudentDetail(t *testing.T) {
	studentID := uuid.New()
	students := &fakeStudents{known: map[uuid.UUID]*student.Student{
		studentID: {ID: studentID, FullName: "Asha"},
	}}

	t.Run("ReturnsResultsAndBookings", func(t *testing.T) {
		repo := newFakeRepo()
		repo.results = []StudentResultRow{{TestName: "riasec", TotalScore: 42}}
		repo.bookings = []StudentBookingRow{{CounselorName: "Meera"}}
		svc := NewService(repo, students)

		detail, err := svc.StudentDetail(context.Background(), studentID)
		require.NoError(t, err)
		require.Len(t, detail.Results, 1)
		require.Len(t, detail.Bookings, 1)
	})

	t.Run("UnknownStudent", func(t *testing.T) {
		svc := NewService(newFakeRepo(), students)
		_, err := svc.StudentDetail(context.Background(), uuid.New())
		require.Error(t, err)
		require.Equal(t, apperror.NotFound, apperror.KindOf(err))
	})
}
