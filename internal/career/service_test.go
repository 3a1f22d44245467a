package career

import (
	"context"
	"testing"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/assessment"
	"github.com/careerclarity/careerclarity-api/internal/college"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	careers     map[uuid.UUID]*Career
	matched     []Career
	topCareers  []Career
	junction    map[uuid.UUID][]college.College
	anyColleges []college.College

	lastCategories []string
	lastLetters    []string
	lastNameLike   string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		careers:  map[uuid.UUID]*Career{},
		junction: map[uuid.UUID][]college.College{},
	}
}

func (f *fakeRepo) List() ([]Career, error) {
	var out []Career
	for _, c := range f.careers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepo) FindByID(id uuid.UUID) (*Career, error) { return f.careers[id], nil }

func (f *fakeRepo) Create(c *Career) error {
	f.careers[c.ID] = c
	return nil
}

func (f *fakeRepo) Update(c *Career) error {
	f.careers[c.ID] = c
	return nil
}

func (f *fakeRepo) Delete(id uuid.UUID) error {
	delete(f.careers, id)
	return nil
}

func (f *fakeRepo) Matching(categories, letters []string, nameLike string, limit int) ([]Career, error) {
	f.lastCategories = categories
	f.lastLetters = letters
	f.lastNameLike = nameLike
	if len(f.matched) > limit {
		return f.matched[:limit], nil
	}
	return f.matched, nil
}

func (f *fakeRepo) Top(limit int) ([]Career, error) {
	if len(f.topCareers) > limit {
		return f.topCareers[:limit], nil
	}
	return f.topCareers, nil
}

func (f *fakeRepo) CollegesForCareer(careerID uuid.UUID, limit int) ([]college.College, error) {
	cs := f.junction[careerID]
	if len(cs) > limit {
		return cs[:limit], nil
	}
	return cs, nil
}

func (f *fakeRepo) AnyColleges(limit int) ([]college.College, error) {
	if len(f.anyColleges) > limit {
		return f.anyColleges[:limit], nil
	}
	return f.anyColleges, nil
}

type fakeAssessments struct {
	assessment.Service
	scores []assessment.CategoryScore
}

func (f *fakeAssessments) Results(ctx context.Context, studentID uuid.UUID) ([]assessment.CategoryScore, error) {
	return f.scores, nil
}

func TestRecommended(t *testing.T) {
	t.Run("UsesTopThreeCategories", func(t *testing.T) {
		repo := newFakeRepo()
		repo.matched = []Career{{ID: uuid.New(), Name: "Engineer"}}
		svc := NewService(repo, &fakeAssessments{scores: []assessment.CategoryScore{
			{Category: "Realistic", Total: 40},
			{Category: "Investigative", Total: 35},
			{Category: "Artistic", Total: 20},
			{Category: "Social", Total: 10},
		}})

		rec, err := svc.Recommended(context.Background(), uuid.New())
		require.NoError(t, err)
		require.Equal(t, []string{"Realistic", "Investigative", "Artistic"}, rec.TopCategories)
		require.Equal(t, []string{"R", "I", "A"}, repo.lastLetters)
		require.Equal(t, "Realistic", repo.lastNameLike)
		require.Len(t, rec.Careers, 1)
	})

	t.Run("FallsBackWhenNoMatches", func(t *testing.T) {
		repo := newFakeRepo()
		repo.topCareers = []Career{{Name: "Doctor"}, {Name: "Lawyer"}}
		svc := NewService(repo, &fakeAssessments{scores: []assessment.CategoryScore{
			{Category: "Social", Total: 5},
		}})

		rec, err := svc.Recommended(context.Background(), uuid.New())
		require.NoError(t, err)
		require.Len(t, rec.Careers, 2)
	})

	t.Run("NoScoresYet", func(t *testing.T) {
		repo := newFakeRepo()
		repo.topCareers = []Career{{Name: "Doctor"}}
		svc := NewService(repo, &fakeAssessments{})

		rec, err := svc.Recommended(context.Background(), uuid.New())
		require.NoError(t, err)
		require.Empty(t, rec.TopCategories)
		require.Len(t, rec.Careers, 1)
	})

	t.Run("CapsAtSixCareers", func(t *testing.T) {
		repo := newFakeRepo()
		for i := 0; i < 10; i++ {
			repo.matched = append(repo.matched, Career{ID: uuid.New()})
		}
		svc := NewService(repo, &fakeAssessments{scores: []assessment.CategoryScore{
			{Category: "Realistic", Total: 1},
		}})

		rec, err := svc.Recommended(context.Background(), uuid.New())
		require.NoError(t, err)
		require.Len(t, rec.Careers, 6)
	})
}

func TestColleges(t *testing.T) {
	t.Run("ReturnsJunctionMatches", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &fakeAssessments{})

		c, err := svc.Create(context.Background(), CreateCareerDTO{Name: "Engineer"})
		require.NoError(t, err)
		repo.junction[c.ID] = []college.College{{Name: "IIT Delhi"}}

		resp, err := svc.Colleges(context.Background(), c.ID)
		require.NoError(t, err)
		require.Len(t, resp.Colleges, 1)
		require.Equal(t, "IIT Delhi", resp.Colleges[0].Name)
	})

	t.Run("FallsBackToAnyColleges", func(t *testing.T) {
		repo := newFakeRepo()
		repo.anyColleges = []college.College{{Name: "NIT Trichy"}}
		svc := NewService(repo, &fakeAssessments{})

		c, err := svc.Create(context.Background(), CreateCareerDTO{Name: "Engineer"})
		require.NoError(t, err)

		resp, err := svc.Colleges(context.Background(), c.ID)
		require.NoError(t, err)
		require.Len(t, resp.Colleges, 1)
	})

	t.Run("UnknownCareer", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeAssessments{})
		_, err := svc.Colleges(context.Background(), uuid.New())
		require.Error(t, err)
		require.Equal(t, apperror.NotFound, apperror.KindOf(err))
	})
}

func TestCareerCRUD(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeAssessments{})

	t.Run("CreateSerializesTags", func(t *testing.T) {
		c, err := svc.Create(context.Background(), CreateCareerDTO{
			Name: "Data Scientist",
			Tags: []string{"analytics", "ml"},
		})
		require.NoError(t, err)
		require.JSONEq(t, `["analytics","ml"]`, string(c.Tags))
	})

	t.Run("UpdatePartial", func(t *testing.T) {
		c, err := svc.Create(context.Background(), CreateCareerDTO{Name: "Pilot", Category: "Realistic"})
		require.NoError(t, err)

		code := "RE"
		updated, err := svc.Update(context.Background(), c.ID, UpdateCareerDTO{RiasecCode: &code})
		require.NoError(t, err)
		require.Equal(t, "Pilot", updated.Name)
		require.Equal(t, "RE", updated.RiasecCode)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		err := svc.Delete(context.Background(), uuid.New())
		require.Error(t, err)
		require.Equal(t, apperror.NotFound, apperror.KindOf(err))
	})
}
