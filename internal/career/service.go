package career

import (
	"context"
	"encoding/json"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/assessment"
	"github.com/careerclarity/careerclarity-api/internal/college"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

const (
	recommendationLimit = 6
	collegeLimit        = 5
	topCategoryCount    = 3
)

type Service interface {
	List(ctx context.Context) ([]Career, error)
	Get(ctx context.Context, id uuid.UUID) (*Career, error)
	Recommended(ctx context.Context, studentID uuid.UUID) (*RecommendationResponse, error)
	Colleges(ctx context.Context, careerID uuid.UUID) (*CareerCollegesResponse, error)

	Create(ctx context.Context, dto CreateCareerDTO) (*Career, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateCareerDTO) (*Career, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo        Repository
	assessments assessment.Service
}

func NewService(repo Repository, assessments assessment.Service) Service {
	return &service{repo: repo, assessments: assessments}
}

func (s *service) List(ctx context.Context) ([]Career, error) {
	return s.repo.List()
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Career, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.New(apperror.NotFound, "career not found")
	}
	return c, nil
}

// Recommended matches careers against the student's three strongest score
// categories. When nothing matches, or the student has no scores yet, an
// arbitrary set is returned so the response is never empty.
func (s *service) Recommended(ctx context.Context, studentID uuid.UUID) (*RecommendationResponse, error) {
	scores, err := s.assessments.Results(ctx, studentID)
	if err != nil {
		return nil, err
	}

	top := lo.Map(lo.Slice(scores, 0, topCategoryCount), func(cs assessment.CategoryScore, _ int) string {
		return cs.Category
	})

	var careers []Career
	if len(top) > 0 {
		letters := lo.Map(top, func(c string, _ int) string {
			return c[:1]
		})
		careers, err = s.repo.Matching(top, letters, top[0], recommendationLimit)
		if err != nil {
			return nil, err
		}
	}
	if len(careers) == 0 {
		if careers, err = s.repo.Top(recommendationLimit); err != nil {
			return nil, err
		}
	}

	return &RecommendationResponse{TopCategories: top, Careers: careers}, nil
}

func (s *service) Colleges(ctx context.Context, careerID uuid.UUID) (*CareerCollegesResponse, error) {
	if _, err := s.Get(ctx, careerID); err != nil {
		return nil, err
	}

	colleges, err := s.repo.CollegesForCareer(careerID, collegeLimit)
	if err != nil {
		return nil, err
	}
	if len(colleges) == 0 {
		if colleges, err = s.repo.AnyColleges(collegeLimit); err != nil {
			return nil, err
		}
	}
	if colleges == nil {
		colleges = []college.College{}
	}

	return &CareerCollegesResponse{CareerID: careerID.String(), Colleges: colleges}, nil
}

func tagsJSON(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		return nil, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (s *service) Create(ctx context.Context, dto CreateCareerDTO) (*Career, error) {
	tags, err := tagsJSON(dto.Tags)
	if err != nil {
		return nil, err
	}

	c := &Career{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
		Category:    dto.Category,
		RiasecCode:  dto.RiasecCode,
		Tags:        tags,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateCareerDTO) (*Career, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}
	if dto.Category != nil {
		c.Category = *dto.Category
	}
	if dto.RiasecCode != nil {
		c.RiasecCode = *dto.RiasecCode
	}
	if dto.Tags != nil {
		tags, err := tagsJSON(dto.Tags)
		if err != nil {
			return nil, err
		}
		c.Tags = tags
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
