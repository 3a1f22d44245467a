package career

import "github.com/careerclarity/careerclarity-api/internal/college"

type CreateCareerDTO struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	RiasecCode  string   `json:"riasec_code"`
	Tags        []string `json:"tags"`
}

type UpdateCareerDTO struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	RiasecCode  *string  `json:"riasec_code"`
	Tags        []string `json:"tags"`
}

type RecommendationResponse struct {
	TopCategories []string `json:"top_categories"`
	Careers       []Career `json:"careers"`
}

type CareerCollegesResponse struct {
	CareerID string            `json:"career_id"`
	Colleges []college.College `json:"colleges"`
}
