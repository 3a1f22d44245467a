package college

type CreateCollegeDTO struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

type UpdateCollegeDTO struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type ShortlistDTO struct {
	CollegeID string `json:"college_id" validate:"required,uuid"`
}

type ShortlistStatusResponse struct {
	Shortlisted bool `json:"shortlisted"`
}
