package types

import (
	"github.com/go-playground/validator/v10"
)

// GenerateRequest is the request body for POST /generate.
// Exactly one of JobDescription or JobURL should carry the posting;
// when both are set the inline text wins.
type GenerateRequest struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"job_description"`
	JobURL         string `json:"job_url,omitempty"`
	JobTitle       string `json:"job_title"`
	HoursPerDay    int    `json:"hours_per_day,omitempty" validate:"omitempty,min=1,max=24"`
}

// SalaryRequest is the request body for POST /api/salary-prediction.
type SalaryRequest struct {
	Role       string `json:"role"`
	Experience int    `json:"experience" validate:"min=0"`
}

// QuizRequest is the request body for POST /validate-skill.
type QuizRequest struct {
	Skill string `json:"skill"`
}

// InterviewRequest is the request body for POST /api/interview-questions.
type InterviewRequest struct {
	Role string `json:"role"`
}

// ProfileRequest is the request body for POST /api/analyze-profile.
type ProfileRequest struct {
	Resume   string `json:"resume"`
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
}

// JobAnalysisRequest is the request body for POST /api/analyze-job.
type JobAnalysisRequest struct {
	JobDescription string `json:"job_description"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SalaryRequest using the validator.
func (r *SalaryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
