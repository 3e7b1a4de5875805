package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MaxBatchResumes bounds the number of résumés in one batch request.
const MaxBatchResumes = 50

// AnalyzeRequest is the body of a single analysis request.
type AnalyzeRequest struct {
	Resume         string `json:"resume" validate:"required,notblank"`
	JobDescription string `json:"job_description" validate:"required,notblank"`
	FileName       string `json:"file_name,omitempty" validate:"max=255"`
}

// ResumeInput is one résumé inside a batch request.
type ResumeInput struct {
	FileName string `json:"file_name" validate:"max=255"`
	Text     string `json:"text" validate:"required,notblank"`
}

// BatchRequest compares several résumés with one job description.
type BatchRequest struct {
	JobDescription string        `json:"job_description" validate:"required,notblank"`
	Resumes        []ResumeInput `json:"resumes" validate:"required,min=1,max=50,dive"`
}

// NewValidator returns a validator with the rules these requests rely on.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return validate
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return NewValidator().Struct(r)
}

// Validate validates the BatchRequest using the validator.
func (r *BatchRequest) Validate() error {
	return NewValidator().Struct(r)
}
