package types

import (
	"github.com/go-playground/validator/v10"
)

// MinTextLength is the minimum length of extracted text accepted for
// analysis. This is a UX policy of the presentation layer, not a core
// invariant: the engine itself degrades gracefully on short input.
const MinTextLength = 50

// AnalyzeRequest represents an analysis request once the CV text has
// been extracted and the job posting resolved to plain text.
type AnalyzeRequest struct {
	CVText  string `json:"cv_text" validate:"required,min=50"`
	JobText string `json:"job_text" validate:"required,min=50"`
	Junior  bool   `json:"junior"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
