package batch

import (
	"errors"
	"fmt"
)

// ErrNoInputs is returned when a batch contains no résumés.
var ErrNoInputs = errors.New("no resumes to analyze")

// InputError reports a résumé or job description rejected before analysis.
type InputError struct {
	Index    int // position in the submitted batch, -1 for the job description
	FileName string
	Cause    error
}

func (e *InputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid job description: %v", e.Cause)
	}
	if e.FileName != "" {
		return fmt.Sprintf("invalid resume %d (%s): %v", e.Index, e.FileName, e.Cause)
	}
	return fmt.Sprintf("invalid resume %d: %v", e.Index, e.Cause)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
