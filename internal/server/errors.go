package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-matcher/internal/batch"
	"github.com/jonathan/resume-matcher/internal/ingestion"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error     string       `json:"error"`
	Fields    []FieldError `json:"fields,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPayloadTooLarge indicates a request body over the configured cap
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		payloadErr    *ErrPayloadTooLarge
		maxBytesErr   *http.MaxBytesError
		tooLargeErr   *ingestion.FileTooLargeError
		emptyErr      *ingestion.EmptyInputError
		encodingErr   *ingestion.InvalidEncodingError
		fieldErrs     validator.ValidationErrors
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &payloadErr), errors.As(err, &maxBytesErr), errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &encodingErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &validationErr), errors.As(err, &emptyErr), errors.As(err, &fieldErrs),
		errors.Is(err, batch.ErrNoInputs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// extractValidationErrors converts validator errors into response fields.
func extractValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, ve := range validationErrors {
		field := ve.Namespace()
		// drop the struct name: "BatchRequest.resumes[0].text" -> "resumes[0].text"
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		fields = append(fields, FieldError{Field: field, Rule: ve.Tag()})
	}
	return fields
}
