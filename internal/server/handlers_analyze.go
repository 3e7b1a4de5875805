package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/batch"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/server/middleware"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// newValidator returns the request validator, reporting fields by their JSON names.
func newValidator() *validator.Validate {
	v := types.NewValidator()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a size-capped JSON body into dst.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &ErrPayloadTooLarge{Limit: maxBytesErr.Limit}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// writeError maps err to a status code and writes it.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		s.errorResponse(w, r, status, "internal server error")
		return
	}

	if fields := extractValidationErrors(err); fields != nil {
		s.jsonResponse(w, r, status, ErrorResponse{
			Error:     "validation_failed",
			Fields:    fields,
			RequestID: middleware.GetRequestID(r),
		})
		return
	}
	s.errorResponse(w, r, status, err.Error())
}

// handleAnalyze compares one résumé with one job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.validator.Struct(&req); err != nil {
		s.writeError(w, r, err)
		return
	}

	source := req.FileName
	if source == "" {
		source = "resume"
	}
	if err := ingestion.CheckText(source, req.Resume, s.maxInputBytes); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := ingestion.CheckText("job description", req.JobDescription, s.maxInputBytes); err != nil {
		s.writeError(w, r, err)
		return
	}

	result := s.analyzer.Analyze(req.Resume, req.JobDescription)

	logging.Ctx(r.Context()).Debug().
		Int("match_percentage", result.MatchPercentage).
		Int("matched", len(result.MatchedSkills)).
		Int("missing", len(result.MissingSkills)).
		Msg("analysis complete")

	s.jsonResponse(w, r, http.StatusOK, types.Comparison{
		ID:        uuid.New(),
		FileName:  req.FileName,
		CreatedAt: time.Now().UTC(),
		Result:    result,
	})
}

// handleAnalyzeBatch ranks several résumés against one job description
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.validator.Struct(&req); err != nil {
		s.writeError(w, r, err)
		return
	}

	inputs := make([]batch.Input, 0, len(req.Resumes))
	for _, res := range req.Resumes {
		inputs = append(inputs, batch.Input{FileName: res.FileName, Text: res.Text})
	}

	report, err := batch.Run(r.Context(), s.analyzer, req.JobDescription, inputs, batch.Options{
		Concurrency:   s.concurrency,
		MaxInputBytes: s.maxInputBytes,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, report)
}

// SkillsResponse lists the skill vocabulary
type SkillsResponse struct {
	Categories []SkillCategory `json:"categories"`
}

// SkillCategory is one vocabulary category in SkillsResponse
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// handleSkills returns the skill vocabulary, optionally filtered by ?category=
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	categories := skills.Categories()
	if name := r.URL.Query().Get("category"); name != "" {
		c, ok := skills.CategoryByName(name)
		if !ok {
			s.errorResponse(w, r, http.StatusNotFound, "unknown category: "+name)
			return
		}
		categories = []skills.Category{c}
	}

	resp := SkillsResponse{Categories: make([]SkillCategory, 0, len(categories))}
	for _, c := range categories {
		names := make([]string, 0, len(c.Terms))
		for _, t := range c.Terms {
			names = append(names, t.Name)
		}
		resp.Categories = append(resp.Categories, SkillCategory{Name: c.Name, Skills: names})
	}

	s.jsonResponse(w, r, http.StatusOK, resp)
}
