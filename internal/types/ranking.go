package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeSignals carries precomputed extraction results for a resume.
// Nil fields mean "not provided" and are extracted from the text on demand.
type ResumeSignals struct {
	Skills     []SkillRecord     `json:"skills,omitempty"`
	Experience *float64          `json:"experience,omitempty"`
	Education  []EducationRecord `json:"education,omitempty"`
}

// ResumeInput is a single resume submitted for batch ranking.
// Text holds plain UTF-8 already decoded from the source document; binary
// format handling belongs to the caller.
type ResumeInput struct {
	ID       string         `json:"id" validate:"required"`
	Filename string         `json:"filename,omitempty"`
	Text     string         `json:"text"`
	Signals  *ResumeSignals `json:"signals,omitempty"`
}

// Validate validates the ResumeInput using the validator.
func (r *ResumeInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RankedEntry is one resume's position in a ranked batch.
// RankPosition is 1-based, assigned after a stable sort on descending
// overall score (ties keep input order).
type RankedEntry struct {
	ResumeID     string         `json:"resume_id"`
	Filename     string         `json:"filename"`
	Analysis     AnalysisResult `json:"analysis"`
	RankPosition int            `json:"rank_position"`
}
