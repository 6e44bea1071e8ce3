// Package scoring combines extracted resume and job signals with text
// similarity into weighted sub-scores and one overall match score.
package scoring

import (
	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Blend weights for the overall score. Fixed policy constants; they sum to 1
// but the abundance and category bonuses can push the raw sum past 1.0, so
// the overall score is clamped.
const (
	skillsWeight         = 0.4
	experienceWeight     = 0.25
	educationWeight      = 0.15
	textSimilarityWeight = 0.2
)

// Scorer scores resumes against job descriptions. Stateless beyond its two
// collaborators; safe for concurrent use.
type Scorer struct {
	extractor *extraction.Extractor
	engine    *similarity.Engine
}

// NewScorer builds a Scorer over the given extractor and similarity engine.
func NewScorer(extractor *extraction.Extractor, engine *similarity.Engine) *Scorer {
	return &Scorer{extractor: extractor, engine: engine}
}

// NewDefaultScorer builds a Scorer with the default taxonomies and engine.
func NewDefaultScorer() *Scorer {
	return NewScorer(extraction.NewDefault(), similarity.NewEngine())
}

// Score analyzes how well a resume matches a job description.
// signals may carry precomputed resume-side extraction results; nil fields
// (or a nil signals) are extracted from resumeText. Job-side signals are
// always extracted fresh from jobText. The function is total: sparse or
// empty inputs produce the documented default sub-scores, never an error.
func (s *Scorer) Score(resumeText, jobText string, signals *types.ResumeSignals) types.AnalysisResult {
	resumeSkills, resumeYears, resumeEducation := s.resumeSignals(resumeText, signals)

	jobSkills := s.extractor.Skills(jobText)
	jobYears := s.extractor.ExperienceYears(jobText)
	jobEducation := s.extractor.Education(jobText)

	skillsScore := computeSkillsScore(resumeSkills, jobSkills)
	experienceScore := computeExperienceScore(resumeYears, jobYears)
	educationScore := computeEducationScore(resumeEducation, jobEducation)
	textSimilarity := s.engine.Similarity(resumeText, jobText)

	overall := skillsScore*skillsWeight +
		experienceScore*experienceWeight +
		educationScore*educationWeight +
		textSimilarity*textSimilarityWeight
	if overall > 1.0 {
		overall = 1.0
	}

	matched, missing := analyzeSkillMatch(resumeSkills, jobSkills)

	return types.AnalysisResult{
		OverallScore:    overall,
		SkillsScore:     skillsScore,
		ExperienceScore: experienceScore,
		EducationScore:  educationScore,
		TextSimilarity:  textSimilarity,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		JobSkills:       recordNames(jobSkills),
		ResumeSkills:    recordNames(resumeSkills),
	}
}

// resumeSignals resolves the resume-side signals, extracting whatever the
// caller did not precompute.
func (s *Scorer) resumeSignals(resumeText string, signals *types.ResumeSignals) ([]types.SkillRecord, float64, []types.EducationRecord) {
	var skills []types.SkillRecord
	var years float64
	var education []types.EducationRecord

	if signals != nil && signals.Skills != nil {
		skills = signals.Skills
	} else {
		skills = s.extractor.Skills(resumeText)
	}

	if signals != nil && signals.Experience != nil {
		years = *signals.Experience
	} else {
		years = s.extractor.ExperienceYears(resumeText)
	}

	if signals != nil && signals.Education != nil {
		education = signals.Education
	} else {
		education = s.extractor.Education(resumeText)
	}

	return skills, years, education
}

// recordNames projects skill records to their names, preserving order.
func recordNames(records []types.SkillRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}
