package scoring

import (
	"math"
	"time"

	"github.com/jonathan/resume-ranker/internal/suggestions"
	"github.com/jonathan/resume-ranker/internal/types"
)

// DefaultJobTitle is used when the caller does not name the position.
const DefaultJobTitle = "Job Position"

// BuildReport assembles a shareable report from an analysis result, scaling
// scores to percentages and attaching recommendations.
func BuildReport(result types.AnalysisResult, resumeFilename, jobTitle string) types.AnalysisReport {
	if jobTitle == "" {
		jobTitle = DefaultJobTitle
	}

	return types.AnalysisReport{
		ResumeFilename: resumeFilename,
		JobTitle:       jobTitle,
		AnalysisDate:   time.Now(),
		Scores: types.ScoreBreakdown{
			Overall:        toPercent(result.OverallScore),
			Skills:         toPercent(result.SkillsScore),
			Experience:     toPercent(result.ExperienceScore),
			Education:      toPercent(result.EducationScore),
			TextSimilarity: toPercent(result.TextSimilarity),
		},
		SkillsAnalysis: types.SkillsAnalysis{
			MatchedSkills:     result.MatchedSkills,
			MissingSkills:     result.MissingSkills,
			TotalResumeSkills: len(result.ResumeSkills),
			TotalJobSkills:    len(result.JobSkills),
		},
		Recommendations:     suggestions.Improvements(result),
		SkillGapSuggestions: suggestions.SkillGap(result.MissingSkills, result.MatchedSkills),
	}
}

// toPercent converts a 0..1 score to a percentage rounded to two decimals.
func toPercent(score float64) float64 {
	return math.Round(score*10000) / 100
}
