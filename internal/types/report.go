package types

import "time"

// ScoreBreakdown holds the sub-scores of an analysis scaled to percentages
// for human-facing reports.
type ScoreBreakdown struct {
	Overall        float64 `json:"overall"`
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Education      float64 `json:"education"`
	TextSimilarity float64 `json:"text_similarity"`
}

// SkillsAnalysis summarizes the skill match for a report.
type SkillsAnalysis struct {
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	TotalResumeSkills int      `json:"total_resume_skills"`
	TotalJobSkills    int      `json:"total_job_skills"`
}

// AnalysisReport is the export-ready view of one analysis, combining scores
// with generated recommendations.
type AnalysisReport struct {
	ResumeFilename      string         `json:"resume_filename"`
	JobTitle            string         `json:"job_title"`
	AnalysisDate        time.Time      `json:"analysis_date"`
	Scores              ScoreBreakdown `json:"scores"`
	SkillsAnalysis      SkillsAnalysis `json:"skills_analysis"`
	Recommendations     []string       `json:"recommendations"`
	SkillGapSuggestions []string       `json:"skill_gap_suggestions"`
}
