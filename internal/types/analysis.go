// Package types provides type definitions for structured data used throughout the resume-ranker system.
package types

// SkillCategory identifies the taxonomy category a skill belongs to.
type SkillCategory string

// Known skill categories. Technical is reserved for skills surfaced by the
// optional entity recognizer rather than the static taxonomy.
const (
	CategoryProgramming SkillCategory = "programming"
	CategoryFrameworks  SkillCategory = "frameworks"
	CategoryDatabases   SkillCategory = "databases"
	CategoryCloud       SkillCategory = "cloud"
	CategoryDataScience SkillCategory = "data_science"
	CategoryTools       SkillCategory = "tools"
	CategorySoftSkills  SkillCategory = "soft_skills"
	CategoryBusiness    SkillCategory = "business"
	CategoryTechnical   SkillCategory = "technical"
)

// SkillRecord represents a single skill extracted from document text.
type SkillRecord struct {
	Name       string        `json:"skill"`
	Category   SkillCategory `json:"category"`
	Confidence float64       `json:"confidence"` // 0-1
}

// EducationRecord represents one education entry extracted from document text.
// Degree and Field are title-cased; "Unknown" marks an absent half of the pair.
type EducationRecord struct {
	Degree     string  `json:"degree"`
	Field      string  `json:"field"`
	Confidence float64 `json:"confidence"` // 0-1
}

// ContactInfo holds contact fields extracted from a resume.
// Empty string means the field was not found (first match wins per field).
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// AnalysisResult is the full scoring output for one resume against one job description.
// All scores are in [0,1]; OverallScore is the weighted sum clamped to 1.0.
type AnalysisResult struct {
	OverallScore    float64  `json:"overall_score"`
	SkillsScore     float64  `json:"skills_score"`
	ExperienceScore float64  `json:"experience_score"`
	EducationScore  float64  `json:"education_score"`
	TextSimilarity  float64  `json:"text_similarity"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	JobSkills       []string `json:"job_skills"`
	ResumeSkills    []string `json:"resume_skills"`
}
