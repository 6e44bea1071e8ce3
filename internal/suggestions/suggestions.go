// Package suggestions derives human-readable improvement and skill-gap
// advice from a scoring analysis.
package suggestions

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Sub-scores below these thresholds trigger a targeted suggestion.
const (
	subScoreThreshold   = 0.6
	similarityThreshold = 0.4
)

const (
	// maxSuggestions caps the improvement list; generic tips fill whatever
	// room the targeted suggestions leave.
	maxSuggestions = 5

	// maxSkillsNamed limits how many missing skills one message names.
	maxSkillsNamed = 3
)

// criticalSkillKeywords marks a missing skill as critical when its name
// contains any of these.
var criticalSkillKeywords = []string{
	"python", "java", "sql", "project management", "leadership",
}

// genericTips are appended after targeted suggestions, in priority order.
var genericTips = []string{
	"Use action verbs and quantify your accomplishments with specific numbers and results.",
	"Customize your resume for each application to better match the specific requirements.",
	"Consider adding a skills section that prominently features the most relevant technical skills.",
}

// SkillGap generates advice for closing the gap between missing and matched
// skills. A clean sheet earns a single congratulatory message.
func SkillGap(missing, matched []string) []string {
	if len(missing) == 0 {
		return []string{"Great! You have all the required skills for this position."}
	}

	var critical, niceToHave []string
	for _, skill := range missing {
		if isCriticalSkill(skill) {
			critical = append(critical, skill)
		} else {
			niceToHave = append(niceToHave, skill)
		}
	}

	var out []string
	if len(critical) > 0 {
		out = append(out, fmt.Sprintf("Focus on learning these critical skills: %s", joinFirst(critical, maxSkillsNamed)))
	}
	if len(niceToHave) > 0 {
		out = append(out, fmt.Sprintf("Consider adding these skills to strengthen your profile: %s", joinFirst(niceToHave, maxSkillsNamed)))
	}
	out = append(out, "Consider online courses, certifications, or hands-on projects to develop these skills.")

	return out
}

// Improvements generates up to maxSuggestions resume improvement messages:
// one per deficient dimension, topped up with generic tips.
func Improvements(result types.AnalysisResult) []string {
	var out []string

	if result.SkillsScore < subScoreThreshold {
		out = append(out, "Skills Match: Consider highlighting more relevant technical skills and tools mentioned in the job description.")
	}
	if result.ExperienceScore < subScoreThreshold {
		out = append(out, "Experience: Emphasize relevant work experience and quantify your achievements with specific metrics.")
	}
	if result.EducationScore < subScoreThreshold {
		out = append(out, "Education: Highlight relevant educational background, certifications, or ongoing learning initiatives.")
	}
	if result.TextSimilarity < similarityThreshold {
		out = append(out, "Content: Use more keywords from the job description and tailor your resume content to better match the role.")
	}

	out = append(out, genericTips...)

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// isCriticalSkill reports whether the skill name contains a critical keyword.
func isCriticalSkill(skill string) bool {
	lower := strings.ToLower(skill)
	for _, keyword := range criticalSkillKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// joinFirst joins up to n items with commas.
func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
