package suggestions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/types"
)

func TestSkillGapNoMissingSkills(t *testing.T) {
	out := SkillGap(nil, []string{"python", "sql"})

	require.Len(t, out, 1)
	assert.Equal(t, "Great! You have all the required skills for this position.", out[0])
}

func TestSkillGapSplitsCriticalAndNiceToHave(t *testing.T) {
	missing := []string{"python", "sql", "docker", "figma"}

	out := SkillGap(missing, nil)

	require.Len(t, out, 3)
	assert.Equal(t, "Focus on learning these critical skills: python, sql", out[0])
	assert.Equal(t, "Consider adding these skills to strengthen your profile: docker, figma", out[1])
	assert.Contains(t, out[2], "online courses")
}

func TestSkillGapNamesAtMostThreeSkills(t *testing.T) {
	missing := []string{"java", "python", "sql", "leadership", "project management"}

	out := SkillGap(missing, nil)

	require.NotEmpty(t, out)
	assert.Equal(t, "Focus on learning these critical skills: java, python, sql", out[0])
}

func TestSkillGapCriticalKeywordIsSubstringMatch(t *testing.T) {
	out := SkillGap([]string{"Core Java"}, nil)

	require.Len(t, out, 2)
	assert.Contains(t, out[0], "critical skills: Core Java")
}

func TestImprovementsAllScoresHealthy(t *testing.T) {
	result := types.AnalysisResult{
		SkillsScore:     0.9,
		ExperienceScore: 0.8,
		EducationScore:  0.7,
		TextSimilarity:  0.6,
	}

	out := Improvements(result)

	require.Len(t, out, 3)
	for _, tip := range out {
		assert.NotContains(t, tip, "Skills Match:")
		assert.NotContains(t, tip, "Experience:")
	}
}

func TestImprovementsAllScoresDeficient(t *testing.T) {
	result := types.AnalysisResult{
		SkillsScore:     0.2,
		ExperienceScore: 0.1,
		EducationScore:  0.3,
		TextSimilarity:  0.1,
	}

	out := Improvements(result)

	require.Len(t, out, 5)
	assert.Contains(t, out[0], "Skills Match:")
	assert.Contains(t, out[1], "Experience:")
	assert.Contains(t, out[2], "Education:")
	assert.Contains(t, out[3], "Content:")
	assert.Contains(t, out[4], "action verbs")
}

func TestImprovementsThresholdBoundaries(t *testing.T) {
	// Scores exactly at the thresholds do not trigger suggestions.
	result := types.AnalysisResult{
		SkillsScore:     0.6,
		ExperienceScore: 0.6,
		EducationScore:  0.6,
		TextSimilarity:  0.4,
	}

	out := Improvements(result)

	require.Len(t, out, 3)
	assert.Contains(t, out[0], "action verbs")
}
