package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/types"
)

const qualifiedResume = `Senior engineer with 5 years of experience building
backend services in Python and SQL. Bachelor of Science in Computer Science.
Strong communication and leadership across distributed teams.`

const backendJob = `Seeking a backend developer with 3+ years of experience.
Must know Python and SQL. Bachelor degree in computer science required.
Communication skills are essential.`

func TestScoreQualifiedCandidate(t *testing.T) {
	scorer := NewDefaultScorer()

	result := scorer.Score(qualifiedResume, backendJob, nil)

	// Five years against a three year requirement, and a bachelor against a
	// bachelor requirement, both earn full marks.
	assert.Equal(t, 1.0, result.ExperienceScore)
	assert.Equal(t, 1.0, result.EducationScore)

	assert.Contains(t, result.MatchedSkills, "python")
	assert.Contains(t, result.MatchedSkills, "sql")
	assert.Contains(t, result.MatchedSkills, "communication")
	assert.NotEmpty(t, result.ResumeSkills)
	assert.NotEmpty(t, result.JobSkills)

	assert.Greater(t, result.OverallScore, 0.5)
	assert.LessOrEqual(t, result.OverallScore, 1.0)
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := NewDefaultScorer()

	first := scorer.Score(qualifiedResume, backendJob, nil)
	second := scorer.Score(qualifiedResume, backendJob, nil)

	assert.Equal(t, first, second)
}

func TestScoreRangesAndWeightedBlend(t *testing.T) {
	scorer := NewDefaultScorer()

	result := scorer.Score(qualifiedResume, backendJob, nil)

	for name, score := range map[string]float64{
		"overall":         result.OverallScore,
		"skills":          result.SkillsScore,
		"experience":      result.ExperienceScore,
		"education":       result.EducationScore,
		"text_similarity": result.TextSimilarity,
	} {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 1.0, name)
	}

	expected := result.SkillsScore*0.4 + result.ExperienceScore*0.25 +
		result.EducationScore*0.15 + result.TextSimilarity*0.2
	if expected > 1.0 {
		expected = 1.0
	}
	assert.InDelta(t, expected, result.OverallScore, 1e-9)
}

func TestScoreSelfMatch(t *testing.T) {
	scorer := NewDefaultScorer()

	result := scorer.Score(backendJob, backendJob, nil)

	assert.Empty(t, result.MissingSkills)
	assert.ElementsMatch(t, result.JobSkills, result.MatchedSkills)
	assert.InDelta(t, 1.0, result.TextSimilarity, 1e-9)
	assert.Equal(t, 1.0, result.ExperienceScore)
	assert.Equal(t, 1.0, result.EducationScore)
}

func TestScoreSignalFreeJob(t *testing.T) {
	scorer := NewDefaultScorer()

	result := scorer.Score(qualifiedResume, "An exciting opportunity awaits the right candidate.", nil)

	// A job posting with no skill, experience, or degree signals earns the
	// benefit-of-the-doubt defaults on every extracted dimension.
	assert.InDelta(t, 0.8, result.SkillsScore, 1e-9)
	assert.InDelta(t, 0.8, result.ExperienceScore, 1e-9)
	assert.InDelta(t, 0.8, result.EducationScore, 1e-9)
	assert.Empty(t, result.JobSkills)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestScorePrecomputedSignalsTakePrecedence(t *testing.T) {
	scorer := NewDefaultScorer()
	years := 10.0
	signals := &types.ResumeSignals{
		Skills: []types.SkillRecord{
			{Name: "golang", Category: types.CategoryProgramming, Confidence: 1.0},
		},
		Experience: &years,
		Education: []types.EducationRecord{
			{Degree: "Phd", Field: "Computer Science", Confidence: 0.9},
		},
	}

	// The resume text mentions python, but the supplied signals do not.
	result := scorer.Score("Python expert.", backendJob, signals)

	assert.Equal(t, []string{"golang"}, result.ResumeSkills)
	assert.NotContains(t, result.MatchedSkills, "python")
	assert.Contains(t, result.MissingSkills, "python")
	assert.Equal(t, 1.0, result.ExperienceScore)
	assert.Equal(t, 1.0, result.EducationScore)
}

func TestScorePartialSignalsFillFromText(t *testing.T) {
	scorer := NewDefaultScorer()
	signals := &types.ResumeSignals{
		Skills: []types.SkillRecord{
			{Name: "python", Category: types.CategoryProgramming, Confidence: 1.0},
		},
	}

	result := scorer.Score(qualifiedResume, backendJob, signals)

	// Skills come from the signals; experience and education still come
	// from the resume text.
	require.Equal(t, []string{"python"}, result.ResumeSkills)
	assert.Equal(t, 1.0, result.ExperienceScore)
	assert.Equal(t, 1.0, result.EducationScore)
}
