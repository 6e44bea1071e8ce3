package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/types"
)

// stubScorer scores by resume text via a fixed table and panics on texts it
// was told to reject.
type stubScorer struct {
	scores   map[string]float64
	panicOn  string
	panicMsg string
}

func (s *stubScorer) Score(resumeText, jobText string, signals *types.ResumeSignals) types.AnalysisResult {
	if s.panicOn != "" && resumeText == s.panicOn {
		panic(s.panicMsg)
	}
	return types.AnalysisResult{
		OverallScore:  s.scores[resumeText],
		MatchedSkills: []string{},
		MissingSkills: []string{},
		JobSkills:     []string{},
		ResumeSkills:  []string{},
	}
}

func resumeInput(id, text string) types.ResumeInput {
	return types.ResumeInput{ID: id, Filename: id + ".txt", Text: text}
}

func TestRankOrdersByDescendingScore(t *testing.T) {
	scorer := &stubScorer{scores: map[string]float64{
		"weak": 0.2, "strong": 0.9, "middle": 0.5,
	}}
	ranker := NewRanker(scorer, 2)

	entries, warnings, err := ranker.Rank(context.Background(), []types.ResumeInput{
		resumeInput("a", "weak"),
		resumeInput("b", "strong"),
		resumeInput("c", "middle"),
	}, "job")

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"b", "c", "a"}, entryIDs(entries))
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.RankPosition)
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	scorer := &stubScorer{scores: map[string]float64{
		"same": 0.5, "also-same": 0.5,
	}}
	ranker := NewRanker(scorer, 2)

	entries, _, err := ranker.Rank(context.Background(), []types.ResumeInput{
		resumeInput("first", "same"),
		resumeInput("second", "also-same"),
	}, "job")

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, entryIDs(entries))
}

func TestRankSurvivesPanickingScorer(t *testing.T) {
	scorer := &stubScorer{
		scores:   map[string]float64{"good": 0.8, "fine": 0.6},
		panicOn:  "broken",
		panicMsg: "malformed resume text",
	}
	ranker := NewRanker(scorer, 2)

	entries, warnings, err := ranker.Rank(context.Background(), []types.ResumeInput{
		resumeInput("a", "good"),
		resumeInput("b", "broken"),
		resumeInput("c", "fine"),
	}, "job")

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"a", "c", "b"}, entryIDs(entries))

	// The failed resume carries the placeholder analysis and sinks last.
	failed := entries[2]
	assert.Equal(t, "b", failed.ResumeID)
	assert.Equal(t, 0.1, failed.Analysis.OverallScore)
	assert.Equal(t, 0.1, failed.Analysis.SkillsScore)
	assert.Empty(t, failed.Analysis.MatchedSkills)

	require.Len(t, warnings, 1)
	assert.Equal(t, "b", warnings[0].ResumeID)
	assert.Equal(t, "b.txt", warnings[0].Filename)
	assert.Contains(t, warnings[0].Message, "malformed resume text")
}

func TestRankDefaultsMissingFilenames(t *testing.T) {
	scorer := &stubScorer{scores: map[string]float64{"text": 0.5}}
	ranker := NewRanker(scorer, 1)

	entries, _, err := ranker.Rank(context.Background(), []types.ResumeInput{
		{ID: "a", Text: "text"},
		{ID: "b", Text: "text"},
	}, "job")

	require.NoError(t, err)
	filenames := []string{entries[0].Filename, entries[1].Filename}
	assert.ElementsMatch(t, []string{"Resume_1", "Resume_2"}, filenames)
}

func TestRankEmptyBatch(t *testing.T) {
	ranker := NewDefaultRanker()

	entries, warnings, err := ranker.Rank(context.Background(), nil, "job")

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, warnings)
}

func TestRankCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ranker := NewRanker(&stubScorer{scores: map[string]float64{}}, 1)
	_, _, err := ranker.Rank(ctx, []types.ResumeInput{resumeInput("a", "x")}, "job")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankRealScorerEndToEnd(t *testing.T) {
	ranker := NewDefaultRanker()

	resumes := []types.ResumeInput{
		resumeInput("junior", "Recent graduate familiar with Excel."),
		resumeInput("senior", "8 years of experience with Python, SQL and AWS. Master of Science in Computer Science."),
	}
	job := "Looking for a Python engineer with 5+ years of experience and SQL skills. Bachelor degree required."

	entries, warnings, err := ranker.Rank(context.Background(), resumes, job)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, entries, 2)
	assert.Equal(t, "senior", entries[0].ResumeID)
	assert.Greater(t, entries[0].Analysis.OverallScore, entries[1].Analysis.OverallScore)
}

func entryIDs(entries []types.RankedEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ResumeID
	}
	return ids
}
