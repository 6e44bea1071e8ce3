// Package ranking scores a batch of resumes against one job description and
// orders them by overall score.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/types"
)

// defaultWorkers bounds concurrent scoring when the caller does not choose.
const defaultWorkers = 4

// placeholderScore is substituted for every sub-score when scoring a resume
// fails, keeping the entry in the ranking at the bottom.
const placeholderScore = 0.1

// Warning records a resume whose scoring failed and was replaced by the
// placeholder result.
type Warning struct {
	ResumeID string `json:"resume_id"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// Scorer scores one resume text against one job text.
type Scorer interface {
	Score(resumeText, jobText string, signals *types.ResumeSignals) types.AnalysisResult
}

// Ranker ranks resume batches with a bounded worker pool.
type Ranker struct {
	scorer  Scorer
	workers int
}

// NewRanker builds a Ranker over the given scorer. workers <= 0 selects the
// default pool size.
func NewRanker(scorer Scorer, workers int) *Ranker {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Ranker{scorer: scorer, workers: workers}
}

// NewDefaultRanker builds a Ranker with the default scorer and pool size.
func NewDefaultRanker() *Ranker {
	return NewRanker(scoring.NewDefaultScorer(), defaultWorkers)
}

// Rank scores every resume against the job description and returns entries
// sorted by descending overall score, rank positions assigned 1..n.
// A resume whose scoring panics is kept with a placeholder low-score
// analysis and reported in the warnings; the batch always completes.
// The returned error is non-nil only when ctx is cancelled.
func (r *Ranker) Rank(ctx context.Context, resumes []types.ResumeInput, jobText string) ([]types.RankedEntry, []Warning, error) {
	entries := make([]types.RankedEntry, len(resumes))
	failures := make([]*Warning, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range resumes {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			entries[i], failures[i] = r.scoreOne(resumes[i], i, jobText)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, w := range failures {
		if w != nil {
			warnings = append(warnings, *w)
		}
	}

	// Stable sort keeps input order on equal scores.
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Analysis.OverallScore > entries[b].Analysis.OverallScore
	})
	for i := range entries {
		entries[i].RankPosition = i + 1
	}

	return entries, warnings, nil
}

// scoreOne scores a single resume, converting a panic into the placeholder
// entry plus a warning.
func (r *Ranker) scoreOne(resume types.ResumeInput, index int, jobText string) (entry types.RankedEntry, warning *Warning) {
	filename := resume.Filename
	if filename == "" {
		filename = fmt.Sprintf("Resume_%d", index+1)
	}
	entry = types.RankedEntry{
		ResumeID: resume.ID,
		Filename: filename,
	}

	defer func() {
		if rec := recover(); rec != nil {
			entry.Analysis = placeholderAnalysis()
			warning = &Warning{
				ResumeID: resume.ID,
				Filename: filename,
				Message:  fmt.Sprintf("scoring failed: %v", rec),
			}
		}
	}()

	entry.Analysis = r.scorer.Score(resume.Text, jobText, resume.Signals)
	return entry, nil
}

// placeholderAnalysis is the fixed low-score result for failed resumes.
func placeholderAnalysis() types.AnalysisResult {
	return types.AnalysisResult{
		OverallScore:    placeholderScore,
		SkillsScore:     placeholderScore,
		ExperienceScore: placeholderScore,
		EducationScore:  placeholderScore,
		TextSimilarity:  placeholderScore,
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		JobSkills:       []string{},
		ResumeSkills:    []string{},
	}
}
