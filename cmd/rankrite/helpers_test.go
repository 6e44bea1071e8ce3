package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/types"
)

func writeTempTxt(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCollectResumeFiles_MixedArgs(t *testing.T) {
	dir := t.TempDir()
	a := writeTempTxt(t, dir, "a.txt", "resume a")
	b := writeTempTxt(t, dir, "b.txt", "resume b")
	writeTempTxt(t, dir, "notes.md", "ignored")

	single := writeTempTxt(t, t.TempDir(), "solo.txt", "resume c")

	files, err := collectResumeFiles([]string{dir, single})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{a, b, single}, files)
}

func TestCollectResumeFiles_EmptyDirectory(t *testing.T) {
	_, err := collectResumeFiles([]string{t.TempDir()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no resume files found")
}

func TestCollectResumeFiles_MissingPath(t *testing.T) {
	_, err := collectResumeFiles([]string{filepath.Join(t.TempDir(), "nope.txt")})
	assert.Error(t, err)
}

func TestLoadResumeInputs_AssignsUniqueIDs(t *testing.T) {
	dir := t.TempDir()
	a := writeTempTxt(t, dir, "a.txt", "python developer")
	b := writeTempTxt(t, dir, "b.txt", "java developer")

	resumes, err := loadResumeInputs([]string{a, b})
	require.NoError(t, err)
	require.Len(t, resumes, 2)

	assert.NotEmpty(t, resumes[0].ID)
	assert.NotEmpty(t, resumes[1].ID)
	assert.NotEqual(t, resumes[0].ID, resumes[1].ID)
	assert.Equal(t, "a.txt", resumes[0].Filename)
	assert.Equal(t, "python developer", resumes[0].Text)
}

func TestWriteJSONOutput_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	err := writeJSONOutput(map[string]int{"answer": 42}, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 42, decoded["answer"])
}

func TestBuildScorer_DefaultTaxonomies(t *testing.T) {
	scorer, err := buildScorer("", "")
	require.NoError(t, err)
	require.NotNil(t, scorer)

	result := scorer.Score("python developer", "python required", nil)
	assert.Contains(t, result.MatchedSkills, "python")
}

func TestBuildScorer_MissingTaxonomyFile(t *testing.T) {
	_, err := buildScorer(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.Error(t, err)
}

func TestResolveConfig_FlagsWinOverConfigFile(t *testing.T) {
	dir := t.TempDir()
	jobFromFile := writeTempTxt(t, dir, "file_job.txt", "job from config file")
	jobFromFlag := writeTempTxt(t, dir, "flag_job.txt", "job from flag")

	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{
		"job": "`+jobFromFile+`",
		"job_title": "File Title",
		"workers": 6
	}`), 0644))

	cfg, err := resolveConfig(configPath, config.Config{Job: jobFromFlag})
	require.NoError(t, err)

	// The flag value wins; unset fields fall back to the config file.
	assert.Equal(t, jobFromFlag, cfg.Job)
	assert.Equal(t, "File Title", cfg.JobTitle)
	assert.Equal(t, 6, cfg.Workers)
}

func TestResolveConfig_ValidatesMergedResult(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"workers": -2}`), 0644))

	_, err := resolveConfig(configPath, config.Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestResolveConfig_NoConfigFile(t *testing.T) {
	cfg, err := resolveConfig("", config.Config{JobTitle: "Flag Title"})

	require.NoError(t, err)
	assert.Equal(t, "Flag Title", cfg.JobTitle)
}

func TestLoadAnalyses_FromRankOutput(t *testing.T) {
	out := rankOutput{
		Rankings: []types.RankedEntry{
			{ResumeID: "a", Analysis: types.AnalysisResult{JobSkills: []string{"python"}}},
			{ResumeID: "b", Analysis: types.AnalysisResult{JobSkills: []string{"python", "sql"}}},
		},
	}
	data, err := json.Marshal(out)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rank.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	analyses, err := loadAnalyses([]string{path})
	require.NoError(t, err)
	require.Len(t, analyses, 2)
	assert.Equal(t, []string{"python", "sql"}, analyses[1].JobSkills)
}
