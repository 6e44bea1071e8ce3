package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/taxonomy"
)

// buildExtractor assembles an extractor from optional custom taxonomy files,
// falling back to the built-in catalogs.
func buildExtractor(skillPath, educationPath string) (*extraction.Extractor, error) {
	skills := taxonomy.DefaultSkills()
	education := taxonomy.DefaultEducation()

	if skillPath != "" {
		loaded, err := taxonomy.LoadSkills(skillPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load skill taxonomy: %w", err)
		}
		skills = loaded
	}
	if educationPath != "" {
		loaded, err := taxonomy.LoadEducation(educationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load education taxonomy: %w", err)
		}
		education = loaded
	}

	return extraction.New(skills, education, nil), nil
}

// buildScorer assembles a scorer from optional custom taxonomy files.
func buildScorer(skillPath, educationPath string) (*scoring.Scorer, error) {
	extractor, err := buildExtractor(skillPath, educationPath)
	if err != nil {
		return nil, err
	}
	return scoring.NewScorer(extractor, similarity.NewEngine()), nil
}

// readTextFile reads a plain-text input file.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// collectResumeFiles expands the --resumes arguments into a sorted list of
// text files. A directory argument contributes its .txt files.
func collectResumeFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
				continue
			}
			files = append(files, filepath.Join(arg, entry.Name()))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no resume files found")
	}
	sort.Strings(files)
	return files, nil
}

// writeJSONOutput marshals v with indentation to the given path, or to
// stdout when path is empty.
func writeJSONOutput(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
