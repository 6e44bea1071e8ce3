package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/types"
)

var rankCommand = &cobra.Command{
	Use:   "rank",
	Short: "Rank a batch of resumes against one job description",
	Long: `Scores every resume in the batch against the job description and prints
the resumes ordered by overall match score. Arguments to --resumes may be
text files or directories of .txt files.`,
	RunE: runRankCmd,
}

var (
	rankConfigPath   string
	rankResumes      []string
	rankJob          string
	rankSkillTax     string
	rankEducationTax string
	rankWorkers      int
	rankOut          string
	rankVerbose      bool
)

// rankOutput is the JSON shape of the rank command's result.
type rankOutput struct {
	Rankings []types.RankedEntry `json:"rankings"`
	Warnings []ranking.Warning   `json:"warnings,omitempty"`
}

func init() {
	rankCommand.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rankCommand.Flags().StringSliceVar(&rankResumes, "resumes", nil, "Resume text files or directories (repeatable)")
	rankCommand.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job description text file")
	rankCommand.Flags().StringVar(&rankSkillTax, "skill-taxonomy", "", "Path to custom skill taxonomy JSON")
	rankCommand.Flags().StringVar(&rankEducationTax, "education-taxonomy", "", "Path to custom education taxonomy JSON")
	rankCommand.Flags().IntVar(&rankWorkers, "workers", 0, "Scoring worker pool size (0 selects the default)")
	rankCommand.Flags().StringVarP(&rankOut, "out", "o", "", "Write the JSON rankings to this file instead of stdout")
	rankCommand.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(rankCommand)
}

func runRankCmd(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(rankConfigPath, config.Config{
		Job:               rankJob,
		SkillTaxonomy:     rankSkillTax,
		EducationTaxonomy: rankEducationTax,
		Workers:           rankWorkers,
		Out:               rankOut,
	})
	if err != nil {
		return err
	}
	if len(rankResumes) == 0 {
		return fmt.Errorf("--resumes is required")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (flag or config)")
	}

	jobText, err := readTextFile(cfg.Job)
	if err != nil {
		return err
	}

	files, err := collectResumeFiles(rankResumes)
	if err != nil {
		return err
	}
	resumes, err := loadResumeInputs(files)
	if err != nil {
		return err
	}

	scorer, err := buildScorer(cfg.SkillTaxonomy, cfg.EducationTaxonomy)
	if err != nil {
		return err
	}

	ranker := ranking.NewRanker(scorer, cfg.Workers)
	entries, warnings, err := ranker.Rank(context.Background(), resumes, jobText)
	if err != nil {
		return err
	}

	if rankVerbose {
		observability.NewPrinter(os.Stdout).PrintRankedEntries(entries, warnings)
	}

	return writeJSONOutput(rankOutput{Rankings: entries, Warnings: warnings}, cfg.Out)
}

// loadResumeInputs reads each file into a validated ResumeInput with a
// freshly assigned ID.
func loadResumeInputs(files []string) ([]types.ResumeInput, error) {
	resumes := make([]types.ResumeInput, 0, len(files))
	for _, file := range files {
		text, err := readTextFile(file)
		if err != nil {
			return nil, err
		}
		input := types.ResumeInput{
			ID:       uuid.NewString(),
			Filename: filepath.Base(file),
			Text:     text,
		}
		if err := input.Validate(); err != nil {
			return nil, fmt.Errorf("invalid resume input %s: %w", file, err)
		}
		resumes = append(resumes, input)
	}
	return resumes, nil
}
