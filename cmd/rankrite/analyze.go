package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/scoring"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Score one resume against a job description",
	Long: `Analyzes a plain-text resume against a plain-text job description and
produces a report with sub-scores, matched and missing skills, and
improvement suggestions.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath   string
	analyzeResume       string
	analyzeJob          string
	analyzeJobTitle     string
	analyzeSkillTax     string
	analyzeEducationTax string
	analyzeOut          string
	analyzeVerbose      bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCommand.Flags().StringVar(&analyzeJobTitle, "job-title", "", "Position name used in the report")
	analyzeCommand.Flags().StringVar(&analyzeSkillTax, "skill-taxonomy", "", "Path to custom skill taxonomy JSON")
	analyzeCommand.Flags().StringVar(&analyzeEducationTax, "education-taxonomy", "", "Path to custom education taxonomy JSON")
	analyzeCommand.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the JSON report to this file instead of stdout")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(analyzeConfigPath, config.Config{
		Job:               analyzeJob,
		JobTitle:          analyzeJobTitle,
		SkillTaxonomy:     analyzeSkillTax,
		EducationTaxonomy: analyzeEducationTax,
		Out:               analyzeOut,
	})
	if err != nil {
		return err
	}
	if analyzeResume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (flag or config)")
	}

	resumeText, err := readTextFile(analyzeResume)
	if err != nil {
		return err
	}
	jobText, err := readTextFile(cfg.Job)
	if err != nil {
		return err
	}

	scorer, err := buildScorer(cfg.SkillTaxonomy, cfg.EducationTaxonomy)
	if err != nil {
		return err
	}

	result := scorer.Score(resumeText, jobText, nil)
	report := scoring.BuildReport(result, filepath.Base(analyzeResume), cfg.JobTitle)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAnalysis(&result)
		printer.PrintSuggestions(report.Recommendations, report.SkillGapSuggestions)
	}

	return writeJSONOutput(report, cfg.Out)
}

// resolveConfig loads an optional config file, merges it under the flag
// values as defaults, applies environment fallbacks, and validates the
// result. Precedence: flag > config file > environment.
func resolveConfig(configPath string, flagValues config.Config) (config.Config, error) {
	cfg := flagValues
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*loaded)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
