package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/insights"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/types"
)

var insightsCommand = &cobra.Command{
	Use:   "insights",
	Short: "Print industry insights and skill trends",
	Long: `Prints static industry guidance as JSON. When given rank result files
via --analyses, also aggregates the trending skills across them.`,
	RunE: runInsightsCmd,
}

var (
	insightsAnalyses []string
	insightsOut      string
	insightsVerbose  bool
)

// insightsOutput is the JSON shape of the insights command's result.
type insightsOutput struct {
	Industry insights.IndustryInsights `json:"industry"`
	Trends   *insights.Trends          `json:"trends,omitempty"`
}

func init() {
	insightsCommand.Flags().StringSliceVar(&insightsAnalyses, "analyses", nil, "Rank result JSON files to aggregate skill trends from (repeatable)")
	insightsCommand.Flags().StringVarP(&insightsOut, "out", "o", "", "Write the JSON insights to this file instead of stdout")
	insightsCommand.Flags().BoolVarP(&insightsVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(insightsCommand)
}

func runInsightsCmd(_ *cobra.Command, _ []string) error {
	out := insightsOutput{Industry: insights.Industry()}

	if len(insightsAnalyses) > 0 {
		analyses, err := loadAnalyses(insightsAnalyses)
		if err != nil {
			return err
		}
		trends := insights.SkillTrends(analyses)
		out.Trends = &trends

		if insightsVerbose {
			observability.NewPrinter(os.Stdout).PrintTrends(&trends)
		}
	}

	return writeJSONOutput(out, insightsOut)
}

// loadAnalyses reads rank result files and collects their per-resume
// analysis results.
func loadAnalyses(files []string) ([]types.AnalysisResult, error) {
	var analyses []types.AnalysisResult
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		var result rankOutput
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to parse rank results %s: %w", file, err)
		}
		for _, entry := range result.Rankings {
			analyses = append(analyses, entry.Analysis)
		}
	}
	return analyses, nil
}
