package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/types"
)

var extractCommand = &cobra.Command{
	Use:   "extract",
	Short: "Extract signals from a resume or job description",
	Long: `Extracts skills, experience years, education entries, and contact
information from a plain-text file and dumps them as JSON.`,
	RunE: runExtractCmd,
}

var (
	extractFile         string
	extractSkillTax     string
	extractEducationTax string
	extractOut          string
	extractVerbose      bool
)

// extractOutput is the JSON shape of the extract command's result.
type extractOutput struct {
	Skills          []types.SkillRecord     `json:"skills"`
	ExperienceYears float64                 `json:"experience_years"`
	Education       []types.EducationRecord `json:"education"`
	Contact         types.ContactInfo       `json:"contact"`
}

func init() {
	extractCommand.Flags().StringVarP(&extractFile, "file", "f", "", "Path to text file to extract from")
	extractCommand.Flags().StringVar(&extractSkillTax, "skill-taxonomy", "", "Path to custom skill taxonomy JSON")
	extractCommand.Flags().StringVar(&extractEducationTax, "education-taxonomy", "", "Path to custom education taxonomy JSON")
	extractCommand.Flags().StringVarP(&extractOut, "out", "o", "", "Write the JSON signals to this file instead of stdout")
	extractCommand.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = extractCommand.MarkFlagRequired("file")

	rootCmd.AddCommand(extractCommand)
}

func runExtractCmd(_ *cobra.Command, _ []string) error {
	text, err := readTextFile(extractFile)
	if err != nil {
		return err
	}

	extractor, err := buildExtractor(extractSkillTax, extractEducationTax)
	if err != nil {
		return err
	}

	out := extractOutput{
		Skills:          extractor.Skills(text),
		ExperienceYears: extractor.ExperienceYears(text),
		Education:       extractor.Education(text),
		Contact:         extractor.ContactInfo(text),
	}

	if extractVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintContactInfo(&out.Contact)
		fmt.Fprintf(os.Stdout, "Extracted %d skills, %d education entries\n", len(out.Skills), len(out.Education))
	}

	return writeJSONOutput(out, extractOut)
}
