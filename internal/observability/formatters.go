// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ranker/internal/insights"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of one scoring result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %5.1f%%\n", result.OverallScore*100))
	sb.WriteString(fmt.Sprintf("Skills:      %5.1f%%\n", result.SkillsScore*100))
	sb.WriteString(fmt.Sprintf("Experience:  %5.1f%%\n", result.ExperienceScore*100))
	sb.WriteString(fmt.Sprintf("Education:   %5.1f%%\n", result.EducationScore*100))
	sb.WriteString(fmt.Sprintf("Text match:  %5.1f%%\n", result.TextSimilarity*100))

	if len(result.MatchedSkills) > 0 {
		sb.WriteString("\nMatched skills:\n")
		writeSkillList(&sb, result.MatchedSkills)
	}
	if len(result.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		writeSkillList(&sb, result.MissingSkills)
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedEntries outputs the top ranked resumes with scores.
func (p *Printer) PrintRankedEntries(entries []types.RankedEntry, warnings []ranking.Warning) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resumes ranked: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", entry.RankPosition, entry.Filename))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", entry.Analysis.OverallScore))
		if len(entry.Analysis.MatchedSkills) > 0 {
			skills := strings.Join(entry.Analysis.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(entries)-maxItemsToShow))
	}
	if len(warnings) > 0 {
		sb.WriteString(fmt.Sprintf("\n\n%d resume(s) failed scoring:\n", len(warnings)))
		for _, w := range warnings {
			sb.WriteString(fmt.Sprintf("  • %s\n", w.Filename))
		}
	}

	p.printBox("RANKED RESUMES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContactInfo outputs the contact details extracted from a resume.
func (p *Printer) PrintContactInfo(contact *types.ContactInfo) {
	if contact == nil {
		return
	}

	var sb strings.Builder
	writeField := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("%-10s %s\n", label+":", value))
		}
	}
	writeField("Email", contact.Email)
	writeField("Phone", contact.Phone)
	writeField("LinkedIn", contact.LinkedIn)
	writeField("GitHub", contact.GitHub)

	if sb.Len() == 0 {
		sb.WriteString("No contact information found")
	}

	p.printBox("CONTACT INFO", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrends outputs the trending skills across analyses.
func (p *Printer) PrintTrends(trends *insights.Trends) {
	if trends == nil || len(trends.TrendingSkills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyses: %d   Unique skills: %d\n\n", trends.TotalAnalyses, trends.UniqueSkills))

	count := min(len(trends.TrendingSkills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sc := trends.TrendingSkills[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%d)\n", i+1, sc.Skill, sc.Count))
	}
	if len(trends.TrendingSkills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more skills\n", len(trends.TrendingSkills)-maxItemsToShow))
	}

	p.printBox("TRENDING SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs recommendation lists from a report.
func (p *Printer) PrintSuggestions(recommendations, skillGaps []string) {
	if len(recommendations) == 0 && len(skillGaps) == 0 {
		return
	}

	var sb strings.Builder
	for _, rec := range recommendations {
		sb.WriteString(fmt.Sprintf("• %s\n", rec))
	}
	if len(skillGaps) > 0 {
		if len(recommendations) > 0 {
			sb.WriteString("\n")
		}
		for _, gap := range skillGaps {
			sb.WriteString(fmt.Sprintf("• %s\n", gap))
		}
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// writeSkillList writes up to maxItemsToShow bulleted skills.
func writeSkillList(sb *strings.Builder, skills []string) {
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}
