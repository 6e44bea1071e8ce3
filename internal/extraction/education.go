package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	degreeConfidence = 0.9
	fieldConfidence  = 0.7

	// UnknownValue fills the degree or field half of a record when only the
	// other half was found.
	UnknownValue = "Unknown"
)

// compileDegreePatterns builds the two degree-matching patterns from the
// education taxonomy's degree tokens. The first captures "degree of/in
// field", the second a bare degree with an optional "in field" tail.
func (e *Extractor) compileDegreePatterns() {
	escaped := make([]string, len(e.education.Degrees))
	for i, degree := range e.education.Degrees {
		escaped[i] = regexp.QuoteMeta(strings.ToLower(degree))
	}
	alternation := strings.Join(escaped, "|")

	e.degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(` + alternation + `)\s+(?:of\s+|in\s+)?([a-z\s]+)`),
		regexp.MustCompile(`(` + alternation + `)(?:\s+degree)?(?:\s+in\s+([a-z\s]+))?`),
	}
}

// Education extracts education records from text: degree-token matches with
// an optional field phrase at 0.9 confidence, plus literal field-of-study
// keyword hits at 0.7 with an unknown degree. Deduplicated by (degree, field).
func (e *Extractor) Education(text string) []types.EducationRecord {
	lower := strings.ToLower(text)
	var records []types.EducationRecord

	for _, pattern := range e.degreePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			degree := strings.TrimSpace(match[1])
			field := strings.TrimSpace(match[2])
			if field == "" {
				field = UnknownValue
			} else {
				field = titleCase(field)
			}

			records = append(records, types.EducationRecord{
				Degree:     titleCase(degree),
				Field:      field,
				Confidence: degreeConfidence,
			})
		}
	}

	for _, field := range e.education.Fields {
		if strings.Contains(lower, strings.ToLower(field)) {
			records = append(records, types.EducationRecord{
				Degree:     UnknownValue,
				Field:      titleCase(field),
				Confidence: fieldConfidence,
			})
		}
	}

	return dedupeEducation(records)
}

// dedupeEducation keeps the first record per (degree, field) pair.
func dedupeEducation(records []types.EducationRecord) []types.EducationRecord {
	unique := make([]types.EducationRecord, 0, len(records))
	seen := make(map[[2]string]bool, len(records))

	for _, record := range records {
		key := [2]string{record.Degree, record.Field}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, record)
	}

	return unique
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest ("computer science" -> "Computer Science").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
