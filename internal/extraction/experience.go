package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Explicit "N years ..." phrasings, checked in addition to date ranges.
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+in`),
		regexp.MustCompile(`(?i)experience\s*:?\s*(\d+)\+?\s*years?`),
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:working|professional)`),
	}

	// Employment date ranges; en dash variants appear in pasted resumes.
	dateRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)
)

// ExperienceYears extracts the years of experience claimed in text.
// It collects every explicit "N years" mention and every YYYY-YYYY or
// YYYY-present range (evaluated against the current calendar year), and
// returns the maximum. Zero means no experience signal was found.
func (e *Extractor) ExperienceYears(text string) float64 {
	var years []float64

	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				years = append(years, float64(n))
			}
		}
	}

	currentYear := time.Now().Year()
	for _, match := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		end := currentYear
		if token := strings.ToLower(match[2]); token != "present" && token != "current" {
			end, err = strconv.Atoi(token)
			if err != nil {
				continue
			}
		}

		span := end - start
		if span < 0 {
			span = 0
		}
		years = append(years, float64(span))
	}

	max := 0.0
	for _, y := range years {
		if y > max {
			max = y
		}
	}
	return max
}
