package extraction

import (
	"regexp"

	"github.com/jonathan/resume-ranker/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Ordered phone patterns: international-prefixed grouped, 10-digit run,
	// then grouped 3-3-4. The first pattern with any hit wins, using its
	// first match, even when a later pattern would match more digits.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\d{10}`),
		regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// ContactInfo extracts email, phone, and profile URLs from text.
// Each field takes the first match only; absent fields stay empty.
func (e *Extractor) ContactInfo(text string) types.ContactInfo {
	var info types.ContactInfo

	if email := emailPattern.FindString(text); email != "" {
		info.Email = email
	}

	for _, pattern := range phonePatterns {
		if phone := pattern.FindString(text); phone != "" {
			info.Phone = phone
			break
		}
	}

	if handle := linkedinPattern.FindString(text); handle != "" {
		info.LinkedIn = "https://" + handle
	}

	if handle := githubPattern.FindString(text); handle != "" {
		info.GitHub = "https://" + handle
	}

	return info
}
