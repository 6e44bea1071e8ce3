package extraction

import (
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Entity mentions qualify as technical skills only when they contain one of
// these substrings; anything else from the recognizer is noise.
var techEntitySubstrings = []string{"tech", "soft", "program", "develop"}

const (
	taxonomyConfidence = 1.0
	entityConfidence   = 0.7
	minEntityLength    = 3
)

// Skills extracts skill records from text via whole-word taxonomy matching,
// optionally enhanced by the entity recognizer. Records are deduplicated by
// lowercase name keeping the highest-confidence instance, preserving first
// occurrence order.
func (e *Extractor) Skills(text string) []types.SkillRecord {
	var found []types.SkillRecord

	for _, sp := range e.skillPatterns {
		if sp.re.MatchString(text) {
			found = append(found, types.SkillRecord{
				Name:       sp.name,
				Category:   sp.category,
				Confidence: taxonomyConfidence,
			})
		}
	}

	if e.recognizer != nil {
		found = append(found, e.entitySkills(text)...)
	}

	return dedupeSkills(found)
}

// entitySkills maps recognizer output to best-effort "technical" records.
func (e *Extractor) entitySkills(text string) []types.SkillRecord {
	var skills []types.SkillRecord
	for _, mention := range e.recognizer.Entities(text) {
		if mention.Label != "PRODUCT" && mention.Label != "ORG" {
			continue
		}
		if len(mention.Text) < minEntityLength {
			continue
		}

		lower := strings.ToLower(mention.Text)
		for _, substr := range techEntitySubstrings {
			if strings.Contains(lower, substr) {
				skills = append(skills, types.SkillRecord{
					Name:       mention.Text,
					Category:   types.CategoryTechnical,
					Confidence: entityConfidence,
				})
				break
			}
		}
	}
	return skills
}

// dedupeSkills collapses duplicates by lowercase name, keeping the record
// with the highest confidence. First-seen order is preserved.
func dedupeSkills(records []types.SkillRecord) []types.SkillRecord {
	unique := make([]types.SkillRecord, 0, len(records))
	index := make(map[string]int, len(records))

	for _, record := range records {
		key := strings.ToLower(record.Name)
		if at, seen := index[key]; seen {
			if record.Confidence > unique[at].Confidence {
				unique[at] = record
			}
			continue
		}
		index[key] = len(unique)
		unique = append(unique, record)
	}

	return unique
}
