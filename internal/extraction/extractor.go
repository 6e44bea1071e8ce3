// Package extraction turns raw resume and job description text into structured signals:
// contact fields, skills, experience duration, and education entries.
// Every extractor degrades gracefully on sparse or malformed input and
// returns empty or zero values instead of errors.
package extraction

import (
	"regexp"
	"sort"

	"github.com/jonathan/resume-ranker/internal/taxonomy"
	"github.com/jonathan/resume-ranker/internal/types"
)

// EntityMention is a named-entity occurrence surfaced by an EntityRecognizer.
type EntityMention struct {
	Text  string
	Label string // e.g. "PRODUCT", "ORG"
}

// EntityRecognizer is an optional NLP capability. When present, skill
// extraction adds lower-confidence "technical" records for entity mentions
// that look tech-related. Implementations must be safe for concurrent use;
// the extractor only reads the handle.
type EntityRecognizer interface {
	Entities(text string) []EntityMention
}

// skillPattern is one precompiled whole-word matcher for a taxonomy term.
type skillPattern struct {
	name     string
	category types.SkillCategory
	re       *regexp.Regexp
}

// Extractor extracts structured signals from free-form text using injected
// taxonomies. Construct once at startup; all methods are safe for concurrent
// use because the compiled patterns are never mutated afterward.
type Extractor struct {
	skills     *taxonomy.SkillTaxonomy
	education  *taxonomy.EducationTaxonomy
	recognizer EntityRecognizer

	skillPatterns  []skillPattern
	degreePatterns []*regexp.Regexp
}

// New builds an Extractor over the given taxonomies, precompiling all term
// patterns. recognizer may be nil; extraction then skips the entity pass.
func New(skills *taxonomy.SkillTaxonomy, education *taxonomy.EducationTaxonomy, recognizer EntityRecognizer) *Extractor {
	e := &Extractor{
		skills:     skills,
		education:  education,
		recognizer: recognizer,
	}
	e.compileSkillPatterns()
	e.compileDegreePatterns()
	return e
}

// NewDefault builds an Extractor over the built-in taxonomies with no
// entity recognizer.
func NewDefault() *Extractor {
	return New(taxonomy.DefaultSkills(), taxonomy.DefaultEducation(), nil)
}

// compileSkillPatterns precompiles a whole-word case-insensitive pattern per
// taxonomy term. Categories are walked in sorted order so extraction output
// is deterministic across runs.
func (e *Extractor) compileSkillPatterns() {
	categories := make([]types.SkillCategory, 0, len(e.skills.Categories))
	for category := range e.skills.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	for _, category := range categories {
		for _, term := range e.skills.Categories[category] {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
			e.skillPatterns = append(e.skillPatterns, skillPattern{
				name:     term,
				category: category,
				re:       re,
			})
		}
	}
}
