// Package taxonomy provides the static skill and education vocabularies used for extraction.
package taxonomy

import (
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// SkillTaxonomy is a categorized vocabulary of known skill terms.
// Construct once at startup and treat as read-only; extractors receive it
// by reference so tests can inject alternate vocabularies.
type SkillTaxonomy struct {
	Categories map[types.SkillCategory][]string `json:"categories"`
}

// EducationTaxonomy holds degree tokens, field-of-study keywords, and
// institution keywords used for education extraction.
type EducationTaxonomy struct {
	Degrees      []string `json:"degrees"`
	Fields       []string `json:"fields"`
	Institutions []string `json:"institutions"`
}

// degreeHierarchy maps degree tokens to comparable numeric levels.
var degreeHierarchy = map[string]int{
	"associate": 1, "diploma": 1, "certificate": 1,
	"bachelor": 2, "bs": 2, "ba": 2, "btech": 2, "bsc": 2,
	"master": 3, "ms": 3, "ma": 3, "mba": 3, "mtech": 3, "msc": 3,
	"phd": 4, "doctorate": 4,
}

// DegreeLevel returns the numeric level for a degree token.
// Unknown tokens default to level 1 (lowest tier).
func DegreeLevel(degree string) int {
	if level, ok := degreeHierarchy[strings.ToLower(degree)]; ok {
		return level
	}
	return 1
}

// DefaultSkills returns the built-in skill catalog, mirroring the categories
// the scorer's category matching operates over.
func DefaultSkills() *SkillTaxonomy {
	return &SkillTaxonomy{
		Categories: map[types.SkillCategory][]string{
			types.CategoryProgramming: {
				"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust", "kotlin",
				"swift", "typescript", "scala", "r", "matlab", "sql", "nosql", "html", "css",
			},
			types.CategoryFrameworks: {
				"react", "angular", "vue", "django", "flask", "spring", "laravel", "nodejs",
				"express", "bootstrap", "tailwind", "jquery", "redux", "vuex", "nextjs", "nuxtjs",
			},
			types.CategoryDatabases: {
				"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite", "oracle",
				"cassandra", "dynamodb", "firebase", "mariadb", "couchdb",
			},
			types.CategoryCloud: {
				"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github",
				"terraform", "ansible", "vagrant", "heroku", "digitalocean", "cloudflare",
			},
			types.CategoryDataScience: {
				"machine learning", "deep learning", "data analysis", "pandas", "numpy", "scikit-learn",
				"tensorflow", "pytorch", "keras", "matplotlib", "seaborn", "plotly", "tableau",
				"power bi", "jupyter", "apache spark", "hadoop",
			},
			types.CategoryTools: {
				"git", "jira", "confluence", "slack", "trello", "asana", "figma", "adobe xd",
				"photoshop", "illustrator", "sketch", "invision", "zeplin", "postman",
			},
			types.CategorySoftSkills: {
				"leadership", "communication", "teamwork", "problem solving", "critical thinking",
				"time management", "project management", "agile", "scrum", "kanban", "analytical",
				"creative", "adaptable", "collaborative", "detail oriented",
			},
			types.CategoryBusiness: {
				"project management", "business analysis", "requirements gathering", "stakeholder management",
				"process improvement", "strategic planning", "budget management", "risk management",
				"quality assurance", "customer service", "sales", "marketing", "seo", "sem",
			},
		},
	}
}

// DefaultEducation returns the built-in education vocabulary.
func DefaultEducation() *EducationTaxonomy {
	return &EducationTaxonomy{
		Degrees: []string{
			"bachelor", "master", "phd", "doctorate", "associate", "diploma", "certificate",
			"bs", "ba", "ms", "ma", "mba", "btech", "mtech", "bsc", "msc",
		},
		Fields: []string{
			"computer science", "software engineering", "information technology", "data science",
			"artificial intelligence", "machine learning", "cybersecurity", "business administration",
			"marketing", "finance", "accounting", "engineering", "mathematics", "statistics",
			"physics", "chemistry", "biology", "psychology", "economics",
		},
		Institutions: []string{
			"university", "college", "institute", "school", "academy", "mit", "stanford",
			"harvard", "berkeley", "carnegie mellon", "georgia tech", "caltech",
		},
	}
}

// TermCount returns the total number of terms across all categories.
func (t *SkillTaxonomy) TermCount() int {
	count := 0
	for _, terms := range t.Categories {
		count += len(terms)
	}
	return count
}
