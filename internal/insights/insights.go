// Package insights aggregates trends across analyses and serves static
// industry guidance.
package insights

import (
	"sort"

	"github.com/jonathan/resume-ranker/internal/types"
)

// maxTrendingSkills caps the trending list.
const maxTrendingSkills = 20

// SkillCount pairs a skill with how many analyses demanded it.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Trends summarizes skill demand across a set of analyses.
type Trends struct {
	TrendingSkills []SkillCount `json:"trending_skills"`
	TotalAnalyses  int          `json:"total_analyses"`
	UniqueSkills   int          `json:"unique_skills"`
}

// IndustryInsights is static guidance about the current job market.
type IndustryInsights struct {
	HighDemandSkills     []string `json:"high_demand_skills"`
	EmergingTechnologies []string `json:"emerging_technologies"`
	SoftSkillsImportance []string `json:"soft_skills_importance"`
	ResumeTips           []string `json:"resume_tips"`
}

// SkillTrends counts job-side skill demand across analyses and returns the
// most frequent skills, ties broken alphabetically.
func SkillTrends(analyses []types.AnalysisResult) Trends {
	frequency := make(map[string]int)
	for _, analysis := range analyses {
		for _, skill := range analysis.JobSkills {
			frequency[skill]++
		}
	}

	trending := make([]SkillCount, 0, len(frequency))
	for skill, count := range frequency {
		trending = append(trending, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(trending, func(a, b int) bool {
		if trending[a].Count != trending[b].Count {
			return trending[a].Count > trending[b].Count
		}
		return trending[a].Skill < trending[b].Skill
	})
	if len(trending) > maxTrendingSkills {
		trending = trending[:maxTrendingSkills]
	}

	return Trends{
		TrendingSkills: trending,
		TotalAnalyses:  len(analyses),
		UniqueSkills:   len(frequency),
	}
}

// Industry returns the predefined market guidance lists.
func Industry() IndustryInsights {
	return IndustryInsights{
		HighDemandSkills: []string{
			"Python", "JavaScript", "React", "Node.js", "AWS", "Docker",
			"Kubernetes", "Machine Learning", "Data Analysis", "SQL",
		},
		EmergingTechnologies: []string{
			"Artificial Intelligence", "Blockchain", "IoT", "Edge Computing",
			"Quantum Computing", "AR/VR", "DevOps", "Microservices",
		},
		SoftSkillsImportance: []string{
			"Communication", "Leadership", "Problem Solving", "Adaptability",
			"Teamwork", "Critical Thinking", "Time Management", "Creativity",
		},
		ResumeTips: []string{
			"Use action verbs to start bullet points (e.g., 'Developed', 'Implemented', 'Led')",
			"Quantify achievements with specific numbers and percentages",
			"Tailor your resume for each job application",
			"Include relevant keywords from the job description",
			"Keep your resume concise (1-2 pages maximum)",
			"Use a clean, professional format",
			"Include a skills section with technical competencies",
			"Highlight recent and relevant experience first",
			"Proofread carefully for grammar and spelling errors",
			"Update your resume regularly with new achievements",
		},
	}
}
