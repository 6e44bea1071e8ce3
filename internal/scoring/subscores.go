package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-ranker/internal/taxonomy"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Default scores for absent signals. Benefit of the doubt when the job asks
// for nothing; small residual credit when the resume shows nothing.
const (
	noJobSkillsScore     = 0.8
	noJobExperienceScore = 0.8
	noJobEducationScore  = 0.8
	noResumeExperience   = 0.1
	noResumeEducation    = 0.3
	minExperienceRatio   = 0.2
	minEducationRatio    = 0.3
)

// Skills bonus tuning. Empirically chosen; tunable policy, not invariants.
const (
	abundanceBonusCap      = 0.2
	abundanceBonusPerSkill = 0.02
	categoryBonusWeight    = 0.3
)

// skillNameSet collects unique lowercase skill names.
func skillNameSet(records []types.SkillRecord) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[strings.ToLower(r.Name)] = true
	}
	return set
}

// computeSkillsScore scores the resume's skill coverage of the job's
// requirements: direct name matches, an abundance bonus for extra skills,
// and partial credit for same-category skills.
func computeSkillsScore(resumeSkills, jobSkills []types.SkillRecord) float64 {
	if len(jobSkills) == 0 {
		return noJobSkillsScore
	}

	resumeNames := skillNameSet(resumeSkills)
	jobNames := skillNameSet(jobSkills)

	if len(resumeNames) == 0 {
		return 0.0
	}

	matched := 0
	for name := range resumeNames {
		if jobNames[name] {
			matched++
		}
	}
	directScore := float64(matched) / float64(len(jobNames))

	abundanceBonus := 0.0
	if extra := len(resumeNames) - len(jobNames); extra > 0 {
		abundanceBonus = float64(extra) * abundanceBonusPerSkill
		if abundanceBonus > abundanceBonusCap {
			abundanceBonus = abundanceBonusCap
		}
	}

	total := directScore + abundanceBonus + categoryBonusWeight*computeCategoryMatchScore(resumeSkills, jobSkills)
	if total > 1.0 {
		total = 1.0
	}
	return total
}

// computeCategoryMatchScore averages, over the job's skill categories, how
// well the resume covers each category by count (capped at full coverage).
func computeCategoryMatchScore(resumeSkills, jobSkills []types.SkillRecord) float64 {
	resumeCategories := make(map[types.SkillCategory]int)
	for _, r := range resumeSkills {
		resumeCategories[r.Category]++
	}
	jobCategories := make(map[types.SkillCategory]int)
	for _, r := range jobSkills {
		jobCategories[r.Category]++
	}

	if len(jobCategories) == 0 {
		return 0
	}

	overlap := 0.0
	for category, jobCount := range jobCategories {
		coverage := float64(resumeCategories[category]) / float64(jobCount)
		if coverage > 1.0 {
			coverage = 1.0
		}
		overlap += coverage
	}
	return overlap / float64(len(jobCategories))
}

// computeExperienceScore compares claimed years against required years.
func computeExperienceScore(resumeYears, jobYears float64) float64 {
	if jobYears == 0 {
		return noJobExperienceScore
	}
	if resumeYears == 0 {
		return noResumeExperience
	}
	if resumeYears >= jobYears {
		return 1.0
	}

	ratio := resumeYears / jobYears
	if ratio < minExperienceRatio {
		return minExperienceRatio
	}
	return ratio
}

// computeEducationScore checks whether the resume's highest degree level
// meets the job's minimum degree level.
func computeEducationScore(resumeEducation, jobEducation []types.EducationRecord) float64 {
	if len(jobEducation) == 0 {
		return noJobEducationScore
	}
	if len(resumeEducation) == 0 {
		return noResumeEducation
	}

	maxResumeLevel := 0
	for _, edu := range resumeEducation {
		if level := taxonomy.DegreeLevel(edu.Degree); level > maxResumeLevel {
			maxResumeLevel = level
		}
	}

	minJobLevel := 0
	for _, edu := range jobEducation {
		level := taxonomy.DegreeLevel(edu.Degree)
		if minJobLevel == 0 || level < minJobLevel {
			minJobLevel = level
		}
	}

	if maxResumeLevel >= minJobLevel {
		return 1.0
	}

	ratio := float64(maxResumeLevel) / float64(minJobLevel)
	if ratio < minEducationRatio {
		return minEducationRatio
	}
	return ratio
}

// analyzeSkillMatch returns the sorted intersection and difference of the
// lowercase skill name sets (matched, then job-minus-resume missing).
func analyzeSkillMatch(resumeSkills, jobSkills []types.SkillRecord) (matched, missing []string) {
	resumeNames := skillNameSet(resumeSkills)
	jobNames := skillNameSet(jobSkills)

	matched = make([]string, 0, len(jobNames))
	missing = make([]string, 0, len(jobNames))
	for name := range jobNames {
		if resumeNames[name] {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}
