package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-ranker/internal/schemas"
)

// Schema files shipped in the repo's schemas/ directory.
const (
	skillSchemaFile     = "schemas/skill_taxonomy.schema.json"
	educationSchemaFile = "schemas/education_taxonomy.schema.json"
)

// LoadSkills loads an alternate skill taxonomy from a JSON file, validating
// it against the skill taxonomy schema when the schema file can be located.
// Schema absence is non-fatal (commands may run outside the repo root);
// schema violations are.
func LoadSkills(path string) (*SkillTaxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill taxonomy %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(skillSchemaFile); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			return nil, fmt.Errorf("skill taxonomy %s is invalid: %w", path, err)
		}
	}

	var tax SkillTaxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("failed to parse skill taxonomy %s: %w", path, err)
	}
	if len(tax.Categories) == 0 {
		return nil, fmt.Errorf("skill taxonomy %s has no categories", path)
	}

	return &tax, nil
}

// LoadEducation loads an alternate education taxonomy from a JSON file.
// Validation mirrors LoadSkills.
func LoadEducation(path string) (*EducationTaxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read education taxonomy %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(educationSchemaFile); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			return nil, fmt.Errorf("education taxonomy %s is invalid: %w", path, err)
		}
	}

	var tax EducationTaxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("failed to parse education taxonomy %s: %w", path, err)
	}
	if len(tax.Degrees) == 0 || len(tax.Fields) == 0 {
		return nil, fmt.Errorf("education taxonomy %s must declare degrees and fields", path)
	}

	return &tax, nil
}
