package schemas

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_ValidDocument(t *testing.T) {
	schemaPath := filepath.Join("testdata", "taxonomy_schema.json")
	documentPath := filepath.Join("testdata", "valid_taxonomy.json")

	err := ValidateFile(schemaPath, documentPath)
	assert.NoError(t, err)
}

func TestValidateFile_MissingRequiredField(t *testing.T) {
	schemaPath := filepath.Join("testdata", "taxonomy_schema.json")
	documentPath := filepath.Join("testdata", "missing_categories.json")

	err := ValidateFile(schemaPath, documentPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateFile_WrongFieldType(t *testing.T) {
	schemaPath := filepath.Join("testdata", "taxonomy_schema.json")
	documentPath := filepath.Join("testdata", "wrong_type.json")

	err := ValidateFile(schemaPath, documentPath)
	require.Error(t, err)

	_, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
}

func TestValidateFile_NonExistentSchema(t *testing.T) {
	err := ValidateFile("testdata/nonexistent_schema.json", filepath.Join("testdata", "valid_taxonomy.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateFile_NonExistentDocument(t *testing.T) {
	err := ValidateFile(filepath.Join("testdata", "taxonomy_schema.json"), "testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateBytes_Valid(t *testing.T) {
	schema := []byte(`{"type": "object", "required": ["degrees"]}`)
	doc := []byte(`{"degrees": ["bachelor"]}`)

	assert.NoError(t, ValidateBytes(schema, doc))
}

func TestValidateBytes_Invalid(t *testing.T) {
	schema := []byte(`{"type": "object", "required": ["degrees"]}`)
	doc := []byte(`{"fields": []}`)

	err := ValidateBytes(schema, doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	path := ResolveSchemaPath("schemas/does_not_exist.schema.json")
	assert.Equal(t, "", path)
}
