package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlvinJerry/MyCodegent/model"
)

func writeModelFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const yamlModel = `
config:
  rootNamespace: ShopApi
  generateDomain: true
  generateApplication: true
  databaseProvider: PostgreSql
entities:
  - name: Product
    hasAuditFields: true
    hasSoftDelete: true
    properties:
      - name: Id
        type: int
        isKey: true
      - name: Name
        type: string
        isRequired: true
        maxLength: 200
    relationships:
      - type: ManyToOne
        relatedEntity: Category
        foreignKeyProperty: CategoryId
`

func TestFileYAML(t *testing.T) {
	doc, err := File(writeModelFile(t, "model.yaml", yamlModel))
	require.NoError(t, err)

	require.Len(t, doc.Entities, 1)
	e := doc.Entities[0]
	assert.Equal(t, "Product", e.Name)
	assert.True(t, e.HasAuditFields)
	require.Len(t, e.Properties, 2)
	assert.True(t, e.Properties[0].IsKey)
	require.NotNil(t, e.Properties[1].MaxLength)
	assert.Equal(t, 200, *e.Properties[1].MaxLength)
	require.Len(t, e.Relationships, 1)
	assert.Equal(t, model.ManyToOne, e.Relationships[0].Type)

	cfg := doc.ResolvedConfig()
	assert.Equal(t, "ShopApi", cfg.RootNamespace)
	assert.Equal(t, model.PostgreSQL, cfg.DatabaseProvider)
	assert.Equal(t, "./generated", cfg.OutputPath, "missing output path falls back to the default")
}

func TestFileJSON(t *testing.T) {
	doc, err := File(writeModelFile(t, "model.json", `{
		"entities": [
			{"name": "Customer", "properties": [{"name": "Email", "type": "string", "isRequired": true}]}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, doc.Entities, 1)
	assert.Equal(t, "Customer", doc.Entities[0].Name)
	assert.Equal(t, model.DefaultConfig(), doc.ResolvedConfig(), "no config section means defaults")
}

func TestFileRejectsEmptyEntityList(t *testing.T) {
	_, err := File(writeModelFile(t, "model.yaml", "entities: []\n"))
	assert.ErrorContains(t, err, "declares no entities")
}

func TestFileRejectsUnknownExtension(t *testing.T) {
	_, err := File(writeModelFile(t, "model.toml", "x = 1"))
	assert.ErrorContains(t, err, "unsupported model file extension")
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
