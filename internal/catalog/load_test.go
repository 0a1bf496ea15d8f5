package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeCatalogFile(t, `
vendors:
  - id: c1
    name: Test Caterer
    type: caterer
    cost: 1000
    location: Delhi
    eventTypes: [wedding]
    imageUrl: /assets/test.jpg
`)

	cat, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cat.Len())
	v, ok := cat.Resolve("c1")
	require.True(t, ok)
	assert.Equal(t, int64(1000), v.Cost)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	path := writeCatalogFile(t, "vendors: [}")

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_SchemaRejectsNegativeCost(t *testing.T) {
	path := writeCatalogFile(t, `
vendors:
  - id: c1
    name: Broken
    type: caterer
    cost: -5
    location: Delhi
    eventTypes: []
    imageUrl: ""
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate catalog")
}

func TestLoadFile_SchemaRejectsEmptyID(t *testing.T) {
	path := writeCatalogFile(t, `
vendors:
  - id: ""
    name: Broken
    type: caterer
    cost: 5
    location: Delhi
    eventTypes: []
    imageUrl: ""
`)

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_EmptyVendorList(t *testing.T) {
	path := writeCatalogFile(t, "vendors: []\n")

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Zero(t, cat.Len())
}
