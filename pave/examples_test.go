package pave

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExampleConfigs_Tables verifies that examples/tables.yaml loads,
// validates and reproduces the built-in reference tables exactly.
func TestExampleConfigs_Tables(t *testing.T) {
	path := filepath.Join("..", "examples", "tables.yaml")
	bundle, err := LoadTableBundle(path)
	require.NoError(t, err, "failed to load tables.yaml")
	require.NoError(t, bundle.Validate(), "validation failed")

	tables, err := bundle.Tables()
	require.NoError(t, err)

	defaults := DefaultTables()
	assert.Equal(t, defaults.Reliability, tables.Reliability)
	assert.Equal(t, defaults.Serviceability, tables.Serviceability)
	assert.Equal(t, defaults.Materials, tables.Materials)
	assert.Equal(t, defaults.MinimumSN, tables.MinimumSN)
	assert.Equal(t, defaults.EquivalencyFactors, tables.EquivalencyFactors)
}
