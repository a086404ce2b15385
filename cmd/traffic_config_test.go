package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTrafficSurvey_ExampleFile(t *testing.T) {
	survey, err := LoadTrafficSurvey(filepath.Join("..", "examples", "traffic.yaml"))
	require.NoError(t, err, "failed to load traffic.yaml")

	assert.Equal(t, "North Corridor Rehabilitation", survey.Project)
	assert.Equal(t, int64(20000000), survey.Counts["Heavy Truck"])
	assert.Equal(t, int64(31242025), survey.Counts["Automobile"])
	assert.Len(t, survey.Counts, 4)
}

func TestLoadTrafficSurvey_RejectsNegativeCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("counts:\n  Heavy Truck: -5\n"), 0o644))

	_, err := LoadTrafficSurvey(path)
	assert.ErrorContains(t, err, "non-negative")
}

func TestLoadTrafficSurvey_Errors(t *testing.T) {
	_, err := LoadTrafficSurvey(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("counts: [not, a, map]"), 0o644))
	_, err = LoadTrafficSurvey(path)
	assert.Error(t, err)
}
