package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEstimate(t *testing.T, dir, group, bench, body string) {
	t.Helper()
	leaf := filepath.Join(dir, group, bench)
	require.NoError(t, os.MkdirAll(leaf, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(leaf, "estimates.json"), []byte(body), 0644))
}

func TestLoadEstimates(t *testing.T) {
	dir := t.TempDir()
	writeEstimate(t, dir, "interpreter", "fibonacci",
		`{"mean": {"point_estimate": 1500.5, "lower_bound": 1400.0, "upper_bound": 1600.0}}`)
	writeEstimate(t, dir, "micro", "add",
		`{"mean": {"point_estimate": 12.0, "lower_bound": 11.0, "upper_bound": 13.0}}`)

	estimates, err := LoadEstimates(dir)
	require.NoError(t, err)
	require.Len(t, estimates, 2)

	fib := estimates["interpreter/fibonacci"]
	assert.Equal(t, 1500.5, fib.Mean.PointEstimate)
	assert.Equal(t, 1400.0, fib.Mean.LowerBound)
	assert.Equal(t, 1600.0, fib.Mean.UpperBound)

	assert.Equal(t, []string{"interpreter/fibonacci", "micro/add"}, sortedKeys(estimates))
}

func TestLoadEstimates_MissingDirIsAbsent(t *testing.T) {
	estimates, err := LoadEstimates(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Nil(t, estimates)
}

func TestLoadEstimates_SkipsLeavesWithoutEstimateFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "group", "empty"), 0755))
	writeEstimate(t, dir, "group", "real", `{"mean": {"point_estimate": 1.0}}`)

	estimates, err := LoadEstimates(dir)
	require.NoError(t, err)
	assert.Len(t, estimates, 1)
	_, ok := estimates["group/real"]
	assert.True(t, ok)
}

func TestLoadEstimates_EmptyTreeIsAbsent(t *testing.T) {
	estimates, err := LoadEstimates(t.TempDir())
	assert.NoError(t, err)
	assert.Nil(t, estimates)
}
