package bench

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polybench/internal/toolchain"
)

func sampleDocument() *Document {
	doc := NewDocument(100, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	doc.Benchmarks = []Result{
		{
			Name: "fibonacci_recursive",
			Times: map[toolchain.Language]toolchain.Timing{
				toolchain.Python: toolchain.OK(42.125),
				toolchain.Rust:   toolchain.OK(0.8),
				toolchain.Cpp:    toolchain.OK(0.9),
				toolchain.Go:     toolchain.Unusable("compile failed"),
			},
		},
		{
			Name: "string_concat",
			Times: map[toolchain.Language]toolchain.Timing{
				toolchain.Python: toolchain.OK(10.0),
				toolchain.Rust:   toolchain.OK(1.0),
				toolchain.Cpp:    toolchain.OK(1.1),
				toolchain.Go:     toolchain.OK(1.5),
			},
		},
	}
	return doc
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compare_results.json")
	doc := sampleDocument()

	require.NoError(t, Save(doc, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, doc.Timestamp, loaded.Timestamp)
	assert.Equal(t, doc.RunID, loaded.RunID)
	assert.Equal(t, doc.Iterations, loaded.Iterations)
	require.Len(t, loaded.Benchmarks, 2)

	// Sentinel survives the round trip as an unusable timing.
	goTiming := loaded.Benchmarks[0].Timing(toolchain.Go)
	assert.False(t, goTiming.Usable())
	assert.True(t, math.IsInf(goTiming.Millis(), 1))

	assert.Equal(t, 42.125, loaded.Benchmarks[0].Timing(toolchain.Python).Millis())
	assert.Equal(t, "string_concat", loaded.Benchmarks[1].Name)
}

func TestSave_FieldOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Save(sampleDocument(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	raw := string(data)
	// Each benchmark object lists name first, then languages in
	// canonical order, for reproducible diffs.
	assert.Regexp(t, `(?s)"name".*"python".*"rust".*"cpp".*"go"`, raw)
	assert.Contains(t, raw, `"go": null`)
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Save(sampleDocument(), path))

	second := sampleDocument()
	second.Benchmarks = second.Benchmarks[:1]
	require.NoError(t, Save(second, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Benchmarks, 1)
}

func TestLoad_MissingFileIsAbsent(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
