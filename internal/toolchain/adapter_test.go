package toolchain

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polybench/internal/proc"
)

// fakeRunner records every invocation and replies with canned results
// keyed by the command name.
type fakeRunner struct {
	calls   [][]string
	results map[string]proc.Result
}

func (f *fakeRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) proc.Result {
	f.calls = append(f.calls, append([]string{name}, args...))
	if res, ok := f.results[name]; ok {
		return res
	}
	return proc.Result{ExitCode: 0}
}

func fakeSpecs() map[Language]Spec {
	return map[Language]Spec{
		Python: {Ext: ".py", Run: []string{"fake-interp", "{src}"}},
		Rust:   {Ext: ".rs", Compile: []string{"fake-cc", "-o", "{bin}", "{src}"}, Run: []string{"{bin}"}},
	}
}

func TestMeasure_Interpreted(t *testing.T) {
	fr := &fakeRunner{results: map[string]proc.Result{}}
	a := NewAdapter(fr, WithSpecs(fakeSpecs()))

	tm, err := a.Measure(context.Background(), Python, "print(1)", 3)
	require.NoError(t, err)
	assert.True(t, tm.Usable())
	assert.GreaterOrEqual(t, tm.Millis(), 0.0)

	// One run call per iteration, no compile step.
	assert.Len(t, fr.calls, 3)
	for _, call := range fr.calls {
		assert.Equal(t, "fake-interp", call[0])
	}
}

func TestMeasure_CompileThenRun(t *testing.T) {
	fr := &fakeRunner{results: map[string]proc.Result{}}
	a := NewAdapter(fr, WithSpecs(fakeSpecs()))

	tm, err := a.Measure(context.Background(), Rust, "fn main() {}", 2)
	require.NoError(t, err)
	assert.True(t, tm.Usable())

	require.Len(t, fr.calls, 3)
	assert.Equal(t, "fake-cc", fr.calls[0][0])
	// Run command is the compiled binary.
	assert.True(t, strings.HasSuffix(fr.calls[1][0], ".rs.bin"))
}

func TestMeasure_CompileFailureSkipsRun(t *testing.T) {
	fr := &fakeRunner{results: map[string]proc.Result{
		"fake-cc": {Stderr: "syntax error", ExitCode: 1},
	}}
	a := NewAdapter(fr, WithSpecs(fakeSpecs()))

	tm, err := a.Measure(context.Background(), Rust, "fn main( {}", 5)
	require.NoError(t, err)
	assert.False(t, tm.Usable())
	assert.Contains(t, tm.Reason(), "compile failed")

	// Only the compile call happened.
	assert.Len(t, fr.calls, 1)
}

func TestMeasure_RunFailuresStillProduceTiming(t *testing.T) {
	fr := &fakeRunner{results: map[string]proc.Result{
		"fake-interp": {Stderr: "crash", ExitCode: 2},
	}}
	a := NewAdapter(fr, WithSpecs(fakeSpecs()))

	tm, err := a.Measure(context.Background(), Python, "boom", 4)
	require.NoError(t, err)
	assert.True(t, tm.Usable())
	assert.Len(t, fr.calls, 4)
}

func TestMeasure_UnsupportedLanguage(t *testing.T) {
	a := NewAdapter(&fakeRunner{}, WithSpecs(fakeSpecs()))

	_, err := a.Measure(context.Background(), Go, "package main", 1)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestMeasure_CleansUpTempFiles(t *testing.T) {
	var written []string
	fr := &fakeRunner{results: map[string]proc.Result{}}
	a := NewAdapter(fr, WithSpecs(fakeSpecs()))

	_, err := a.Measure(context.Background(), Python, "print(1)", 1)
	require.NoError(t, err)
	require.NotEmpty(t, fr.calls)
	written = append(written, fr.calls[0][1])

	// Compile failure path must clean up too.
	fr2 := &fakeRunner{results: map[string]proc.Result{
		"fake-cc": {ExitCode: 1},
	}}
	a2 := NewAdapter(fr2, WithSpecs(fakeSpecs()))
	_, err = a2.Measure(context.Background(), Rust, "bad", 1)
	require.NoError(t, err)
	require.NotEmpty(t, fr2.calls)
	written = append(written, fr2.calls[0][3])

	for _, path := range written {
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "expected %s to be removed", path)
		_, statErr = os.Stat(path + ".bin")
		assert.True(t, os.IsNotExist(statErr))
	}
}

func TestMeasure_CancelledContext(t *testing.T) {
	fr := &fakeRunner{results: map[string]proc.Result{}}
	a := NewAdapter(fr, WithSpecs(fakeSpecs()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Measure(ctx, Python, "print(1)", 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fr.calls)
}
