package toolchain

import (
	"context"
	"fmt"
	"os"
	"time"

	"polybench/internal/proc"
)

// DefaultProcessTimeout bounds every individual compile or run call.
const DefaultProcessTimeout = 60 * time.Second

// Adapter measures a source snippet for one language: write the snippet
// to a scoped temp file, compile if the language needs it, then execute
// the run command once per iteration and average the wall clock over the
// whole loop.
type Adapter struct {
	runner  proc.Runner
	specs   map[Language]Spec
	timeout time.Duration
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithSpecs replaces the toolchain table, typically with fake commands
// in tests.
func WithSpecs(specs map[Language]Spec) Option {
	return func(a *Adapter) { a.specs = specs }
}

// WithProcessTimeout sets the per-process timeout for compile and run
// calls.
func WithProcessTimeout(d time.Duration) Option {
	return func(a *Adapter) { a.timeout = d }
}

// NewAdapter builds an Adapter around the given process runner. The
// toolchain table is an explicit value, not ambient state.
func NewAdapter(runner proc.Runner, opts ...Option) *Adapter {
	a := &Adapter{
		runner:  runner,
		specs:   DefaultSpecs(),
		timeout: DefaultProcessTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Measure times the snippet for one language and returns the
// per-iteration average in milliseconds as a Timing. Toolchain failures
// degrade to an unusable Timing; only an unknown language (or a broken
// temp dir) is reported as an error, because that is a configuration
// defect rather than a measurement outcome.
//
// The measurement is a deliberately coarse fixed-iteration estimate:
// wall clock around the whole run loop divided by the iteration count,
// with no per-call overhead compensation and no adaptive sampling.
func (a *Adapter) Measure(ctx context.Context, lang Language, source string, iterations int) (Timing, error) {
	spec, ok := a.specs[lang]
	if !ok {
		return Timing{}, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
	if iterations < 1 {
		iterations = 1
	}

	src, err := writeTempSource(source, spec.Ext)
	if err != nil {
		return Timing{}, fmt.Errorf("write source for %s: %w", lang, err)
	}
	bin := src + ".bin"
	// Remove the source and any build artifact on every exit path.
	defer cleanupArtifacts(src, bin)

	runCmd := expand(spec.Run, src, bin)

	if spec.Compiled() {
		compileCmd := expand(spec.Compile, src, bin)
		res := a.runner.Run(ctx, a.timeout, compileCmd[0], compileCmd[1:]...)
		if res.ExitCode != 0 {
			// Compile time is never charged; the pair is simply
			// unusable and the run step is skipped.
			return Unusable(compileReason(res)), nil
		}
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Timing{}, fmt.Errorf("measure %s: %w", lang, err)
		}
		// Run failures after a successful compile are absorbed: the
		// loop keeps going and the elapsed wall clock still counts.
		a.runner.Run(ctx, a.timeout, runCmd[0], runCmd[1:]...)
	}
	elapsed := time.Since(start)

	perIteration := elapsed.Seconds() / float64(iterations)
	return OK(perIteration * 1000), nil
}

func compileReason(res proc.Result) string {
	if res.TimedOut() {
		return "compile timed out"
	}
	return fmt.Sprintf("compile failed (exit %d): %s", res.ExitCode, res.Stderr)
}

func writeTempSource(source, ext string) (string, error) {
	f, err := os.CreateTemp("", "polybench-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := f.WriteString(source); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func cleanupArtifacts(src, bin string) {
	os.Remove(src)
	for _, artifact := range []string{bin, src + ".exe"} {
		if _, err := os.Stat(artifact); err == nil {
			os.Remove(artifact)
		}
	}
}
