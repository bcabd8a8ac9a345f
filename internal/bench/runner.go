package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"polybench/internal/registry"
	"polybench/internal/toolchain"
)

// Measurer produces one timing for one (snippet, language) pair. It is
// satisfied by toolchain.Adapter; tests substitute fakes.
type Measurer interface {
	Measure(ctx context.Context, lang toolchain.Language, source string, iterations int) (toolchain.Timing, error)
}

// Runner walks the registry in order and measures every benchmark for
// every language. It is a pure composition point: no retries, no state
// beyond the result list being built.
type Runner struct {
	Registry   *registry.Registry
	Measurer   Measurer
	Iterations int
	Out        io.Writer
	Logger     *slog.Logger
}

func NewRunner(reg *registry.Registry, m Measurer, iterations int, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		Registry:   reg,
		Measurer:   m,
		Iterations: iterations,
		Out:        out,
		Logger:     logger,
	}
}

// RunAll measures the full suite and returns the result document.
// Benchmarks run in registration order and languages in canonical
// order, so two runs over the same registry produce diffable output.
// A sentinel timing from the measurer is accepted as final; only a
// configuration defect (unsupported language) or cancellation aborts
// the run.
func (r *Runner) RunAll(ctx context.Context) (*Document, error) {
	doc := NewDocument(r.Iterations, time.Now())

	for _, def := range r.Registry.Definitions() {
		r.printf("Running benchmark: %s (%s)\n", def.Name, def.Description)
		result := Result{
			Name:  def.Name,
			Times: make(map[toolchain.Language]toolchain.Timing, len(toolchain.Languages())),
		}

		for _, lang := range toolchain.Languages() {
			tm, err := r.Measurer.Measure(ctx, lang, def.Sources[lang], r.Iterations)
			if err != nil {
				return nil, fmt.Errorf("benchmark %s, language %s: %w", def.Name, lang, err)
			}
			result.Times[lang] = tm

			if tm.Usable() {
				r.printf("  %-8s %10.2fms\n", lang.Display()+":", tm.Millis())
			} else {
				r.printf("  %-8s %10s\n", lang.Display()+":", "N/A")
				r.Logger.Warn("measurement unusable",
					"benchmark", def.Name, "language", lang.String(), "reason", tm.Reason())
			}
		}

		doc.Benchmarks = append(doc.Benchmarks, result)
	}

	return doc, nil
}

func (r *Runner) printf(format string, args ...any) {
	if r.Out != nil {
		fmt.Fprintf(r.Out, format, args...)
	}
}
