// Package registry holds the fixed set of benchmark definitions: one
// named algorithmic task per entry, expressed once per target language.
package registry

import (
	"fmt"

	"polybench/internal/toolchain"
)

// Definition is one benchmark: a unique name, a human-readable
// description, and one source snippet per language. Definitions are
// immutable once registered.
type Definition struct {
	Name        string
	Description string
	Sources     map[toolchain.Language]string
}

// Registry is an insertion-ordered collection of definitions. The order
// is preserved all the way into the report so runs diff cleanly.
type Registry struct {
	defs  []Definition
	index map[string]int
}

func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add registers a definition. Re-registering a name or omitting a
// language is a programming error, caught at startup rather than
// mid-run.
func (r *Registry) Add(def Definition) error {
	if _, dup := r.index[def.Name]; dup {
		return fmt.Errorf("duplicate benchmark %q", def.Name)
	}
	for _, lang := range toolchain.Languages() {
		if _, ok := def.Sources[lang]; !ok {
			return fmt.Errorf("benchmark %q: missing %s source", def.Name, lang)
		}
	}
	r.index[def.Name] = len(r.defs)
	r.defs = append(r.defs, def)
	return nil
}

// Definitions returns all benchmarks in registration order.
func (r *Registry) Definitions() []Definition {
	return r.defs
}

// Len returns the number of registered benchmarks.
func (r *Registry) Len() int {
	return len(r.defs)
}
