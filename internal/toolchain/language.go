// Package toolchain turns one source snippet into one timed measurement
// by driving the language's external compiler or interpreter.
package toolchain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedLanguage marks a configuration defect: a language was
// requested that the adapter has no command templates for. It is never
// degraded to a sentinel timing.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a closed variant over the supported target languages.
// Behavior is never selected by comparing raw strings; each case carries
// its toolchain spec as data in DefaultSpecs.
type Language int

const (
	Python Language = iota
	Rust
	Cpp
	Go
)

// Languages returns the full language set in its canonical order. This
// order is load-bearing: results, JSON fields, summary columns and
// report columns all follow it.
func Languages() []Language {
	return []Language{Python, Rust, Cpp, Go}
}

func (l Language) String() string {
	switch l {
	case Python:
		return "python"
	case Rust:
		return "rust"
	case Cpp:
		return "cpp"
	case Go:
		return "go"
	default:
		return fmt.Sprintf("language(%d)", int(l))
	}
}

// Display returns the human-facing name used in tables and reports.
func (l Language) Display() string {
	switch l {
	case Python:
		return "Python"
	case Rust:
		return "Rust"
	case Cpp:
		return "C++"
	case Go:
		return "Go"
	default:
		return l.String()
	}
}

// ParseLanguage maps a canonical identifier back to its variant.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages() {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// Spec describes how to build and run a snippet for one language.
// Compile is nil for interpreted languages. Templates use the {src} and
// {bin} placeholders, expanded per measurement.
type Spec struct {
	Ext     string
	Compile []string
	Run     []string
}

// Compiled reports whether the language needs a build step before it can
// be executed.
func (s Spec) Compiled() bool {
	return len(s.Compile) > 0
}

// DefaultSpecs is the production toolchain table. Tests inject their own
// table with fake commands instead of mutating this one.
func DefaultSpecs() map[Language]Spec {
	return map[Language]Spec{
		Python: {
			Ext: ".py",
			Run: []string{"python3", "{src}"},
		},
		Rust: {
			Ext:     ".rs",
			Compile: []string{"rustc", "-O", "-o", "{bin}", "{src}"},
			Run:     []string{"{bin}"},
		},
		Cpp: {
			Ext:     ".cpp",
			Compile: []string{"g++", "-O2", "-o", "{bin}", "{src}"},
			Run:     []string{"{bin}"},
		},
		Go: {
			Ext:     ".go",
			Compile: []string{"go", "build", "-o", "{bin}", "{src}"},
			Run:     []string{"{bin}"},
		},
	}
}

// expand substitutes the {src} and {bin} placeholders in a template.
func expand(template []string, src, bin string) []string {
	out := make([]string, len(template))
	for i, arg := range template {
		arg = strings.ReplaceAll(arg, "{src}", src)
		arg = strings.ReplaceAll(arg, "{bin}", bin)
		out[i] = arg
	}
	return out
}
