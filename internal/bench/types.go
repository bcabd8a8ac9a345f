// Package bench drives the benchmark suite end to end: run every
// definition against every language, fold the timings into a result
// document, and persist it.
package bench

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"polybench/internal/toolchain"
)

// TimestampLayout is the document timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// Result aggregates all timings for one benchmark. There is exactly one
// Timing per language; failures are present as unusable timings, never
// as missing entries.
type Result struct {
	Name  string
	Times map[toolchain.Language]toolchain.Timing
}

// Timing returns the measurement for one language.
func (r Result) Timing(lang toolchain.Language) toolchain.Timing {
	return r.Times[lang]
}

// Fastest returns the language with the minimum usable timing. The
// boolean is false when no language produced a usable measurement.
func (r Result) Fastest() (toolchain.Language, toolchain.Timing, bool) {
	var best toolchain.Language
	var bestTiming toolchain.Timing
	found := false
	for _, lang := range toolchain.Languages() {
		tm := r.Times[lang]
		if !tm.Usable() {
			continue
		}
		if !found || tm.Millis() < bestTiming.Millis() {
			best, bestTiming, found = lang, tm, true
		}
	}
	return best, bestTiming, found
}

// MarshalJSON projects the result as an ordered flat object: the name
// first, then one field per language in canonical order. Unusable
// timings serialize as null (the wire form of the infinity sentinel).
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	name, err := json.Marshal(r.Name)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"name":`)
	buf.Write(name)

	for _, lang := range toolchain.Languages() {
		tm, ok := r.Times[lang]
		if !ok {
			return nil, fmt.Errorf("benchmark %q: no timing for %s", r.Name, lang)
		}
		val, err := json.Marshal(tm)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `,%q:`, lang.String())
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the flat projection back. Unknown fields are
// ignored so documents from newer language sets still load.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if nameRaw, ok := raw["name"]; ok {
		if err := json.Unmarshal(nameRaw, &r.Name); err != nil {
			return err
		}
	}
	r.Times = make(map[toolchain.Language]toolchain.Timing, len(toolchain.Languages()))
	for _, lang := range toolchain.Languages() {
		var tm toolchain.Timing
		if field, ok := raw[lang.String()]; ok {
			if err := json.Unmarshal(field, &tm); err != nil {
				return fmt.Errorf("benchmark %q, field %s: %w", r.Name, lang, err)
			}
		} else {
			tm = toolchain.Unusable("missing from document")
		}
		r.Times[lang] = tm
	}
	return nil
}

// Document is the persisted snapshot of one full run. It is written
// once and never appended to; a new run produces a new document.
type Document struct {
	Timestamp  string   `json:"timestamp"`
	RunID      string   `json:"run_id"`
	Iterations int      `json:"iterations"`
	Benchmarks []Result `json:"benchmarks"`
}

// NewDocument stamps a fresh document for the given iteration count.
func NewDocument(iterations int, now time.Time) *Document {
	return &Document{
		Timestamp:  now.Format(TimestampLayout),
		RunID:      uuid.NewString(),
		Iterations: iterations,
	}
}
