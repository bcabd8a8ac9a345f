package toolchain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Timing is the outcome of measuring one (benchmark, language) pair. It
// is a tagged value: either a usable per-iteration average in
// milliseconds, or an unusable marker carrying the failure reason.
// Keeping the tag explicit prevents sentinel values from leaking into
// downstream arithmetic.
type Timing struct {
	millis   float64
	unusable bool
	reason   string
}

// OK wraps a usable per-iteration average.
func OK(millis float64) Timing {
	return Timing{millis: millis}
}

// Unusable marks a pair that could not be timed (compile failure or
// similar). The reason is diagnostic only and is not persisted.
func Unusable(reason string) Timing {
	return Timing{unusable: true, reason: reason}
}

// Usable reports whether the timing carries a real measurement.
func (t Timing) Usable() bool {
	return !t.unusable
}

// Millis returns the per-iteration average. For unusable timings it
// returns +Inf so accidental comparisons still sort the pair last, but
// callers are expected to check Usable first.
func (t Timing) Millis() float64 {
	if t.unusable {
		return math.Inf(1)
	}
	return t.millis
}

// Reason returns the failure description for unusable timings.
func (t Timing) Reason() string {
	return t.reason
}

func (t Timing) String() string {
	if t.unusable {
		return "unusable"
	}
	return fmt.Sprintf("%.3fms", t.millis)
}

// MarshalJSON writes the millisecond value, or null for an unusable
// timing. encoding/json rejects non-finite numbers, so null is the
// on-disk spelling of the infinity sentinel.
func (t Timing) MarshalJSON() ([]byte, error) {
	if t.unusable {
		return []byte("null"), nil
	}
	return json.Marshal(t.millis)
}

// UnmarshalJSON accepts a number or null. The failure reason is not
// round-tripped; a reloaded unusable timing is unusable without detail.
func (t *Timing) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Unusable("")
		return nil
	}
	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*t = OK(ms)
	return nil
}
