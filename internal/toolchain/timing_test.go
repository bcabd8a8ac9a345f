package toolchain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTiming_OK(t *testing.T) {
	tm := OK(3.25)
	assert.True(t, tm.Usable())
	assert.Equal(t, 3.25, tm.Millis())
	assert.Equal(t, "3.250ms", tm.String())
}

func TestTiming_Unusable(t *testing.T) {
	tm := Unusable("compile failed")
	assert.False(t, tm.Usable())
	assert.True(t, math.IsInf(tm.Millis(), 1))
	assert.Equal(t, "compile failed", tm.Reason())
}

func TestTiming_JSONRoundTrip(t *testing.T) {
	ok, err := json.Marshal(OK(12.5))
	assert.NoError(t, err)
	assert.Equal(t, "12.5", string(ok))

	bad, err := json.Marshal(Unusable("boom"))
	assert.NoError(t, err)
	assert.Equal(t, "null", string(bad))

	var back Timing
	assert.NoError(t, json.Unmarshal(ok, &back))
	assert.True(t, back.Usable())
	assert.Equal(t, 12.5, back.Millis())

	assert.NoError(t, json.Unmarshal(bad, &back))
	assert.False(t, back.Usable())
	assert.True(t, math.IsInf(back.Millis(), 1))
}
