package proc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_CapturesOutput(t *testing.T) {
	r := NewExecRunner()

	res := r.Run(context.Background(), 10*time.Second, "sh", "-c", "echo out; echo err 1>&2")

	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.False(t, res.TimedOut())
}

func TestRun_NonZeroExit(t *testing.T) {
	r := NewExecRunner()

	res := r.Run(context.Background(), 10*time.Second, "sh", "-c", "echo broken 1>&2; exit 3")

	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "broken\n", res.Stderr)
}

func TestRun_Timeout(t *testing.T) {
	r := NewExecRunner()

	start := time.Now()
	res := r.Run(context.Background(), 200*time.Millisecond, "sleep", "10")
	elapsed := time.Since(start)

	assert.Equal(t, -1, res.ExitCode)
	assert.Equal(t, "Timeout", res.Stderr)
	assert.Empty(t, res.Stdout)
	assert.True(t, res.TimedOut())
	// Must come back shortly after the deadline, never block for the
	// full sleep.
	assert.Less(t, elapsed, 5*time.Second)
}

func TestRun_MissingExecutable(t *testing.T) {
	r := NewExecRunner()

	res := r.Run(context.Background(), time.Second, "definitely-not-a-real-binary-xyz")

	assert.Equal(t, -1, res.ExitCode)
	assert.NotEmpty(t, res.Stderr)
	assert.False(t, res.TimedOut())
}

func TestRun_RespectsCallerContext(t *testing.T) {
	r := NewExecRunner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := r.Run(ctx, time.Minute, "sleep", "10")
	assert.Equal(t, -1, res.ExitCode)
}
