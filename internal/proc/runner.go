// Package proc runs external commands with a hard timeout and reports
// every outcome, including launch failures, as a plain value.
package proc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Result captures everything a caller needs to know about one finished
// (or failed-to-start) command. ExitCode is -1 for timeouts and launch
// failures, mirroring the reserved code callers already check for.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// TimedOut reports whether the command was killed by the timeout.
func (r Result) TimedOut() bool {
	return r.ExitCode == -1 && r.Stderr == "Timeout"
}

// Runner executes a single external command. Implementations must not
// return errors; failures are encoded in the Result.
type Runner interface {
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) Result
}

// ExecRunner runs commands as local child processes via os/exec.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run launches the command and waits for it to finish, capturing stdout
// and stderr as text. If the command outlives the timeout it is killed
// and the reserved timeout outcome is returned. Launch failures (missing
// executable, permission denied) produce ExitCode -1 with the failure
// description in Stderr. Run never panics and never returns an error.
func (e *ExecRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) Result {
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()

	if cmdCtx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
		return Result{Stdout: "", Stderr: "Timeout", ExitCode: -1}
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
			return Result{Stdout: outBuf.String(), Stderr: errBuf.String(), ExitCode: exitCode}
		}
		// Launch failure: the process never ran, so the buffers are
		// empty and the error itself is the only diagnostic.
		return Result{Stdout: "", Stderr: err.Error(), ExitCode: exitCode}
	}

	return Result{Stdout: outBuf.String(), Stderr: errBuf.String(), ExitCode: 0}
}
