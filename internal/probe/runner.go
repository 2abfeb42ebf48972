package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes the helper commands native queries are built on.
type Runner interface {
	// Run executes name with args and returns its stdout.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// LookPath reports where name would be found on PATH.
	LookPath(name string) (string, error)
}

// ExecError wraps command failures with exit details.
type ExecError struct {
	Command  string
	ExitCode int
	Stderr   []byte
	Err      error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("command failed (exit=%d): %s", e.ExitCode, e.Command)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// SystemRunner runs commands with os/exec.
type SystemRunner struct{}

// Run executes name with args and returns its stdout.
func (SystemRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	command := exec.CommandContext(ctx, name, args...)

	var stdoutBuf bytes.Buffer
	var stderrBuf bytes.Buffer
	command.Stdout = &stdoutBuf
	command.Stderr = &stderrBuf

	if err := command.Run(); err != nil {
		return stdoutBuf.Bytes(), wrapExecError(err, name, args, stderrBuf.Bytes())
	}
	return stdoutBuf.Bytes(), nil
}

// LookPath reports where name would be found on PATH.
func (SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func wrapExecError(err error, name string, args []string, stderr []byte) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return &ExecError{
		Command:  strings.TrimSpace(name + " " + strings.Join(args, " ")),
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}
