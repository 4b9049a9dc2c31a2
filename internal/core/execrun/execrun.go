// SPDX-License-Identifier: Apache-2.0

// Package execrun shells out to a configured external tool, currently
// the optional lint hook. Output is captured; a non-zero exit is
// reported through the result rather than treated as a hard failure.
package execrun

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner holds the configuration for one external command invocation.
type Runner struct {
	command    string
	args       []string
	workingDir string
	verbose    bool
}

// Result holds the outcome of a command invocation.
type Result struct {
	Output     []byte
	ExitStatus int
}

// New creates a runner for command with its arguments.
func New(command string, args ...string) *Runner {
	return &Runner{command: command, args: args}
}

// WithWorkingDir sets the directory the command runs in.
func (r *Runner) WithWorkingDir(dir string) *Runner {
	r.workingDir = dir
	return r
}

// WithVerbose mirrors the command's output to the process streams.
func (r *Runner) WithVerbose(verbose bool) *Runner {
	r.verbose = verbose
	return r
}

// Run executes the command. A non-zero exit returns the result with the
// status filled in and a nil error; only a failure to start the command
// at all is an error.
func (r *Runner) Run() (*Result, error) {
	cmd := exec.Command(r.command, r.args...)

	var stdout, stderr bytes.Buffer
	if r.verbose {
		cmd.Stdout = io.MultiWriter(&stdout, os.Stdout)
		cmd.Stderr = io.MultiWriter(&stderr, os.Stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	err := cmd.Run()

	result := &Result{Output: stdout.Bytes()}
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			result.ExitStatus = exitError.ExitCode()
			if len(result.Output) == 0 {
				result.Output = stderr.Bytes()
			}
			return result, nil
		}
		return nil, fmt.Errorf("error running %s: %w", r.command, err)
	}

	return result, nil
}
