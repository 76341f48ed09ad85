// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

// ExitCode is the process exit status reported to the shell.
type ExitCode int

const (
	// ExitOK means validation succeeded and downstream processing proceeded.
	ExitOK ExitCode = 0
	// ExitFailure is the generic failure status.
	ExitFailure ExitCode = 1
	// ExitUsage means the argument vector failed validation.
	ExitUsage ExitCode = 2
)

// ExitError signals a specific exit code without forcing os.Exit in RunE
// handlers.
type ExitError struct {
	Code ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
