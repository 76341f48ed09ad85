// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError is an error carrying enough context for a useful terminal
// diagnostic: the operation that failed, the underlying cause, and concrete
// suggestions for fixing it. Suggestions are part of the Error() text so that
// whoever renders the error (cobra, fang) shows them without extra plumbing.
type ActionableError struct {
	// Operation describes what was being attempted, as a verb phrase
	// (e.g. "validate command-line arguments").
	Operation string

	// Suggestions are concrete next steps for the user (optional).
	Suggestions []string

	// Cause is the underlying error (optional).
	Cause error
}

// Wrap attaches operation context and suggestions to an error. It returns nil
// when err is nil.
func Wrap(err error, operation string, suggestions ...string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{
		Operation:   operation,
		Suggestions: suggestions,
		Cause:       err,
	}
}

// Error implements the error interface.
//
//	failed to <operation>: <cause message>
//	  • <suggestion 1>
//	  • <suggestion 2>
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	for _, suggestion := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(suggestion)
	}

	return msg.String()
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the message, and in verbose mode appends the full cause
// chain, one numbered line per wrapped error.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}

// HasSuggestions returns true if the error has any suggestions.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}
