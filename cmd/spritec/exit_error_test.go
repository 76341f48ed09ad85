// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	t.Parallel()

	withCause := &ExitError{Code: ExitUsage, Err: errors.New("bad flag")}
	if got := withCause.Error(); got != "bad flag" {
		t.Errorf("Error() = %q, want %q", got, "bad flag")
	}

	bare := &ExitError{Code: ExitFailure}
	if got := bare.Error(); got != "exit status 1" {
		t.Errorf("Error() = %q, want %q", got, "exit status 1")
	}
}

func TestExitError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad flag")
	err := error(&ExitError{Code: ExitUsage, Err: cause})
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("errors.As(*ExitError) = false, want true")
	}
	if exitErr.Code != ExitUsage {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUsage)
	}
}
