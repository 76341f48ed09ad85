// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"slices"

	"spritec-cli/internal/config"
	"spritec-cli/internal/issue"
)

// glamourStyle is the style name passed to the markdown renderer for
// remediation cards.
const glamourStyle = "dark"

// firstViolation returns the most specific violation inside a validation
// failure: the first field error of an aggregate (per-field errors are listed
// before cross-field ones), or the error itself.
func firstViolation(err error) error {
	var agg *config.InvalidArgsError
	if errors.As(err, &agg) && len(agg.FieldErrors) > 0 {
		return agg.FieldErrors[0]
	}
	return err
}

// classify maps a single violation to its remediation card id.
func classify(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, config.ErrNotAnInteger):
		return issue.InvalidIntegerId, true
	case errors.Is(err, config.ErrOutOfRange):
		return issue.IntegerOutOfRangeId, true
	case errors.Is(err, config.ErrInputNotDirectory):
		return issue.InputNotDirectoryId, true
	case errors.Is(err, config.ErrFlagConflict):
		return issue.ConflictingFlagsId, true
	case errors.Is(err, config.ErrFlagDependency):
		return issue.MissingFlagDependencyId, true
	}
	return 0, false
}

// remediationCard renders the card for the most specific violation, or ""
// when the failure has no card or rendering fails.
func remediationCard(err error) string {
	id, ok := classify(firstViolation(err))
	if !ok {
		return ""
	}
	card := issue.Get(id)
	if card == nil {
		return ""
	}
	out, renderErr := card.Render(glamourStyle)
	if renderErr != nil {
		return ""
	}
	return out
}

// describeFailure wraps a validation failure with one suggestion per distinct
// violation, ready for terminal display.
func describeFailure(err error) error {
	violations := []error{err}
	var agg *config.InvalidArgsError
	if errors.As(err, &agg) {
		violations = agg.FieldErrors
	}

	var suggestions []string
	for _, violation := range violations {
		if s := suggestionFor(violation); s != "" && !slices.Contains(suggestions, s) {
			suggestions = append(suggestions, s)
		}
	}

	return issue.Wrap(err, "validate command-line arguments", suggestions...)
}

// suggestionFor returns a concrete next step for one violation.
func suggestionFor(err error) string {
	var (
		parseErr    *config.ParseError
		rangeErr    *config.RangeError
		pathErr     *config.PathError
		conflictErr *config.GroupConflictError
		depErr      *config.DependencyError
	)
	switch {
	case errors.As(err, &parseErr):
		return fmt.Sprintf("pass a whole number to --%s", parseErr.Flag)
	case errors.As(err, &rangeErr):
		return fmt.Sprintf("--%s accepts values between %d and %d", rangeErr.Flag, rangeErr.Min, rangeErr.Max)
	case errors.As(err, &pathErr):
		return "check that the input path exists and is a directory"
	case errors.As(err, &conflictErr):
		return fmt.Sprintf("drop either --%s or --%s", conflictErr.First, conflictErr.Second)
	case errors.As(err, &depErr):
		return fmt.Sprintf("add --%s when using --%s", depErr.Requires, depErr.Flag)
	}
	return ""
}
