// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Flag names shared between the option schema and the validation errors that
// reference them. The leading dashes are added at formatting time.
const (
	FlagRatio           = "ratio"
	FlagRetina          = "retina"
	FlagUnique          = "unique"
	FlagRecursive       = "recursive"
	FlagCrop            = "crop"
	FlagIncludeCenter   = "include-center"
	FlagSpacing         = "spacing"
	FlagOxipng          = "oxipng"
	FlagZopfli          = "zopfli"
	FlagMinifyIndexFile = "minify-index-file"
	FlagSimpleIndexFile = "simple-index-file"
	FlagSDF             = "sdf"
)

var (
	// ErrNotAnInteger is the sentinel error wrapped by ParseError.
	ErrNotAnInteger = errors.New("not a valid integer")
	// ErrOutOfRange is the sentinel error wrapped by RangeError.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInputNotDirectory is the sentinel error wrapped by PathError.
	ErrInputNotDirectory = errors.New("input is not an existing directory")
	// ErrFlagConflict is the sentinel error wrapped by GroupConflictError.
	ErrFlagConflict = errors.New("mutually exclusive flags")
	// ErrFlagDependency is the sentinel error wrapped by DependencyError.
	ErrFlagDependency = errors.New("missing companion flag")
	// ErrInvalidArgs is the sentinel error wrapped by InvalidArgsError.
	ErrInvalidArgs = errors.New("invalid arguments")
)

type (
	// Config holds the validated spritesheet configuration. It is constructed
	// exactly once per invocation by Options.Resolve and must not be mutated
	// afterwards; the builder receives it as its sole input.
	Config struct {
		// Input is the source directory of images. Resolve has verified that
		// it exists and is a directory.
		Input string
		// Output is the destination spritesheet filename. No filesystem check
		// is performed on it here.
		Output string
		// Ratio is the effective output pixel ratio: 2 when --retina was
		// given, otherwise the value of --ratio (default 1). Always >= 1.
		Ratio uint8
		// Retina records whether the ratio came from --retina.
		Retina bool
		// Unique stores only one copy of identical images and maps multiple
		// names to it.
		Unique bool
		// Recursive includes images found in sub-directories.
		Recursive bool
		// Crop trims transparent pixels around the edges of each sprite.
		Crop bool
		// IncludeCenter records the pre-crop center of each sprite in the
		// index file. Only valid together with Crop.
		IncludeCenter bool
		// Spacing is the pixel padding between sprites (default 0).
		Spacing uint8
		// Oxipng is the PNG optimization level (0-6), or nil when oxipng
		// optimization was not requested. Never set together with Zopfli.
		Oxipng *uint8
		// Zopfli is the number of zopfli iterations (1-255), or nil when
		// zopfli optimization was not requested. Never set together with
		// Oxipng.
		Zopfli *uint8
		// MinifyIndexFile emits the JSON index without whitespace.
		MinifyIndexFile bool
		// SimpleIndexFile restricts the JSON index to x, y, width and height.
		SimpleIndexFile bool
		// SDF outputs signed-distance-field sprites.
		SDF bool
	}

	// ParseError is returned when a flag value is not a syntactically valid
	// integer. It wraps ErrNotAnInteger for errors.Is() compatibility.
	ParseError struct {
		// Flag is the flag name without leading dashes.
		Flag string
		// Value is the raw string that failed to parse.
		Value string
	}

	// RangeError is returned when a syntactically valid integer violates the
	// declared bound of its flag. It wraps ErrOutOfRange for errors.Is()
	// compatibility.
	RangeError struct {
		// Flag is the flag name without leading dashes.
		Flag string
		// Value is the raw string that parsed but fell outside [Min, Max].
		Value string
		// Min and Max are the inclusive bounds declared for the flag.
		Min uint8
		Max uint8
	}

	// PathError is returned when the input path does not exist or is not a
	// directory. A transient filesystem error is reported the same way, with
	// the stat failure attached as Cause. It wraps ErrInputNotDirectory for
	// errors.Is() compatibility.
	PathError struct {
		// Path is the input path as given on the command line.
		Path string
		// Cause is the underlying stat error, or nil when the path exists but
		// is not a directory.
		Cause error
	}

	// GroupConflictError is returned when two mutually exclusive flags were
	// both supplied. It wraps ErrFlagConflict for errors.Is() compatibility.
	GroupConflictError struct {
		// First and Second are the conflicting flag names without dashes.
		First  string
		Second string
	}

	// DependencyError is returned when a flag requiring another flag's
	// presence was supplied without it. It wraps ErrFlagDependency for
	// errors.Is() compatibility.
	DependencyError struct {
		// Flag is the flag that was supplied.
		Flag string
		// Requires is the flag that must accompany it.
		Requires string
	}

	// InvalidArgsError aggregates every violation found during a single
	// validation pass. Per-field errors are listed before cross-field ones, so
	// the most specific diagnosis leads. It wraps ErrInvalidArgs for
	// errors.Is() compatibility.
	InvalidArgsError struct {
		FieldErrors []error
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: not a valid integer", e.Value, e.Flag)
}

// Unwrap returns ErrNotAnInteger for errors.Is() compatibility.
func (e *ParseError) Unwrap() error { return ErrNotAnInteger }

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: must be between %d and %d", e.Value, e.Flag, e.Min, e.Max)
}

// Unwrap returns ErrOutOfRange for errors.Is() compatibility.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("invalid input %q: must be an existing directory", e.Path)
}

// Unwrap returns ErrInputNotDirectory for errors.Is() compatibility.
func (e *PathError) Unwrap() error { return ErrInputNotDirectory }

// Error implements the error interface.
func (e *GroupConflictError) Error() string {
	return fmt.Sprintf("--%s and --%s cannot be used together", e.First, e.Second)
}

// Unwrap returns ErrFlagConflict for errors.Is() compatibility.
func (e *GroupConflictError) Unwrap() error { return ErrFlagConflict }

// Error implements the error interface.
func (e *DependencyError) Error() string {
	return fmt.Sprintf("--%s requires --%s", e.Flag, e.Requires)
}

// Unwrap returns ErrFlagDependency for errors.Is() compatibility.
func (e *DependencyError) Unwrap() error { return ErrFlagDependency }

// Error implements the error interface. A single violation is reported
// inline; multiple violations are listed one per line.
func (e *InvalidArgsError) Error() string {
	switch len(e.FieldErrors) {
	case 0:
		return "invalid arguments"
	case 1:
		return "invalid arguments: " + e.FieldErrors[0].Error()
	default:
		var msg strings.Builder
		msg.WriteString("invalid arguments:")
		for _, fieldErr := range e.FieldErrors {
			msg.WriteString("\n  ")
			msg.WriteString(fieldErr.Error())
		}
		return msg.String()
	}
}

// Unwrap returns ErrInvalidArgs plus every field error, so errors.Is/As can
// reach both the aggregate sentinel and the individual violations.
func (e *InvalidArgsError) Unwrap() []error {
	return append([]error{ErrInvalidArgs}, e.FieldErrors...)
}
