// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"strconv"
)

type (
	// Options is the raw option set collected from the command line, before
	// any value has been converted or checked. Numeric values stay strings so
	// that this package owns the ParseError/RangeError distinction instead of
	// the flag library. The *Set fields record whether a flag was explicitly
	// supplied, which is what the mutual-exclusion groups care about.
	Options struct {
		Input  string
		Output string

		Ratio    string
		RatioSet bool
		Retina   bool

		Unique        bool
		Recursive     bool
		Crop          bool
		IncludeCenter bool

		Spacing string

		Oxipng    string
		OxipngSet bool
		Zopfli    string
		ZopfliSet bool

		MinifyIndexFile bool
		SimpleIndexFile bool
		SDF             bool
	}

	// constraint checks one cross-field rule against the supplied option set.
	// Constraints only look at flag presence, never at parsed values, so they
	// can run even when a per-field validator has already failed.
	constraint func(Options) error
)

// crossChecks are applied in order after every per-field validator has run.
var crossChecks = []constraint{
	exclusivePixelRatio,
	exclusiveOptimization,
	centerRequiresCrop,
}

// Resolve converts the raw option set into a validated Config. Every
// per-field validator runs first, then every cross-field constraint; all
// violations are returned together as a single *InvalidArgsError. On success
// the effective pixel ratio has been resolved (--retina means 2) and every
// invariant documented on Config holds.
func (o Options) Resolve() (*Config, error) {
	var errs []error

	if err := checkInputDir(o.Input); err != nil {
		errs = append(errs, err)
	}

	ratio := uint8(1)
	if raw := o.Ratio; raw != "" {
		v, err := parseBounded(FlagRatio, raw, 1, 255)
		if err != nil {
			errs = append(errs, err)
		} else {
			ratio = v
		}
	}

	spacing := uint8(0)
	if raw := o.Spacing; raw != "" {
		v, err := parseBounded(FlagSpacing, raw, 0, 255)
		if err != nil {
			errs = append(errs, err)
		} else {
			spacing = v
		}
	}

	var oxipng *uint8
	if o.OxipngSet {
		v, err := parseBounded(FlagOxipng, o.Oxipng, 0, 6)
		if err != nil {
			errs = append(errs, err)
		} else {
			oxipng = &v
		}
	}

	var zopfli *uint8
	if o.ZopfliSet {
		v, err := parseBounded(FlagZopfli, o.Zopfli, 1, 255)
		if err != nil {
			errs = append(errs, err)
		} else {
			zopfli = &v
		}
	}

	for _, check := range crossChecks {
		if err := check(o); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, &InvalidArgsError{FieldErrors: errs}
	}

	if o.Retina {
		ratio = 2
	}

	return &Config{
		Input:           o.Input,
		Output:          o.Output,
		Ratio:           ratio,
		Retina:          o.Retina,
		Unique:          o.Unique,
		Recursive:       o.Recursive,
		Crop:            o.Crop,
		IncludeCenter:   o.IncludeCenter,
		Spacing:         spacing,
		Oxipng:          oxipng,
		Zopfli:          zopfli,
		MinifyIndexFile: o.MinifyIndexFile,
		SimpleIndexFile: o.SimpleIndexFile,
		SDF:             o.SDF,
	}, nil
}

// checkInputDir verifies that path names an existing directory. Stat failures
// of any kind are reported as the same PathError; there is no retry.
func checkInputDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &PathError{Path: path, Cause: err}
	}
	if !info.IsDir() {
		return &PathError{Path: path}
	}
	return nil
}

// parseBounded converts a raw flag value to a uint8 within [min, max]. A
// string that is not an integer at all yields a ParseError; an integer that
// falls outside the bound (including anything above 255) yields a RangeError.
func parseBounded(flag, raw string, min, max uint8) (uint8, error) {
	v, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Flag: flag, Value: raw, Min: min, Max: max}
		}
		return 0, &ParseError{Flag: flag, Value: raw}
	}
	if uint8(v) < min || uint8(v) > max {
		return 0, &RangeError{Flag: flag, Value: raw, Min: min, Max: max}
	}
	return uint8(v), nil
}

// exclusivePixelRatio rejects an explicit --ratio combined with --retina.
func exclusivePixelRatio(o Options) error {
	if o.RatioSet && o.Retina {
		return &GroupConflictError{First: FlagRatio, Second: FlagRetina}
	}
	return nil
}

// exclusiveOptimization rejects --oxipng combined with --zopfli.
func exclusiveOptimization(o Options) error {
	if o.OxipngSet && o.ZopfliSet {
		return &GroupConflictError{First: FlagOxipng, Second: FlagZopfli}
	}
	return nil
}

// centerRequiresCrop rejects --include-center without --crop.
func centerRequiresCrop(o Options) error {
	if o.IncludeCenter && !o.Crop {
		return &DependencyError{Flag: FlagIncludeCenter, Requires: FlagCrop}
	}
	return nil
}
