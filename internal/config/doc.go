// SPDX-License-Identifier: MPL-2.0

// Package config defines the spritec configuration entity and the validation
// pipeline that produces it from raw command-line values.
//
// A Config is built exactly once per invocation and is read-only afterwards.
// Validation is all-or-nothing: every per-field validator runs first, then the
// cross-field constraints, and all violations are reported together in a single
// InvalidArgsError. No partial configuration is ever handed downstream.
package config
