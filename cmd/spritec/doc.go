// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the spritec CLI.
//
// It implements the single Cobra command that parses the argument vector,
// validates it into a config.Config, and hands the result to the spritesheet
// builder. All validation failures are rendered as actionable diagnostics and
// terminate the process with a non-zero exit code.
package cmd
