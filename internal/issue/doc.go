// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines a catalog of Markdown remediation cards, one per validation
// failure class, plus an ActionableError type that attaches concrete
// suggestions to a diagnostic before it reaches the terminal.
package issue
