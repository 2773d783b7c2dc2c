// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the pieces shared by the nickview binaries' main
// functions: categorized errors ([ToolError]), exit codes
// ([ExitError], [ExitCode]) and the stderr logger used outside the
// TUI ([NewCommandLogger]).
package cli
