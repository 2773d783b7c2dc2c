// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
)

// Process exit statuses. ExitUsage and ExitUnavailable follow the BSD
// sysexits values.
const (
	ExitFailure     = 1
	ExitNotFound    = 2
	ExitUsage       = 64
	ExitUnavailable = 69
)

// ExitError signals a non-zero exit code without printing an extra
// error message: the command has already written its own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitCode reports the status main should exit with for err, writing
// the message to stderr unless err is an [ExitError]. A nil err is 0.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.ExitCode()
	}
	return ExitFailure
}
