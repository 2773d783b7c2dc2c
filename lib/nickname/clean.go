// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickname

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// CleanText removes terminal escape sequences and control characters
// from store-supplied text so it can be written to the terminal as an
// opaque display string. With multiline set, newlines are kept;
// otherwise newlines and tabs become spaces.
func CleanText(text string, multiline bool) string {
	text = ansi.Strip(text)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' && multiline:
			return r
		case r == '\n' || r == '\t':
			return ' '
		case r == '\r':
			return -1
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, text)
}
