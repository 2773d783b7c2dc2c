// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DialogKind selects a dialog's accent color.
type DialogKind int

const (
	// DialogConfirm asks a yes/no question.
	DialogConfirm DialogKind = iota
	// DialogAlert reports a failure until dismissed.
	DialogAlert
)

// Dialog is a centered modal box with a title, a wrapped body and a
// footer of key hints. The model decides which keys answer it; Dialog
// only renders.
type Dialog struct {
	Kind   DialogKind
	Title  string
	Body   string
	Footer string
}

// Dialog chrome overhead: 2 columns border + 2 columns padding
// horizontally; 2 lines border + title + blank + footer vertically.
const (
	dialogChromeWidth  = 4
	dialogChromeHeight = 5
	dialogMinInner     = 24
	dialogMaxInner     = 60
	dialogMargin       = 2
)

// Render produces the dialog lines for splicing onto the view and the
// anchor position that centers them on a screen of the given size.
func (dialog Dialog) Render(theme Theme, screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := ansi.StringWidth(dialog.Title)
	innerWidth = max(innerWidth, ansi.StringWidth(dialog.Footer))
	for _, line := range strings.Split(dialog.Body, "\n") {
		innerWidth = max(innerWidth, ansi.StringWidth(line))
	}
	innerWidth = min(max(innerWidth, dialogMinInner), dialogMaxInner)
	if limit := screenWidth - dialogChromeWidth - dialogMargin*2; innerWidth > limit {
		innerWidth = max(limit, 1)
	}

	accent := theme.WarningForeground
	if dialog.Kind == DialogAlert {
		accent = theme.ErrorForeground
	}

	backgroundStyle := lipgloss.NewStyle().Background(theme.TooltipBackground)
	titleStyle := backgroundStyle.Bold(true).Foreground(accent)
	bodyStyle := backgroundStyle.Foreground(theme.TooltipForeground)
	footerStyle := backgroundStyle.Foreground(theme.FaintText)

	pad := func(styled string) string {
		if width := ansi.StringWidth(styled); width < innerWidth {
			styled += backgroundStyle.Render(strings.Repeat(" ", innerWidth-width))
		}
		return styled
	}

	var lines []string
	lines = append(lines, pad(titleStyle.Render(ansi.Truncate(dialog.Title, innerWidth, "…"))))
	wrapped := ansi.Wrap(dialog.Body, innerWidth, " ,.;-/")
	for _, line := range strings.Split(wrapped, "\n") {
		lines = append(lines, pad(bodyStyle.Render(line)))
	}
	lines = append(lines, pad(""))
	lines = append(lines, pad(footerStyle.Render(ansi.Truncate(dialog.Footer, innerWidth, "…"))))

	// Never taller than the screen: drop body lines from the end.
	if maxLines := screenHeight - 2; maxLines >= 3 && len(lines) > maxLines {
		lines = append(lines[:maxLines-2], lines[len(lines)-2:]...)
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Background(theme.TooltipBackground).
		Padding(0, 1)
	rendered := strings.Split(borderStyle.Render(strings.Join(lines, "\n")), "\n")

	width := 0
	if len(rendered) > 0 {
		width = ansi.StringWidth(rendered[0])
	}
	anchorX, anchorY := CenterAnchor(screenWidth, screenHeight, width, len(rendered))
	return rendered, anchorX, anchorY
}
