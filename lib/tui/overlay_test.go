// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlay(t *testing.T) {
	view := "0123456789\nabcdefghij\nABCDEFGHIJ"
	result := SpliceOverlay(view, []string{"XX", "YY"}, 3, 1)
	lines := strings.Split(ansi.Strip(result), "\n")
	if lines[0] != "0123456789" {
		t.Errorf("line 0 changed: %q", lines[0])
	}
	if lines[1] != "abcXXfghij" {
		t.Errorf("line 1 = %q, want abcXXfghij", lines[1])
	}
	if lines[2] != "ABCYYFGHIJ" {
		t.Errorf("line 2 = %q, want ABCYYFGHIJ", lines[2])
	}
}

func TestSpliceOverlayShortLineAndOutOfRange(t *testing.T) {
	view := "ab\ncd"
	result := SpliceOverlay(view, []string{"XX", "YY", "ZZ"}, 4, 1)
	lines := strings.Split(ansi.Strip(result), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count changed: %d", len(lines))
	}
	if lines[1] != "cd  XX" {
		t.Errorf("line 1 = %q, want %q", lines[1], "cd  XX")
	}
}

func TestPadOverlayLine(t *testing.T) {
	style := lipgloss.NewStyle()
	line := PadOverlayLine("abc", 8, 10, style)
	if width := ansi.StringWidth(line); width != 10 {
		t.Errorf("width = %d, want 10", width)
	}
	long := PadOverlayLine(strings.Repeat("x", 20), 8, 10, style)
	if width := ansi.StringWidth(long); width != 10 {
		t.Errorf("truncated width = %d, want 10", width)
	}
}

func TestCenterAnchor(t *testing.T) {
	if x, y := CenterAnchor(80, 24, 20, 4); x != 30 || y != 10 {
		t.Errorf("CenterAnchor = (%d, %d), want (30, 10)", x, y)
	}
	if x, y := CenterAnchor(10, 5, 20, 8); x != 0 || y != 0 {
		t.Errorf("oversized block anchor = (%d, %d), want (0, 0)", x, y)
	}
}

func TestDialogRender(t *testing.T) {
	dialog := Dialog{
		Kind:   DialogConfirm,
		Title:  "Delete nickname?",
		Body:   "Delete \"Captain Sunshine\"? This cannot be undone.",
		Footer: "y delete  n/esc cancel",
	}
	lines, anchorX, anchorY := dialog.Render(DefaultTheme, 80, 24)
	if len(lines) < 6 {
		t.Fatalf("dialog has %d lines, want at least 6", len(lines))
	}
	width := ansi.StringWidth(lines[0])
	for index, line := range lines {
		if ansi.StringWidth(line) != width {
			t.Errorf("line %d width %d, want %d", index, ansi.StringWidth(line), width)
		}
	}
	if anchorX != (80-width)/2 || anchorY != (24-len(lines))/2 {
		t.Errorf("anchor = (%d, %d), not centered", anchorX, anchorY)
	}
	plain := ansi.Strip(strings.Join(lines, "\n"))
	for _, want := range []string{"Delete nickname?", "Captain Sunshine", "y delete"} {
		if !strings.Contains(plain, want) {
			t.Errorf("dialog missing %q:\n%s", want, plain)
		}
	}
}

func TestDialogRenderNarrowScreen(t *testing.T) {
	dialog := Dialog{Kind: DialogAlert, Title: "Error", Body: strings.Repeat("word ", 40), Footer: "enter dismiss"}
	lines, _, _ := dialog.Render(DefaultTheme, 30, 10)
	for index, line := range lines {
		if width := ansi.StringWidth(line); width > 30 {
			t.Errorf("line %d width %d exceeds screen", index, width)
		}
	}
	if len(lines) > 10 {
		t.Errorf("dialog has %d lines on a 10-line screen", len(lines))
	}
}

func TestRenderScrollbar(t *testing.T) {
	bar := ansi.Strip(RenderScrollbar(DefaultTheme, 10, 100, 10, 0))
	lines := strings.Split(bar, "\n")
	if len(lines) != 10 {
		t.Fatalf("scrollbar height = %d, want 10", len(lines))
	}
	if lines[0] != "┃" || lines[9] != "│" {
		t.Errorf("thumb not at top: %q", bar)
	}

	bottom := strings.Split(ansi.Strip(RenderScrollbar(DefaultTheme, 10, 100, 10, 90)), "\n")
	if bottom[9] != "┃" || bottom[0] != "│" {
		t.Errorf("thumb not at bottom: %v", bottom)
	}

	fits := ansi.Strip(RenderScrollbar(DefaultTheme, 3, 2, 10, 0))
	if fits != "┃\n┃\n┃" {
		t.Errorf("fitting content scrollbar = %q", fits)
	}
	if RenderScrollbar(DefaultTheme, 0, 10, 5, 0) != "" {
		t.Error("zero-height scrollbar not empty")
	}
}
